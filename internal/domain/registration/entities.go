package registration

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal states accept no further resolution.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Request captures a prospective wish master's full application. On
// approval it is the sole producer of a WishMaster row; afterwards it is
// kept only as an audit trail.
type Request struct {
	ID            uint64            `gorm:"primaryKey;column:id" json:"id"`
	EmployeeCode  string            `gorm:"size:32;index:idx_registration_requests_code" json:"employee_code"`
	Name          string            `gorm:"size:128" json:"name"`
	Phone         string            `gorm:"size:20" json:"phone"`
	Address       string            `gorm:"size:255" json:"address"`
	VehicleNumber string            `gorm:"size:32" json:"vehicle_number"`
	Password      string            `gorm:"size:128" json:"-"` // already hashed at submit time
	ProposedRate  float64           `gorm:"type:decimal(10,2)" json:"proposed_rate"`
	HubAdminID    uint64            `gorm:"index:idx_registration_requests_hub_admin" json:"hub_admin_id"`
	Documents     map[string]string `gorm:"serializer:json;type:text" json:"documents"`
	Status        Status            `gorm:"size:16;default:'PENDING';index:idx_registration_requests_status" json:"status"`
	ReviewedBy    *uint64           `gorm:"column:reviewed_by" json:"reviewed_by"`
	ReviewedAt    *time.Time        `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "wish_master_registration_requests" }
