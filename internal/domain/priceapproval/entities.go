package priceapproval

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Request proposes a new payable rate for an existing wish master. Raised
// by the owning hub admin, resolved by a super admin; on approval the wish
// master's approved rate changes, visible to the ledger from the next
// entry write onward.
type Request struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"id"`
	WishMasterID uint64     `gorm:"index:idx_price_approvals_wish_master" json:"wish_master_id"`
	ProposedRate float64    `gorm:"type:decimal(10,2)" json:"proposed_rate"`
	RequestedBy  uint64     `gorm:"column:requested_by" json:"requested_by"`
	Status       Status     `gorm:"size:16;default:'PENDING';index:idx_price_approvals_status" json:"status"`
	ReviewedBy   *uint64    `gorm:"column:reviewed_by" json:"reviewed_by"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "price_approval_requests" }
