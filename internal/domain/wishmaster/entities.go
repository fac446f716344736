package wishmaster

import (
	"time"

	"wms-backend/internal/domain/directory"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// WishMaster is a delivery partner. The only creation path with login
// capability is registration approval.
type WishMaster struct {
	ID             uint64           `gorm:"primaryKey;column:id" json:"id"`
	EmployeeCode   string           `gorm:"size:32;uniqueIndex:ux_wish_masters_employee_code" json:"employee_code"`
	Name           string           `gorm:"size:128" json:"name"`
	Phone          string           `gorm:"size:20" json:"phone"`
	Address        string           `gorm:"size:255" json:"address"`
	VehicleNumber  string           `gorm:"size:32" json:"vehicle_number"`
	Password       string           `gorm:"size:128" json:"-"`
	HubAdminID     uint64           `gorm:"index:idx_wish_masters_hub_admin" json:"hub_admin_id"`
	ProposedRate   float64          `gorm:"type:decimal(10,2)" json:"proposed_rate"`
	ApprovedRate   *float64         `gorm:"type:decimal(10,2)" json:"approved_rate"`
	ApprovalStatus ApprovalStatus   `gorm:"size:16;default:'PENDING'" json:"approval_status"`
	Status         directory.Status `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WishMaster) TableName() string { return "wish_masters" }

// EffectiveRate is the rate used for pay calculation: approved rate if
// set, else the proposed rate.
func (w *WishMaster) EffectiveRate() float64 {
	if w.ApprovedRate != nil {
		return *w.ApprovedRate
	}
	return w.ProposedRate
}

// Document types accepted during registration. Unknown keys in a
// submitted document map are skipped, not rejected.
type DocumentType string

const (
	DocAadhaar            DocumentType = "AADHAAR"
	DocPAN                DocumentType = "PAN"
	DocPoliceVerification DocumentType = "POLICE_VERIFICATION"
	DocAgreement          DocumentType = "AGREEMENT"
	DocPhoto              DocumentType = "PHOTO"
	DocDrivingLicense     DocumentType = "DRIVING_LICENSE"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocAadhaar, DocPAN, DocPoliceVerification, DocAgreement, DocPhoto, DocDrivingLicense:
		return true
	}
	return false
}

// Document references an externally stored file by URL; the blob store
// itself is an outside collaborator.
type Document struct {
	ID           uint64       `gorm:"primaryKey;column:id" json:"id"`
	WishMasterID uint64       `gorm:"index:idx_documents_wish_master" json:"wish_master_id"`
	DocumentType DocumentType `gorm:"size:32" json:"document_type"`
	FileURL      string       `gorm:"type:text" json:"file_url"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string { return "wish_master_documents" }
