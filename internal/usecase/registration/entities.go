package registration

import (
	"time"

	"wms-backend/internal/domain/registration"
)

type SubmitInput struct {
	HubAdminID    uint64            `json:"hub_admin_id"`
	EmployeeCode  string            `json:"employee_code"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	VehicleNumber string            `json:"vehicle_number"`
	Password      string            `json:"password"`
	ProposedRate  float64           `json:"proposed_rate"`
	Documents     map[string]string `json:"documents"` // type → file URL
}

type RequestDTO struct {
	ID            uint64              `json:"id"`
	EmployeeCode  string              `json:"employee_code"`
	Name          string              `json:"name"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	VehicleNumber string              `json:"vehicle_number"`
	ProposedRate  float64             `json:"proposed_rate"`
	HubAdminID    uint64              `json:"hub_admin_id"`
	Documents     map[string]string   `json:"documents,omitempty"`
	Status        registration.Status `json:"status"`
	ReviewedBy    *uint64             `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type WishMasterDTO struct {
	ID             uint64   `json:"id"`
	EmployeeCode   string   `json:"employee_code"`
	Name           string   `json:"name"`
	HubAdminID     uint64   `json:"hub_admin_id"`
	ProposedRate   float64  `json:"proposed_rate"`
	ApprovedRate   *float64 `json:"approved_rate"`
	ApprovalStatus string   `json:"approval_status"`
	Status         string   `json:"status"`
}

// ResolveResult carries the request's final state plus, on approval, the
// wish master it produced.
type ResolveResult struct {
	Request    RequestDTO     `json:"request"`
	WishMaster *WishMasterDTO `json:"wish_master,omitempty"`
}

func toRequestDTO(r *registration.Request) RequestDTO {
	return RequestDTO{
		ID:            r.ID,
		EmployeeCode:  r.EmployeeCode,
		Name:          r.Name,
		Phone:         r.Phone,
		Address:       r.Address,
		VehicleNumber: r.VehicleNumber,
		ProposedRate:  r.ProposedRate,
		HubAdminID:    r.HubAdminID,
		Documents:     r.Documents,
		Status:        r.Status,
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		CreatedAt:     r.CreatedAt,
	}
}
