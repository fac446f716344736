package priceapproval

import (
	"time"

	"wms-backend/internal/domain/priceapproval"
)

type RequestDTO struct {
	ID           uint64               `json:"id"`
	WishMasterID uint64               `json:"wish_master_id"`
	ProposedRate float64              `json:"proposed_rate"`
	RequestedBy  uint64               `json:"requested_by"`
	Status       priceapproval.Status `json:"status"`
	ReviewedBy   *uint64              `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time           `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func toDTO(r *priceapproval.Request) RequestDTO {
	return RequestDTO{
		ID:           r.ID,
		WishMasterID: r.WishMasterID,
		ProposedRate: r.ProposedRate,
		RequestedBy:  r.RequestedBy,
		Status:       r.Status,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		CreatedAt:    r.CreatedAt,
	}
}
