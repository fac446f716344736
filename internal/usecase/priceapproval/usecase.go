package priceapproval

import (
	"context"
	"errors"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	domainPA "wms-backend/internal/domain/priceapproval"
	"wms-backend/internal/domain/uow"
	"wms-backend/internal/domain/wishmaster"

	"gorm.io/gorm"
)

type Usecase struct {
	paRepo domainPA.Repository
	wmRepo wishmaster.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(pas domainPA.Repository, wms wishmaster.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{paRepo: pas, wmRepo: wms, uow: tx}
}

// Propose raises a PENDING rate-change request. The wish master's rate is
// untouched until a super admin approves.
func (u *Usecase) Propose(ctx context.Context, caller auth.Caller, wishMasterID uint64, proposedRate float64) (*RequestDTO, error) {
	if !caller.IsHubAdmin() {
		return nil, apperr.Authorization("only hub admins may propose rate changes")
	}
	if proposedRate <= 0 {
		return nil, apperr.Validation("proposed rate must be positive")
	}

	wm, err := u.wmRepo.GetByID(ctx, wishMasterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("wish master not found")
		}
		return nil, err
	}
	if wm.HubAdminID != caller.ID {
		return nil, apperr.Authorization("wish master does not belong to your hub")
	}

	req := &domainPA.Request{
		WishMasterID: wm.ID,
		ProposedRate: proposedRate,
		RequestedBy:  caller.ID,
		Status:       domainPA.StatusPending,
	}
	if err := u.paRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	dto := toDTO(req)
	return &dto, nil
}

// Resolve approves or rejects a PENDING request. On approval the wish
// master's approvedRate becomes finalRate if given, else the proposed
// rate. Existing ledger rows are never recalculated; the new rate applies
// from the next entry write onward.
func (u *Usecase) Resolve(ctx context.Context, caller auth.Caller, requestID uint64, approved bool, finalRate *float64) (*RequestDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may resolve rate changes")
	}
	if finalRate != nil && *finalRate <= 0 {
		return nil, apperr.Validation("final rate must be positive")
	}

	var out RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.PriceApprovals.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("price approval request not found")
			}
			return err
		}
		if req.Status.Terminal() {
			return apperr.Conflict("price approval request %d is already processed", requestID)
		}

		now := time.Now().UTC()
		reviewer := caller.ID
		if approved {
			req.Status = domainPA.StatusApproved
		} else {
			req.Status = domainPA.StatusRejected
		}
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now
		if err := r.PriceApprovals.Save(ctx, req); err != nil {
			return err
		}

		if approved {
			wm, err := r.WishMasters.GetByIDForUpdate(ctx, req.WishMasterID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("wish master not found")
				}
				return err
			}
			rate := req.ProposedRate
			if finalRate != nil {
				rate = *finalRate
			}
			wm.ApprovedRate = &rate
			if err := r.WishMasters.Save(ctx, wm); err != nil {
				return err
			}
		}

		out = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) ListPending(ctx context.Context, caller auth.Caller) ([]RequestDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may list rate-change requests")
	}
	reqs, err := u.paRepo.ListByStatus(ctx, domainPA.StatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]RequestDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, toDTO(&reqs[i]))
	}
	return out, nil
}
