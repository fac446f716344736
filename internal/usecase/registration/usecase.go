package registration

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	"wms-backend/internal/domain/directory"
	domainReg "wms-backend/internal/domain/registration"
	"wms-backend/internal/domain/uow"
	"wms-backend/internal/domain/wishmaster"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	regRepo      domainReg.Repository
	wmRepo       wishmaster.Repository
	hubAdminRepo directory.HubAdminRepository
	superRepo    directory.SuperAdminRepository
	uow          uow.UnitOfWork
}

func NewUsecase(regs domainReg.Repository, wms wishmaster.Repository, hubAdmins directory.HubAdminRepository, supers directory.SuperAdminRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{regRepo: regs, wmRepo: wms, hubAdminRepo: hubAdmins, superRepo: supers, uow: tx}
}

// Submit records a PENDING registration request. No wish master exists
// until a reviewer approves it.
func (u *Usecase) Submit(ctx context.Context, caller auth.Caller, in SubmitInput) (*RequestDTO, error) {
	switch caller.Role {
	case auth.RoleHubAdmin:
		// Hub admins may only file under themselves.
		if in.HubAdminID != 0 && in.HubAdminID != caller.ID {
			return nil, apperr.Authorization("cannot submit a registration for another hub admin")
		}
		in.HubAdminID = caller.ID
	case auth.RoleSuperAdmin:
		if in.HubAdminID == 0 {
			return nil, apperr.Validation("hub_admin_id is required")
		}
	default:
		return nil, apperr.Authorization("only hub admins or super admins may submit registrations")
	}

	in.EmployeeCode = strings.TrimSpace(in.EmployeeCode)
	if in.EmployeeCode == "" || in.Name == "" || in.Password == "" {
		return nil, apperr.Validation("employee_code, name and password are required")
	}
	if in.ProposedRate <= 0 {
		return nil, apperr.Validation("proposed_rate must be positive")
	}

	exists, err := u.wmRepo.ExistsActiveByEmployeeCode(ctx, in.EmployeeCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("employee code %s already exists", in.EmployeeCode)
	}
	pending, err := u.regRepo.ExistsPendingByEmployeeCode(ctx, in.EmployeeCode)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperr.Conflict("a pending registration request already exists for %s", in.EmployeeCode)
	}

	admin, err := u.hubAdminRepo.GetByID(ctx, in.HubAdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("hub admin not found")
		}
		return nil, err
	}
	if !admin.Status.IsActive() {
		return nil, apperr.NotFound("hub admin not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	req := &domainReg.Request{
		EmployeeCode:  in.EmployeeCode,
		Name:          in.Name,
		Phone:         in.Phone,
		Address:       in.Address,
		VehicleNumber: in.VehicleNumber,
		Password:      string(hashed),
		ProposedRate:  in.ProposedRate,
		HubAdminID:    in.HubAdminID,
		Documents:     in.Documents,
		Status:        domainReg.StatusPending,
	}
	if err := u.regRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	dto := toRequestDTO(req)
	return &dto, nil
}

// Resolve moves a PENDING request to APPROVED or REJECTED. Approval copies
// the application fields verbatim into a new wish master, with
// approvedRate = overrideRate if given, else the proposed rate. The
// check-and-transition runs inside one transaction so two concurrent
// resolutions cannot both succeed.
func (u *Usecase) Resolve(ctx context.Context, caller auth.Caller, requestID uint64, approved bool, overrideRate *float64) (*ResolveResult, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may resolve registration requests")
	}
	if _, err := u.superRepo.GetByID(ctx, caller.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("super admin not found")
		}
		return nil, err
	}
	if overrideRate != nil && *overrideRate <= 0 {
		return nil, apperr.Validation("override rate must be positive")
	}

	var out ResolveResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Registrations.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("registration request not found")
			}
			return err
		}
		if req.Status.Terminal() {
			return apperr.Conflict("registration request %d is already processed", requestID)
		}

		now := time.Now().UTC()
		reviewer := caller.ID
		if approved {
			req.Status = domainReg.StatusApproved
		} else {
			req.Status = domainReg.StatusRejected
		}
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now
		if err := r.Registrations.Save(ctx, req); err != nil {
			return err
		}

		if !approved {
			out.Request = toRequestDTO(req)
			return nil
		}

		rate := req.ProposedRate
		if overrideRate != nil {
			rate = *overrideRate
		}
		wm := &wishmaster.WishMaster{
			EmployeeCode:   req.EmployeeCode,
			Name:           req.Name,
			Phone:          req.Phone,
			Address:        req.Address,
			VehicleNumber:  req.VehicleNumber,
			Password:       req.Password, // hashed at submit time
			HubAdminID:     req.HubAdminID,
			ProposedRate:   req.ProposedRate,
			ApprovedRate:   &rate,
			ApprovalStatus: wishmaster.ApprovalApproved,
			Status:         directory.StatusActive,
		}
		if err := r.WishMasters.Create(ctx, wm); err != nil {
			return err
		}
		if err := persistDocuments(ctx, r.Documents, wm.ID, req.Documents); err != nil {
			return err
		}

		out.Request = toRequestDTO(req)
		out.WishMaster = &WishMasterDTO{
			ID:             wm.ID,
			EmployeeCode:   wm.EmployeeCode,
			Name:           wm.Name,
			HubAdminID:     wm.HubAdminID,
			ProposedRate:   wm.ProposedRate,
			ApprovedRate:   wm.ApprovedRate,
			ApprovalStatus: string(wm.ApprovalStatus),
			Status:         string(wm.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPending returns the reviewer work queue.
func (u *Usecase) ListPending(ctx context.Context, caller auth.Caller) ([]RequestDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may list registration requests")
	}
	reqs, err := u.regRepo.ListByStatus(ctx, domainReg.StatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]RequestDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, toRequestDTO(&reqs[i]))
	}
	return out, nil
}

// GetRequest returns one request (any status) for review screens.
func (u *Usecase) GetRequest(ctx context.Context, caller auth.Caller, requestID uint64) (*RequestDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may view registration requests")
	}
	req, err := u.regRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("registration request not found")
		}
		return nil, err
	}
	dto := toRequestDTO(req)
	return &dto, nil
}

// persistDocuments stores the request's document references against the
// new wish master. Keys are normalized to upper case; unknown types and
// repeats of an already-stored type are skipped, not errors.
func persistDocuments(ctx context.Context, docs wishmaster.DocumentRepository, wishMasterID uint64, submitted map[string]string) error {
	if len(submitted) == 0 {
		return nil
	}
	keys := make([]string, 0, len(submitted))
	for k := range submitted {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[wishmaster.DocumentType]bool, len(keys))
	for _, k := range keys {
		dt := wishmaster.DocumentType(strings.ToUpper(strings.TrimSpace(k)))
		if !dt.Valid() || seen[dt] {
			continue
		}
		seen[dt] = true
		doc := &wishmaster.Document{
			WishMasterID: wishMasterID,
			DocumentType: dt,
			FileURL:      submitted[k],
		}
		if err := docs.Create(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
