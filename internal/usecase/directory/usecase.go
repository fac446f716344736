package directory

import (
	"context"
	"errors"
	"strings"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	domainDir "wms-backend/internal/domain/directory"
	"wms-backend/internal/domain/wishmaster"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Usecase owns the read-mostly directory structure Hubs → HubAdmins →
// WishMasters and its few administrative writes.
type Usecase struct {
	hubRepo      domainDir.HubRepository
	hubAdminRepo domainDir.HubAdminRepository
	superRepo    domainDir.SuperAdminRepository
	wmRepo       wishmaster.Repository
}

func NewUsecase(hubs domainDir.HubRepository, hubAdmins domainDir.HubAdminRepository, supers domainDir.SuperAdminRepository, wms wishmaster.Repository) *Usecase {
	return &Usecase{hubRepo: hubs, hubAdminRepo: hubAdmins, superRepo: supers, wmRepo: wms}
}

func (u *Usecase) CreateHub(ctx context.Context, caller auth.Caller, in CreateHubInput) (*HubDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may create hubs")
	}
	in.HubCode = strings.TrimSpace(in.HubCode)
	if in.HubCode == "" || in.Name == "" {
		return nil, apperr.Validation("hub_code and name are required")
	}
	if _, err := u.hubRepo.GetByCode(ctx, in.HubCode); err == nil {
		return nil, apperr.Conflict("hub code %s already exists", in.HubCode)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hub := &domainDir.Hub{
		HubCode: in.HubCode,
		Name:    in.Name,
		City:    in.City,
		Area:    in.Area,
		Status:  domainDir.StatusActive,
	}
	if err := u.hubRepo.Create(ctx, hub); err != nil {
		return nil, err
	}
	dto := toHubDTO(hub)
	return &dto, nil
}

// DeactivateHub flips the hub inactive; hubs are never hard-deleted.
func (u *Usecase) DeactivateHub(ctx context.Context, caller auth.Caller, hubID uint64) error {
	if !caller.IsSuperAdmin() {
		return apperr.Authorization("only super admins may deactivate hubs")
	}
	hub, err := u.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("hub not found")
		}
		return err
	}
	hub.Status = domainDir.StatusInactive
	return u.hubRepo.Save(ctx, hub)
}

func (u *Usecase) GetHub(ctx context.Context, hubID uint64) (*HubDTO, error) {
	hub, err := u.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("hub not found")
		}
		return nil, err
	}
	dto := toHubDTO(hub)
	return &dto, nil
}

// ListHubs filters by city/area when supplied; both empty lists all hubs.
func (u *Usecase) ListHubs(ctx context.Context, city, area string) ([]HubDTO, error) {
	var (
		hubs []domainDir.Hub
		err  error
	)
	switch {
	case city != "" && area != "":
		hubs, err = u.hubRepo.ListByCityAndArea(ctx, city, area)
	case city != "":
		hubs, err = u.hubRepo.ListByCity(ctx, city)
	default:
		hubs, err = u.hubRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]HubDTO, 0, len(hubs))
	for i := range hubs {
		out = append(out, toHubDTO(&hubs[i]))
	}
	return out, nil
}

// CreateHubAdmin assigns a new admin to a hub. A hub can hold at most one
// active admin at a time.
func (u *Usecase) CreateHubAdmin(ctx context.Context, caller auth.Caller, in CreateHubAdminInput) (*HubAdminDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may create hub admins")
	}
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" || in.HubCode == "" {
		return nil, apperr.Validation("name, username, email, password and hub_code are required")
	}

	if taken, err := u.hubAdminRepo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("email already registered")
	}
	if taken, err := u.hubAdminRepo.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("username already taken")
	}

	hub, err := u.hubRepo.GetByCode(ctx, in.HubCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("hub not found with code %s", in.HubCode)
		}
		return nil, err
	}
	if !hub.Status.IsActive() {
		return nil, apperr.NotFound("hub not found with code %s", in.HubCode)
	}
	assigned, err := u.hubAdminRepo.ListActiveByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}
	if len(assigned) > 0 {
		return nil, apperr.Conflict("hub %s is already assigned to another admin", in.HubCode)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}
	admin := &domainDir.HubAdmin{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
		HubID:    hub.ID,
		Status:   domainDir.StatusActive,
	}
	if err := u.hubAdminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return u.hubAdminDTO(ctx, admin), nil
}

func (u *Usecase) DeactivateHubAdmin(ctx context.Context, caller auth.Caller, id uint64) error {
	if !caller.IsSuperAdmin() {
		return apperr.Authorization("only super admins may deactivate hub admins")
	}
	admin, err := u.hubAdminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("hub admin not found")
		}
		return err
	}
	admin.Status = domainDir.StatusInactive
	return u.hubAdminRepo.Save(ctx, admin)
}

func (u *Usecase) ListHubAdmins(ctx context.Context, caller auth.Caller) ([]HubAdminDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may list hub admins")
	}
	admins, err := u.hubAdminRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HubAdminDTO, 0, len(admins))
	for i := range admins {
		out = append(out, *u.hubAdminDTO(ctx, &admins[i]))
	}
	return out, nil
}

func (u *Usecase) CreateSuperAdmin(ctx context.Context, caller auth.Caller, in CreateSuperAdminInput) (*SuperAdminDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may create super admins")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}
	if taken, err := u.superRepo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("email already registered")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}
	admin := &domainDir.SuperAdmin{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Status:   domainDir.StatusActive,
	}
	if err := u.superRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return &SuperAdminDTO{ID: admin.ID, Name: admin.Name, Email: admin.Email}, nil
}

// DeactivateWishMaster soft-removes a wish master from all active rosters.
func (u *Usecase) DeactivateWishMaster(ctx context.Context, caller auth.Caller, id uint64) error {
	wm, err := u.wmRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("wish master not found")
		}
		return err
	}
	switch caller.Role {
	case auth.RoleSuperAdmin:
	case auth.RoleHubAdmin:
		if wm.HubAdminID != caller.ID {
			return apperr.Authorization("wish master does not belong to your hub")
		}
	default:
		return apperr.Authorization("only admins may deactivate wish masters")
	}
	wm.Status = domainDir.StatusInactive
	return u.wmRepo.Save(ctx, wm)
}

// ListInactiveEmployees collects deactivated hub admins and wish masters
// for the top authority's review screen.
func (u *Usecase) ListInactiveEmployees(ctx context.Context, caller auth.Caller) ([]InactiveEmployeeDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("only super admins may list inactive employees")
	}

	out := []InactiveEmployeeDTO{}
	admins, err := u.hubAdminRepo.ListInactive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		a := &admins[i]
		hubName, city := "N/A", "N/A"
		if hub, err := u.hubRepo.GetByID(ctx, a.HubID); err == nil {
			hubName, city = hub.Name, hub.City
		}
		out = append(out, InactiveEmployeeDTO{
			ID:           a.ID,
			Name:         a.Name,
			EmployeeCode: a.Username, // hub admins have no employee code
			Role:         string(auth.RoleHubAdmin),
			HubName:      hubName,
			City:         city,
		})
	}

	wms, err := u.wmRepo.ListInactive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range wms {
		w := &wms[i]
		hubName, city := "N/A", "N/A"
		if admin, err := u.hubAdminRepo.GetByID(ctx, w.HubAdminID); err == nil {
			if hub, err := u.hubRepo.GetByID(ctx, admin.HubID); err == nil {
				hubName, city = hub.Name, hub.City
			}
		}
		out = append(out, InactiveEmployeeDTO{
			ID:           w.ID,
			Name:         w.Name,
			EmployeeCode: w.EmployeeCode,
			Role:         string(auth.RoleWishMaster),
			HubName:      hubName,
			City:         city,
		})
	}
	return out, nil
}

func (u *Usecase) hubAdminDTO(ctx context.Context, a *domainDir.HubAdmin) *HubAdminDTO {
	dto := &HubAdminDTO{
		ID:       a.ID,
		Name:     a.Name,
		Username: a.Username,
		Email:    a.Email,
		HubID:    a.HubID,
		Status:   a.Status,
	}
	if hub, err := u.hubRepo.GetByID(ctx, a.HubID); err == nil {
		dto.HubName = hub.Name
		dto.City = hub.City
	}
	return dto
}
