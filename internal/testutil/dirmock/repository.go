// Package dirmock provides function-backed mocks for the directory
// repositories. Only the function fields a test sets are consulted;
// the rest fall back to harmless defaults.
package dirmock

import (
	"context"

	domain "wms-backend/internal/domain/directory"

	"gorm.io/gorm"
)

type HubRepo struct {
	CreateFn            func(ctx context.Context, h *domain.Hub) error
	SaveFn              func(ctx context.Context, h *domain.Hub) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Hub, error)
	GetByCodeFn         func(ctx context.Context, code string) (*domain.Hub, error)
	ListFn              func(ctx context.Context) ([]domain.Hub, error)
	ListByCityFn        func(ctx context.Context, city string) ([]domain.Hub, error)
	ListByCityAndAreaFn func(ctx context.Context, city, area string) ([]domain.Hub, error)
}

func (m *HubRepo) Create(ctx context.Context, h *domain.Hub) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, h)
	}
	return nil
}

func (m *HubRepo) Save(ctx context.Context, h *domain.Hub) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, h)
	}
	return nil
}

func (m *HubRepo) GetByID(ctx context.Context, id uint64) (*domain.Hub, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *HubRepo) GetByCode(ctx context.Context, code string) (*domain.Hub, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *HubRepo) List(ctx context.Context) ([]domain.Hub, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *HubRepo) ListByCity(ctx context.Context, city string) ([]domain.Hub, error) {
	if m.ListByCityFn != nil {
		return m.ListByCityFn(ctx, city)
	}
	return nil, nil
}

func (m *HubRepo) ListByCityAndArea(ctx context.Context, city, area string) ([]domain.Hub, error) {
	if m.ListByCityAndAreaFn != nil {
		return m.ListByCityAndAreaFn(ctx, city, area)
	}
	return nil, nil
}

type HubAdminRepo struct {
	CreateFn           func(ctx context.Context, a *domain.HubAdmin) error
	SaveFn             func(ctx context.Context, a *domain.HubAdmin) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.HubAdmin, error)
	ListActiveByHubFn  func(ctx context.Context, hubID uint64) ([]domain.HubAdmin, error)
	ListActiveFn       func(ctx context.Context) ([]domain.HubAdmin, error)
	ListInactiveFn     func(ctx context.Context) ([]domain.HubAdmin, error)
	ExistsByEmailFn    func(ctx context.Context, email string) (bool, error)
	ExistsByUsernameFn func(ctx context.Context, username string) (bool, error)
}

func (m *HubAdminRepo) Create(ctx context.Context, a *domain.HubAdmin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *HubAdminRepo) Save(ctx context.Context, a *domain.HubAdmin) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *HubAdminRepo) GetByID(ctx context.Context, id uint64) (*domain.HubAdmin, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *HubAdminRepo) ListActiveByHub(ctx context.Context, hubID uint64) ([]domain.HubAdmin, error) {
	if m.ListActiveByHubFn != nil {
		return m.ListActiveByHubFn(ctx, hubID)
	}
	return nil, nil
}

func (m *HubAdminRepo) ListActive(ctx context.Context) ([]domain.HubAdmin, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *HubAdminRepo) ListInactive(ctx context.Context) ([]domain.HubAdmin, error) {
	if m.ListInactiveFn != nil {
		return m.ListInactiveFn(ctx)
	}
	return nil, nil
}

func (m *HubAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *HubAdminRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFn != nil {
		return m.ExistsByUsernameFn(ctx, username)
	}
	return false, nil
}

type SuperAdminRepo struct {
	CreateFn        func(ctx context.Context, a *domain.SuperAdmin) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.SuperAdmin, error)
	ListFn          func(ctx context.Context) ([]domain.SuperAdmin, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (m *SuperAdminRepo) Create(ctx context.Context, a *domain.SuperAdmin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *SuperAdminRepo) GetByID(ctx context.Context, id uint64) (*domain.SuperAdmin, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *SuperAdminRepo) List(ctx context.Context) ([]domain.SuperAdmin, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *SuperAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	return false, nil
}
