// Package wmmock provides function-backed mocks for the wish master
// repositories.
package wmmock

import (
	"context"

	domain "wms-backend/internal/domain/wishmaster"

	"gorm.io/gorm"
)

type Repo struct {
	CreateFn                          func(ctx context.Context, w *domain.WishMaster) error
	SaveFn                            func(ctx context.Context, w *domain.WishMaster) error
	GetByIDFn                         func(ctx context.Context, id uint64) (*domain.WishMaster, error)
	GetByIDForUpdateFn                func(ctx context.Context, id uint64) (*domain.WishMaster, error)
	GetByEmployeeCodeFn               func(ctx context.Context, code string) (*domain.WishMaster, error)
	ExistsActiveByEmployeeCodeFn      func(ctx context.Context, code string) (bool, error)
	ListActiveByHubAdminFn            func(ctx context.Context, hubAdminID uint64) ([]domain.WishMaster, error)
	ListActiveByHubFn                 func(ctx context.Context, hubID uint64) ([]domain.WishMaster, error)
	ListByHubAdminFn                  func(ctx context.Context, hubAdminID uint64) ([]domain.WishMaster, error)
	ListInactiveFn                    func(ctx context.Context) ([]domain.WishMaster, error)
	SearchByEmployeeCodeFn            func(ctx context.Context, sub string) ([]domain.WishMaster, error)
	SearchByHubAdminAndEmployeeCodeFn func(ctx context.Context, hubAdminID uint64, sub string) ([]domain.WishMaster, error)
}

func (m *Repo) Create(ctx context.Context, w *domain.WishMaster) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, w *domain.WishMaster) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.WishMaster, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.WishMaster, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmployeeCode(ctx context.Context, code string) (*domain.WishMaster, error) {
	if m.GetByEmployeeCodeFn != nil {
		return m.GetByEmployeeCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ExistsActiveByEmployeeCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsActiveByEmployeeCodeFn != nil {
		return m.ExistsActiveByEmployeeCodeFn(ctx, code)
	}
	return false, nil
}

func (m *Repo) ListActiveByHubAdmin(ctx context.Context, hubAdminID uint64) ([]domain.WishMaster, error) {
	if m.ListActiveByHubAdminFn != nil {
		return m.ListActiveByHubAdminFn(ctx, hubAdminID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByHub(ctx context.Context, hubID uint64) ([]domain.WishMaster, error) {
	if m.ListActiveByHubFn != nil {
		return m.ListActiveByHubFn(ctx, hubID)
	}
	return nil, nil
}

func (m *Repo) ListByHubAdmin(ctx context.Context, hubAdminID uint64) ([]domain.WishMaster, error) {
	if m.ListByHubAdminFn != nil {
		return m.ListByHubAdminFn(ctx, hubAdminID)
	}
	return nil, nil
}

func (m *Repo) ListInactive(ctx context.Context) ([]domain.WishMaster, error) {
	if m.ListInactiveFn != nil {
		return m.ListInactiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SearchByEmployeeCode(ctx context.Context, sub string) ([]domain.WishMaster, error) {
	if m.SearchByEmployeeCodeFn != nil {
		return m.SearchByEmployeeCodeFn(ctx, sub)
	}
	return nil, nil
}

func (m *Repo) SearchByHubAdminAndEmployeeCode(ctx context.Context, hubAdminID uint64, sub string) ([]domain.WishMaster, error) {
	if m.SearchByHubAdminAndEmployeeCodeFn != nil {
		return m.SearchByHubAdminAndEmployeeCodeFn(ctx, hubAdminID, sub)
	}
	return nil, nil
}

type DocumentRepo struct {
	CreateFn           func(ctx context.Context, d *domain.Document) error
	ListByWishMasterFn func(ctx context.Context, wishMasterID uint64) ([]domain.Document, error)
}

func (m *DocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *DocumentRepo) ListByWishMaster(ctx context.Context, wishMasterID uint64) ([]domain.Document, error) {
	if m.ListByWishMasterFn != nil {
		return m.ListByWishMasterFn(ctx, wishMasterID)
	}
	return nil, nil
}
