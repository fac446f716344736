// Package flowmock provides function-backed mocks for the approval
// workflow repositories (registration and price approval).
package flowmock

import (
	"context"

	pa "wms-backend/internal/domain/priceapproval"
	reg "wms-backend/internal/domain/registration"

	"gorm.io/gorm"
)

type RegistrationRepo struct {
	CreateFn                      func(ctx context.Context, r *reg.Request) error
	SaveFn                        func(ctx context.Context, r *reg.Request) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*reg.Request, error)
	GetByIDForUpdateFn            func(ctx context.Context, id uint64) (*reg.Request, error)
	ExistsPendingByEmployeeCodeFn func(ctx context.Context, code string) (bool, error)
	ListByStatusFn                func(ctx context.Context, s reg.Status) ([]reg.Request, error)
}

func (m *RegistrationRepo) Create(ctx context.Context, r *reg.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RegistrationRepo) Save(ctx context.Context, r *reg.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *RegistrationRepo) GetByID(ctx context.Context, id uint64) (*reg.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *RegistrationRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*reg.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *RegistrationRepo) ExistsPendingByEmployeeCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsPendingByEmployeeCodeFn != nil {
		return m.ExistsPendingByEmployeeCodeFn(ctx, code)
	}
	return false, nil
}

func (m *RegistrationRepo) ListByStatus(ctx context.Context, s reg.Status) ([]reg.Request, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

type PriceApprovalRepo struct {
	CreateFn           func(ctx context.Context, r *pa.Request) error
	SaveFn             func(ctx context.Context, r *pa.Request) error
	GetByIDFn          func(ctx context.Context, id uint64) (*pa.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*pa.Request, error)
	ListByStatusFn     func(ctx context.Context, s pa.Status) ([]pa.Request, error)
}

func (m *PriceApprovalRepo) Create(ctx context.Context, r *pa.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *PriceApprovalRepo) Save(ctx context.Context, r *pa.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *PriceApprovalRepo) GetByID(ctx context.Context, id uint64) (*pa.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PriceApprovalRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*pa.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PriceApprovalRepo) ListByStatus(ctx context.Context, s pa.Status) ([]pa.Request, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}
