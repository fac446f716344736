// Package perfmock provides a function-backed mock for the delivery
// performance repository.
package perfmock

import (
	"context"
	"time"

	domain "wms-backend/internal/domain/performance"

	"gorm.io/gorm"
)

type Repo struct {
	CreateFn                          func(ctx context.Context, e *domain.Entry) error
	SaveFn                            func(ctx context.Context, e *domain.Entry) error
	GetByWishMasterAndDateFn          func(ctx context.Context, wishMasterID uint64, date time.Time) (*domain.Entry, error)
	GetByWishMasterAndDateForUpdateFn func(ctx context.Context, wishMasterID uint64, date time.Time) (*domain.Entry, error)
	ListByWishMasterFn                func(ctx context.Context, wishMasterID uint64, start, end *time.Time) ([]domain.Entry, error)
	DeleteByWishMasterBetweenFn       func(ctx context.Context, wishMasterID uint64, start, end time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByWishMasterAndDate(ctx context.Context, wishMasterID uint64, date time.Time) (*domain.Entry, error) {
	if m.GetByWishMasterAndDateFn != nil {
		return m.GetByWishMasterAndDateFn(ctx, wishMasterID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByWishMasterAndDateForUpdate(ctx context.Context, wishMasterID uint64, date time.Time) (*domain.Entry, error) {
	if m.GetByWishMasterAndDateForUpdateFn != nil {
		return m.GetByWishMasterAndDateForUpdateFn(ctx, wishMasterID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByWishMaster(ctx context.Context, wishMasterID uint64, start, end *time.Time) ([]domain.Entry, error) {
	if m.ListByWishMasterFn != nil {
		return m.ListByWishMasterFn(ctx, wishMasterID, start, end)
	}
	return nil, nil
}

func (m *Repo) DeleteByWishMasterBetween(ctx context.Context, wishMasterID uint64, start, end time.Time) (int64, error) {
	if m.DeleteByWishMasterBetweenFn != nil {
		return m.DeleteByWishMasterBetweenFn(ctx, wishMasterID, start, end)
	}
	return 0, nil
}
