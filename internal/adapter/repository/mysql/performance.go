package mysql

import (
	"context"
	"time"

	perfDomain "wms-backend/internal/domain/performance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PerformanceRepository struct{ db *gorm.DB }

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) Create(ctx context.Context, e *perfDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PerformanceRepository) Save(ctx context.Context, e *perfDomain.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *PerformanceRepository) GetByWishMasterAndDate(ctx context.Context, wishMasterID uint64, date time.Time) (*perfDomain.Entry, error) {
	var out perfDomain.Entry
	res := r.db.WithContext(ctx).
		Where("wish_master_id = ? AND delivery_date = ?", wishMasterID, perfDomain.DateOnly(date)).
		First(&out)
	return &out, res.Error
}

func (r *PerformanceRepository) GetByWishMasterAndDateForUpdate(ctx context.Context, wishMasterID uint64, date time.Time) (*perfDomain.Entry, error) {
	var out perfDomain.Entry
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wish_master_id = ? AND delivery_date = ?", wishMasterID, perfDomain.DateOnly(date)).
		First(&out)
	return &out, res.Error
}

func (r *PerformanceRepository) ListByWishMaster(ctx context.Context, wishMasterID uint64, start, end *time.Time) ([]perfDomain.Entry, error) {
	q := r.db.WithContext(ctx).Where("wish_master_id = ?", wishMasterID)
	if start != nil {
		q = q.Where("delivery_date >= ?", perfDomain.DateOnly(*start))
	}
	if end != nil {
		q = q.Where("delivery_date <= ?", perfDomain.DateOnly(*end))
	}
	var out []perfDomain.Entry
	res := q.Order("delivery_date ASC").Find(&out)
	return out, res.Error
}

func (r *PerformanceRepository) DeleteByWishMasterBetween(ctx context.Context, wishMasterID uint64, start, end time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("wish_master_id = ? AND delivery_date >= ? AND delivery_date <= ?",
			wishMasterID, perfDomain.DateOnly(start), perfDomain.DateOnly(end)).
		Delete(&perfDomain.Entry{})
	return res.RowsAffected, res.Error
}
