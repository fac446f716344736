package mysql

import (
	"context"

	paDomain "wms-backend/internal/domain/priceapproval"
	regDomain "wms-backend/internal/domain/registration"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegistrationRepository struct{ db *gorm.DB }

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, req *regDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RegistrationRepository) Save(ctx context.Context, req *regDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id uint64) (*regDomain.Request, error) {
	var out regDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *RegistrationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*regDomain.Request, error) {
	var out regDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *RegistrationRepository) ExistsPendingByEmployeeCode(ctx context.Context, code string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&regDomain.Request{}).
		Where("employee_code = ? AND status = ?", code, regDomain.StatusPending).
		Count(&n)
	return n > 0, res.Error
}

func (r *RegistrationRepository) ListByStatus(ctx context.Context, s regDomain.Status) ([]regDomain.Request, error) {
	var out []regDomain.Request
	res := r.db.WithContext(ctx).Where("status = ?", s).Order("id ASC").Find(&out)
	return out, res.Error
}

type PriceApprovalRepository struct{ db *gorm.DB }

func NewPriceApprovalRepository(db *gorm.DB) *PriceApprovalRepository {
	return &PriceApprovalRepository{db: db}
}

func (r *PriceApprovalRepository) Create(ctx context.Context, req *paDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *PriceApprovalRepository) Save(ctx context.Context, req *paDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *PriceApprovalRepository) GetByID(ctx context.Context, id uint64) (*paDomain.Request, error) {
	var out paDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PriceApprovalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*paDomain.Request, error) {
	var out paDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *PriceApprovalRepository) ListByStatus(ctx context.Context, s paDomain.Status) ([]paDomain.Request, error) {
	var out []paDomain.Request
	res := r.db.WithContext(ctx).Where("status = ?", s).Order("id ASC").Find(&out)
	return out, res.Error
}
