package mysql

import (
	"context"

	dirDomain "wms-backend/internal/domain/directory"
	wmDomain "wms-backend/internal/domain/wishmaster"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishMasterRepository struct{ db *gorm.DB }

func NewWishMasterRepository(db *gorm.DB) *WishMasterRepository {
	return &WishMasterRepository{db: db}
}

func (r *WishMasterRepository) Create(ctx context.Context, w *wmDomain.WishMaster) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WishMasterRepository) Save(ctx context.Context, w *wmDomain.WishMaster) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WishMasterRepository) GetByID(ctx context.Context, id uint64) (*wmDomain.WishMaster, error) {
	var out wmDomain.WishMaster
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *WishMasterRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*wmDomain.WishMaster, error) {
	var out wmDomain.WishMaster
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *WishMasterRepository) GetByEmployeeCode(ctx context.Context, code string) (*wmDomain.WishMaster, error) {
	var out wmDomain.WishMaster
	res := r.db.WithContext(ctx).Where("employee_code = ?", code).First(&out)
	return &out, res.Error
}

func (r *WishMasterRepository) ExistsActiveByEmployeeCode(ctx context.Context, code string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&wmDomain.WishMaster{}).
		Where("employee_code = ? AND status = ?", code, dirDomain.StatusActive).
		Count(&n)
	return n > 0, res.Error
}

func (r *WishMasterRepository) ListActiveByHubAdmin(ctx context.Context, hubAdminID uint64) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).
		Where("hub_admin_id = ? AND status = ? AND approval_status = ?",
			hubAdminID, dirDomain.StatusActive, wmDomain.ApprovalApproved).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// ListActiveByHub joins through hub_admins; ownership is id-keyed, so the
// hub relationship is resolved here rather than via entity back-references.
func (r *WishMasterRepository) ListActiveByHub(ctx context.Context, hubID uint64) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).
		Joins("JOIN hub_admins ON hub_admins.id = wish_masters.hub_admin_id").
		Where("hub_admins.hub_id = ? AND wish_masters.status = ? AND wish_masters.approval_status = ?",
			hubID, dirDomain.StatusActive, wmDomain.ApprovalApproved).
		Order("wish_masters.id ASC").
		Find(&out)
	return out, res.Error
}

func (r *WishMasterRepository) ListByHubAdmin(ctx context.Context, hubAdminID uint64) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).Where("hub_admin_id = ?", hubAdminID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *WishMasterRepository) ListInactive(ctx context.Context) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).Where("status = ?", dirDomain.StatusInactive).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *WishMasterRepository) SearchByEmployeeCode(ctx context.Context, sub string) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).
		Where("employee_code LIKE ? AND status = ? AND approval_status = ?",
			"%"+sub+"%", dirDomain.StatusActive, wmDomain.ApprovalApproved).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *WishMasterRepository) SearchByHubAdminAndEmployeeCode(ctx context.Context, hubAdminID uint64, sub string) ([]wmDomain.WishMaster, error) {
	var out []wmDomain.WishMaster
	res := r.db.WithContext(ctx).
		Where("hub_admin_id = ? AND employee_code LIKE ? AND status = ? AND approval_status = ?",
			hubAdminID, "%"+sub+"%", dirDomain.StatusActive, wmDomain.ApprovalApproved).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *wmDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) ListByWishMaster(ctx context.Context, wishMasterID uint64) ([]wmDomain.Document, error) {
	var out []wmDomain.Document
	res := r.db.WithContext(ctx).Where("wish_master_id = ?", wishMasterID).Order("id ASC").Find(&out)
	return out, res.Error
}
