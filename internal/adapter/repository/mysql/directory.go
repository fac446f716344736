package mysql

import (
	"context"

	dirDomain "wms-backend/internal/domain/directory"

	"gorm.io/gorm"
)

type HubRepository struct{ db *gorm.DB }

func NewHubRepository(db *gorm.DB) *HubRepository { return &HubRepository{db: db} }

func (r *HubRepository) Create(ctx context.Context, h *dirDomain.Hub) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HubRepository) Save(ctx context.Context, h *dirDomain.Hub) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HubRepository) GetByID(ctx context.Context, id uint64) (*dirDomain.Hub, error) {
	var out dirDomain.Hub
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *HubRepository) GetByCode(ctx context.Context, code string) (*dirDomain.Hub, error) {
	var out dirDomain.Hub
	res := r.db.WithContext(ctx).Where("hub_code = ?", code).First(&out)
	return &out, res.Error
}

func (r *HubRepository) List(ctx context.Context) ([]dirDomain.Hub, error) {
	var out []dirDomain.Hub
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *HubRepository) ListByCity(ctx context.Context, city string) ([]dirDomain.Hub, error) {
	var out []dirDomain.Hub
	res := r.db.WithContext(ctx).Where("city = ?", city).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *HubRepository) ListByCityAndArea(ctx context.Context, city, area string) ([]dirDomain.Hub, error) {
	var out []dirDomain.Hub
	res := r.db.WithContext(ctx).Where("city = ? AND area = ?", city, area).Order("id ASC").Find(&out)
	return out, res.Error
}

type HubAdminRepository struct{ db *gorm.DB }

func NewHubAdminRepository(db *gorm.DB) *HubAdminRepository { return &HubAdminRepository{db: db} }

func (r *HubAdminRepository) Create(ctx context.Context, a *dirDomain.HubAdmin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *HubAdminRepository) Save(ctx context.Context, a *dirDomain.HubAdmin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *HubAdminRepository) GetByID(ctx context.Context, id uint64) (*dirDomain.HubAdmin, error) {
	var out dirDomain.HubAdmin
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *HubAdminRepository) ListActiveByHub(ctx context.Context, hubID uint64) ([]dirDomain.HubAdmin, error) {
	var out []dirDomain.HubAdmin
	res := r.db.WithContext(ctx).
		Where("hub_id = ? AND status = ?", hubID, dirDomain.StatusActive).
		Find(&out)
	return out, res.Error
}

func (r *HubAdminRepository) ListActive(ctx context.Context) ([]dirDomain.HubAdmin, error) {
	var out []dirDomain.HubAdmin
	res := r.db.WithContext(ctx).Where("status = ?", dirDomain.StatusActive).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *HubAdminRepository) ListInactive(ctx context.Context) ([]dirDomain.HubAdmin, error) {
	var out []dirDomain.HubAdmin
	res := r.db.WithContext(ctx).Where("status = ?", dirDomain.StatusInactive).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *HubAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&dirDomain.HubAdmin{}).Where("email = ?", email).Count(&n)
	return n > 0, res.Error
}

func (r *HubAdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&dirDomain.HubAdmin{}).Where("username = ?", username).Count(&n)
	return n > 0, res.Error
}

type SuperAdminRepository struct{ db *gorm.DB }

func NewSuperAdminRepository(db *gorm.DB) *SuperAdminRepository {
	return &SuperAdminRepository{db: db}
}

func (r *SuperAdminRepository) Create(ctx context.Context, a *dirDomain.SuperAdmin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *SuperAdminRepository) GetByID(ctx context.Context, id uint64) (*dirDomain.SuperAdmin, error) {
	var out dirDomain.SuperAdmin
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *SuperAdminRepository) List(ctx context.Context) ([]dirDomain.SuperAdmin, error) {
	var out []dirDomain.SuperAdmin
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SuperAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&dirDomain.SuperAdmin{}).Where("email = ?", email).Count(&n)
	return n > 0, res.Error
}
