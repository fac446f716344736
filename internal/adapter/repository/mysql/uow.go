package mysql

import (
	"context"

	"wms-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// reposFor binds every repository to one transaction handle.
func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Hubs:           &HubRepository{db: tx},
		HubAdmins:      &HubAdminRepository{db: tx},
		SuperAdmins:    &SuperAdminRepository{db: tx},
		WishMasters:    &WishMasterRepository{db: tx},
		Documents:      &DocumentRepository{db: tx},
		Registrations:  &RegistrationRepository{db: tx},
		PriceApprovals: &PriceApprovalRepository{db: tx},
		Entries:        &PerformanceRepository{db: tx},
	}
}
