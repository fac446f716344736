package wishmaster

import "context"

type Repository interface {
	Create(ctx context.Context, w *WishMaster) error
	Save(ctx context.Context, w *WishMaster) error
	GetByID(ctx context.Context, id uint64) (*WishMaster, error)
	// GetByIDForUpdate locks the row for the duration of the enclosing
	// transaction; used when a rate change is about to be applied.
	GetByIDForUpdate(ctx context.Context, id uint64) (*WishMaster, error)
	GetByEmployeeCode(ctx context.Context, code string) (*WishMaster, error)
	ExistsActiveByEmployeeCode(ctx context.Context, code string) (bool, error)
	ListActiveByHubAdmin(ctx context.Context, hubAdminID uint64) ([]WishMaster, error)
	ListActiveByHub(ctx context.Context, hubID uint64) ([]WishMaster, error)
	ListByHubAdmin(ctx context.Context, hubAdminID uint64) ([]WishMaster, error)
	ListInactive(ctx context.Context) ([]WishMaster, error)
	// SearchByEmployeeCode matches employee codes containing sub
	// (case-insensitive), active + approved only.
	SearchByEmployeeCode(ctx context.Context, sub string) ([]WishMaster, error)
	SearchByHubAdminAndEmployeeCode(ctx context.Context, hubAdminID uint64, sub string) ([]WishMaster, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	ListByWishMaster(ctx context.Context, wishMasterID uint64) ([]Document, error)
}
