package directory

import "context"

type HubRepository interface {
	Create(ctx context.Context, h *Hub) error
	Save(ctx context.Context, h *Hub) error
	GetByID(ctx context.Context, id uint64) (*Hub, error)
	GetByCode(ctx context.Context, code string) (*Hub, error)
	List(ctx context.Context) ([]Hub, error)
	ListByCity(ctx context.Context, city string) ([]Hub, error)
	ListByCityAndArea(ctx context.Context, city, area string) ([]Hub, error)
}

type HubAdminRepository interface {
	Create(ctx context.Context, a *HubAdmin) error
	Save(ctx context.Context, a *HubAdmin) error
	GetByID(ctx context.Context, id uint64) (*HubAdmin, error)
	// ListActiveByHub returns active admins assigned to the hub; used to
	// enforce the one-active-admin-per-hub rule at creation.
	ListActiveByHub(ctx context.Context, hubID uint64) ([]HubAdmin, error)
	ListActive(ctx context.Context) ([]HubAdmin, error)
	ListInactive(ctx context.Context) ([]HubAdmin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type SuperAdminRepository interface {
	Create(ctx context.Context, a *SuperAdmin) error
	GetByID(ctx context.Context, id uint64) (*SuperAdmin, error)
	List(ctx context.Context) ([]SuperAdmin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
