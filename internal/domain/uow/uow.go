package uow

import (
	"context"

	"wms-backend/internal/domain/directory"
	"wms-backend/internal/domain/performance"
	"wms-backend/internal/domain/priceapproval"
	"wms-backend/internal/domain/registration"
	"wms-backend/internal/domain/wishmaster"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Hubs           directory.HubRepository
	HubAdmins      directory.HubAdminRepository
	SuperAdmins    directory.SuperAdminRepository
	WishMasters    wishmaster.Repository
	Documents      wishmaster.DocumentRepository
	Registrations  registration.Repository
	PriceApprovals priceapproval.Repository
	Entries        performance.Repository
}

// UnitOfWork runs fn atomically; a returned error rolls everything back.
// Workflow resolution and the ledger upsert both depend on this to make
// their check-then-write sequences safe against concurrent writers.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
