package registration

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Save(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint64) (*Request, error)
	// GetByIDForUpdate locks the request row so concurrent resolutions
	// cannot both observe PENDING.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Request, error)
	ExistsPendingByEmployeeCode(ctx context.Context, code string) (bool, error)
	ListByStatus(ctx context.Context, s Status) ([]Request, error)
}
