package priceapproval

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Save(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint64) (*Request, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Request, error)
	ListByStatus(ctx context.Context, s Status) ([]Request, error)
}
