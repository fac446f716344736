package performance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Save(ctx context.Context, e *Entry) error
	// GetByWishMasterAndDate returns the single row for the upsert key, or
	// gorm.ErrRecordNotFound. The ForUpdate variant locks it inside a tx.
	GetByWishMasterAndDate(ctx context.Context, wishMasterID uint64, date time.Time) (*Entry, error)
	GetByWishMasterAndDateForUpdate(ctx context.Context, wishMasterID uint64, date time.Time) (*Entry, error)
	// ListByWishMaster returns entries ordered by delivery date ascending;
	// nil start/end leave that bound open. Both bounds are inclusive.
	ListByWishMaster(ctx context.Context, wishMasterID uint64, start, end *time.Time) ([]Entry, error)
	DeleteByWishMasterBetween(ctx context.Context, wishMasterID uint64, start, end time.Time) (int64, error)
}
