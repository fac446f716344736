package mysql

import (
	"testing"

	dirDomain "wms-backend/internal/domain/directory"
	perfDomain "wms-backend/internal/domain/performance"
	paDomain "wms-backend/internal/domain/priceapproval"
	regDomain "wms-backend/internal/domain/registration"
	wmDomain "wms-backend/internal/domain/wishmaster"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// entity tags are portable, so the domain models migrate directly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&dirDomain.Hub{},
		&dirDomain.HubAdmin{},
		&dirDomain.SuperAdmin{},
		&wmDomain.WishMaster{},
		&wmDomain.Document{},
		&regDomain.Request{},
		&paDomain.Request{},
		&perfDomain.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
