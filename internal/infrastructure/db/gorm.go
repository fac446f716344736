package db

import (
	"log"
	"time"

	"wms-backend/internal/domain/directory"
	"wms-backend/internal/domain/performance"
	"wms-backend/internal/domain/priceapproval"
	"wms-backend/internal/domain/registration"
	"wms-backend/internal/domain/wishmaster"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can hand in a mocked connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// Migrate keeps the schema in step with the entity definitions, including
// the (wish_master_id, delivery_date) unique index the ledger upsert
// relies on as its conflict backstop.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&directory.Hub{},
		&directory.HubAdmin{},
		&directory.SuperAdmin{},
		&wishmaster.WishMaster{},
		&wishmaster.Document{},
		&registration.Request{},
		&priceapproval.Request{},
		&performance.Entry{},
	)
}
