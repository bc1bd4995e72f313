package infra

import (
	"fmt"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite file, runs AutoMigrate to create /
// update all tables, then applies idempotent SQL patches that AutoMigrate
// cannot express (column backfills on pre-existing databases).
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Single writer: the store is sequential by design and SQLite locks the
	// whole file anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	hadExpiry := db.Migrator().HasColumn(&model.Product{}, "expiry_date")

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Purchase{},
		&model.Bill{},
		&model.BillItem{},
		&model.CreditPayment{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db, hadExpiry); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches backfills expiry_date on databases created before the
// column existed: one year past the stock entry date, per shop convention.
func applySchemaPatches(db *gorm.DB, hadExpiry bool) error {
	if hadExpiry {
		return nil
	}
	return db.Exec(
		`UPDATE products
		 SET expiry_date = DATE(stock_entry_date, '+1 year')
		 WHERE expiry_date IS NULL AND stock_entry_date IS NOT NULL`,
	).Error
}
