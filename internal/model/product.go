package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The on-hand quantity is NOT stored here —
// it is derived from purchase and bill-item history (see service.StockService).
// Duplicate names are legal; intake flows match by trimmed, case-insensitive
// name before creating a new row.
type Product struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"index;not null"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SalePrice      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	StockEntryDate time.Time       `gorm:"not null"`
	ExpiryDate     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
