package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is one stock-intake event. Recording (or editing) a purchase that
// carries a sale_price or expiry_date overwrites the product's current values
// as a side effect — last write wins across purchases of the same product.
// Edits and deletes are independent events: they do not re-validate that the
// derived stock stays non-negative.
type Purchase struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ProductID    int64           `gorm:"index;not null"`
	Quantity     int             `gorm:"not null"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PurchaseDate time.Time       `gorm:"index;not null"`
	ExpiryDate   *time.Time
	SalePrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
