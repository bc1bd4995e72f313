package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the bill transaction.
const (
	PaymentCash   = "cash"
	PaymentCredit = "credit"
)

// Bill is a completed sale. Invariant at creation:
// amount_paid + credit_remaining == total. A bill stays in the outstanding
// credit list while payment_method = credit and credit_remaining > 0; there
// is no explicit closed flag. Printed flips false→true once, never back.
type Bill struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	BillDate        time.Time       `gorm:"index;not null"`
	PaymentMethod   string          `gorm:"type:varchar(10);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreditRemaining decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Printed         bool            `gorm:"not null;default:false"`
	CustomerName    *string
	CustomerMobile  *string
	CreatedAt       time.Time

	Items []BillItem `gorm:"foreignKey:BillID"`
}

// BillItem fixes the unit price and quantity of one product at sale time.
// Rows are immutable once created — no update or delete operation exists.
// line_total == unit_price * quantity always holds; it is recomputed by the
// bill service rather than trusted from the caller.
type BillItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	BillID    int64           `gorm:"index;not null"`
	ProductID int64           `gorm:"index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
