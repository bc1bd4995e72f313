package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditPayment is an append-only history entry of a partial payment against
// a credit bill. Rows are never modified or deleted.
type CreditPayment struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	BillID      int64           `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate time.Time       `gorm:"not null"`
	CreatedAt   time.Time
}
