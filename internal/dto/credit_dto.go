package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddCreditPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"       validate:"required"`
	PaymentDate string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CreditPaymentResponse struct {
	ID          int64           `json:"id"`
	BillID      int64           `json:"bill_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}
