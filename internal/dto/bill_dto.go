package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type BillItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	// LineTotal is advisory — the service recomputes unit_price * quantity.
	LineTotal decimal.Decimal `json:"line_total"`
}

type CreateBillRequest struct {
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash credit"`
	Total         decimal.Decimal   `json:"total"`
	Items         []BillItemRequest `json:"items" validate:"required,min=1,dive"`
	// Credit-only fields. amount_paid defaults to 0; credit_remaining
	// defaults to max(0, total - amount_paid) when absent.
	AmountPaid      *decimal.Decimal `json:"amount_paid"`
	CreditRemaining *decimal.Decimal `json:"credit_remaining"`
	CustomerName    *string          `json:"customer_name"   validate:"omitempty,max=120"`
	CustomerMobile  *string          `json:"customer_mobile" validate:"omitempty,max=20"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type BillFilter struct {
	FromDate string `form:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"to_date"   validate:"omitempty,datetime=2006-01-02"`
}

type SalesSummaryFilter struct {
	FromDate string `form:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"to_date"   validate:"omitempty,datetime=2006-01-02"`
	Date     string `form:"date"      validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillItemResponse struct {
	ID        int64           `json:"id"`
	BillID    int64           `json:"bill_id"`
	ProductID int64           `json:"product_id"`
	// ProductName is "—" when the referenced product was deleted.
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type BillResponse struct {
	ID              int64           `json:"id"`
	BillDate        string          `json:"bill_date"`
	PaymentMethod   string          `json:"payment_method"`
	Total           decimal.Decimal `json:"total"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	CreditRemaining decimal.Decimal `json:"credit_remaining"`
	Printed         bool            `json:"printed"`
	CustomerName    *string         `json:"customer_name"`
	CustomerMobile  *string         `json:"customer_mobile"`
}

// SalesSummaryRow is one bill line joined with its bill and product,
// with per-line profit = (unit_price - purchase_price) * quantity.
type SalesSummaryRow struct {
	BillID          int64           `json:"bill_id"`
	BillDate        string          `json:"bill_date"`
	PaymentMethod   string          `json:"payment_method"`
	Total           decimal.Decimal `json:"total"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	CreditRemaining decimal.Decimal `json:"credit_remaining"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	Profit          decimal.Decimal `json:"profit"`
}
