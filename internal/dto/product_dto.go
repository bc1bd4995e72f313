package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"min=0"`
	// StockEntryDate defaults to today when empty.
	StockEntryDate string  `json:"stock_entry_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     *string `json:"expiry_date"      validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProductRequest is a partial merge: nil fields keep their previous
// value. Updating a missing id is a silent no-op.
type UpdateProductRequest struct {
	Name           *string          `json:"name"             validate:"omitempty,min=1,max=120"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	SalePrice      *decimal.Decimal `json:"sale_price"`
	StockEntryDate *string          `json:"stock_entry_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     *string          `json:"expiry_date"      validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	StockEntryDate string          `json:"stock_entry_date"`
	ExpiryDate     *string         `json:"expiry_date"`
}

type SeedResponse struct {
	Added int `json:"added"`
}
