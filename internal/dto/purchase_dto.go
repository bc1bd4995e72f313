package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AddPurchaseRequest records one stock-intake event. Either product_id or
// product_name must be supplied; a name is matched against the catalog
// case-insensitively (trimmed) and a new product is created when no match
// exists. sale_price and expiry_date, when present, overwrite the product's
// current values (last write wins).
type AddPurchaseRequest struct {
	ProductID    *int64           `json:"product_id"    validate:"omitempty,gt=0"`
	ProductName  string           `json:"product_name"  validate:"omitempty,min=1,max=120"`
	Quantity     int              `json:"quantity"      validate:"required,min=1"`
	TotalValue   decimal.Decimal  `json:"total_value"   validate:"min=0"`
	PurchaseDate string           `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate   *string          `json:"expiry_date"   validate:"omitempty,datetime=2006-01-02"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
}

// UpdatePurchaseRequest replaces every editable field of a purchase.
// The product reference itself never changes.
type UpdatePurchaseRequest struct {
	Quantity     int              `json:"quantity"      validate:"required,min=1"`
	TotalValue   decimal.Decimal  `json:"total_value"   validate:"min=0"`
	PurchaseDate string           `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate   *string          `json:"expiry_date"   validate:"omitempty,datetime=2006-01-02"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// PurchaseFilter is bound from the query string of GET /v1/purchases.
// Limit is clamped to [1,1000] by the service.
type PurchaseFilter struct {
	Date   string `form:"date"` // YYYY-MM-DD; empty = all
	Limit  int    `form:"limit,default=10"`
	Offset int    `form:"offset,default=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseResponse struct {
	ID           int64            `json:"id"`
	ProductID    int64            `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Quantity     int              `json:"quantity"`
	TotalValue   decimal.Decimal  `json:"total_value"`
	PurchaseDate string           `json:"purchase_date"`
	ExpiryDate   *string          `json:"expiry_date"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
}

type PurchaseListResponse struct {
	Data   []PurchaseResponse `json:"data"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
