package dto

import "github.com/shopspring/decimal"

// StockItemResponse is a catalog row enriched with the derived on-hand
// quantity (sum of purchases minus sum of bill items, floored at 0).
type StockItemResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	StockEntryDate string          `json:"stock_entry_date"`
	ExpiryDate     *string         `json:"expiry_date"`
	Quantity       int             `json:"quantity"`
}

// NearExpiryItemResponse is a stocked product whose expiry date falls inside
// the lookahead window, ranked by urgency.
type NearExpiryItemResponse struct {
	StockItemResponse
	DaysUntilExpiry int `json:"days_until_expiry"`
	// Urgent marks items expiring within 7 days.
	Urgent bool `json:"urgent"`
}
