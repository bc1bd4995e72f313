package repository

import (
	"context"

	"gorm.io/gorm"
)

// StockRepository supplies the two aggregate inputs of the stock projection.
// The projection itself (subtract, clamp, filter) lives in the service layer
// so it can be tested without a database.
type StockRepository interface {
	// PurchasedByProduct returns product_id → Σ purchase.quantity.
	PurchasedByProduct(ctx context.Context) (map[int64]int, error)
	// SoldByProduct returns product_id → Σ bill_item.quantity. Cash and
	// credit sales reduce stock identically.
	SoldByProduct(ctx context.Context) (map[int64]int, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

type productQty struct {
	ProductID int64
	Qty       int
}

func (r *stockRepo) sumByProduct(ctx context.Context, table string) (map[int64]int, error) {
	var rows []productQty
	err := r.db.WithContext(ctx).
		Raw("SELECT product_id, SUM(quantity) AS qty FROM " + table + " GROUP BY product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.ProductID] = row.Qty
	}
	return out, nil
}

func (r *stockRepo) PurchasedByProduct(ctx context.Context) (map[int64]int, error) {
	return r.sumByProduct(ctx, "purchases")
}

func (r *stockRepo) SoldByProduct(ctx context.Context) (map[int64]int, error) {
	return r.sumByProduct(ctx, "bill_items")
}
