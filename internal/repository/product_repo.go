package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindByName matches trimmed, case-insensitively. Returns
	// gorm.ErrRecordNotFound when no product matches.
	FindByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	// ListWithPurchases returns products with at least one purchase record —
	// the "existing item" picker set.
	ListWithPurchases(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error

	// ApplyIntakeSideEffectsTx overwrites sale_price / expiry_date from a
	// purchase record inside the intake transaction. Nil fields are skipped.
	ApplyIntakeSideEffectsTx(tx *gorm.DB, id int64, salePrice *decimal.Decimal, expiryDate *time.Time) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = LOWER(TRIM(?))", name).
		Order("id ASC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) ListWithPurchases(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Distinct("products.*").
		Joins("INNER JOIN purchases ON purchases.product_id = products.id").
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the row only — purchases and bill items referencing the
// product are left dangling on purpose; joins resolve the name as "—".
func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) ApplyIntakeSideEffectsTx(tx *gorm.DB, id int64, salePrice *decimal.Decimal, expiryDate *time.Time) error {
	updates := map[string]interface{}{}
	if salePrice != nil {
		updates["sale_price"] = *salePrice
	}
	if expiryDate != nil {
		updates["expiry_date"] = *expiryDate
	}
	if len(updates) == 0 {
		return nil
	}
	err := tx.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
