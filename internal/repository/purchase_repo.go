package repository

import (
	"context"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	// CreateTx inserts inside the intake transaction — callers pass the tx.
	CreateTx(tx *gorm.DB, p *model.Purchase) error
	FindByID(ctx context.Context, id int64) (*model.Purchase, error)
	List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, error)
	Count(ctx context.Context, filter dto.PurchaseFilter) (int64, error)
	// UpdateTx replaces the editable fields inside the edit transaction.
	UpdateTx(tx *gorm.DB, p *model.Purchase) error
	Delete(ctx context.Context, id int64) error
	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) CreateTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id int64) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Product").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) filtered(ctx context.Context, filter dto.PurchaseFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Purchase{})
	if filter.Date != "" {
		q = q.Where("DATE(purchase_date) = ?", filter.Date)
	}
	return q
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.filtered(ctx, filter).
		Preload("Product").
		Order("purchase_date DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Count(ctx context.Context, filter dto.PurchaseFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

func (r *purchaseRepo) UpdateTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Save(p).Error
}

func (r *purchaseRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Purchase{}, id).Error
}
