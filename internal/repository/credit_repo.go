package repository

import (
	"context"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"gorm.io/gorm"
)

type CreditPaymentRepository interface {
	// CreateTx appends a payment row inside the amortization transaction.
	CreateTx(tx *gorm.DB, p *model.CreditPayment) error
	ListByBill(ctx context.Context, billID int64) ([]model.CreditPayment, error)
}

type creditPaymentRepo struct{ db *gorm.DB }

func NewCreditPaymentRepository(db *gorm.DB) CreditPaymentRepository {
	return &creditPaymentRepo{db: db}
}

func (r *creditPaymentRepo) CreateTx(tx *gorm.DB, p *model.CreditPayment) error {
	return tx.Create(p).Error
}

func (r *creditPaymentRepo) ListByBill(ctx context.Context, billID int64) ([]model.CreditPayment, error) {
	var payments []model.CreditPayment
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("payment_date ASC, id ASC").
		Find(&payments).Error
	return payments, err
}
