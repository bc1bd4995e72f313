package repository

import (
	"context"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesSummaryRecord is one bill line joined with its bill and product.
// ProductName is nil when the product was deleted after the sale.
type SalesSummaryRecord struct {
	BillID          int64
	BillDate        time.Time
	PaymentMethod   string
	Total           decimal.Decimal
	AmountPaid      decimal.Decimal
	CreditRemaining decimal.Decimal
	ProductID       int64
	ProductName     *string
	Quantity        int
	UnitPrice       decimal.Decimal
	LineTotal       decimal.Decimal
	PurchasePrice   decimal.Decimal
}

type BillRepository interface {
	// CreateTx persists the bill and its items in one insert inside the
	// caller's transaction — either everything becomes visible or nothing.
	CreateTx(tx *gorm.DB, b *model.Bill) error
	FindByID(ctx context.Context, id int64) (*model.Bill, error)
	List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, error)
	// ListWithCredit returns credit bills with a positive remaining balance,
	// oldest first.
	ListWithCredit(ctx context.Context) ([]model.Bill, error)
	// SetPrinted flips printed to true; missing ids are a silent no-op.
	SetPrinted(ctx context.Context, id int64) error
	Items(ctx context.Context, billID int64) ([]model.BillItem, error)
	SalesSummary(ctx context.Context, filter dto.SalesSummaryFilter) ([]SalesSummaryRecord, error)
	// UpdateCreditTx rewrites the amortization pair inside the payment tx.
	UpdateCreditTx(tx *gorm.DB, id int64, amountPaid, creditRemaining decimal.Decimal) error
	DB() *gorm.DB
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) DB() *gorm.DB { return r.db }

func (r *billRepo) CreateTx(tx *gorm.DB, b *model.Bill) error {
	return tx.Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id int64) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Preload("Items").First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *billRepo) List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, error) {
	var bills []model.Bill
	q := r.db.WithContext(ctx).Model(&model.Bill{})
	if filter.FromDate != "" {
		q = q.Where("DATE(bill_date) >= DATE(?)", filter.FromDate)
	}
	if filter.ToDate != "" {
		q = q.Where("DATE(bill_date) <= DATE(?)", filter.ToDate)
	}
	err := q.Order("bill_date DESC, id DESC").Find(&bills).Error
	return bills, err
}

func (r *billRepo) ListWithCredit(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).
		Where("payment_method = ? AND credit_remaining > 0", model.PaymentCredit).
		Order("bill_date ASC, id ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepo) SetPrinted(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Bill{}).
		Where("id = ?", id).
		Update("printed", true).Error
}

func (r *billRepo) Items(ctx context.Context, billID int64) ([]model.BillItem, error) {
	var items []model.BillItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("bill_id = ?", billID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *billRepo) SalesSummary(ctx context.Context, filter dto.SalesSummaryFilter) ([]SalesSummaryRecord, error) {
	sql := `
		SELECT bi.bill_id, b.bill_date, b.payment_method, b.total, b.amount_paid, b.credit_remaining,
		       bi.product_id, p.name AS product_name, bi.quantity, bi.unit_price, bi.line_total,
		       COALESCE(p.purchase_price, 0) AS purchase_price
		FROM bill_items bi
		JOIN bills b ON b.id = bi.bill_id
		LEFT JOIN products p ON p.id = bi.product_id
		WHERE 1=1`
	args := []interface{}{}
	if filter.FromDate != "" {
		sql += " AND DATE(b.bill_date) >= DATE(?)"
		args = append(args, filter.FromDate)
	}
	if filter.ToDate != "" {
		sql += " AND DATE(b.bill_date) <= DATE(?)"
		args = append(args, filter.ToDate)
	}
	if filter.Date != "" {
		sql += " AND DATE(b.bill_date) = DATE(?)"
		args = append(args, filter.Date)
	}
	sql += " ORDER BY b.bill_date DESC, bi.id ASC"

	var records []SalesSummaryRecord
	err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&records).Error
	return records, err
}

func (r *billRepo) UpdateCreditTx(tx *gorm.DB, id int64, amountPaid, creditRemaining decimal.Decimal) error {
	return tx.Model(&model.Bill{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount_paid":      amountPaid,
		"credit_remaining": creditRemaining,
	}).Error
}
