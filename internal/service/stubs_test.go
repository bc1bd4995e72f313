package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories for unit tests. DB() returns nil so runTx executes
// the transaction body directly.

type stubProductRepo struct {
	products      map[int64]*model.Product
	withPurchases map[int64]bool
	nextID        int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:      make(map[int64]*model.Product),
		withPurchases: make(map[int64]bool),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	var found *model.Product
	for _, p := range r.products {
		if strings.ToLower(strings.TrimSpace(p.Name)) != want {
			continue
		}
		if found == nil || p.ID < found.ID {
			found = p
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (r *stubProductRepo) sorted() []model.Product {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	return r.sorted(), nil
}

func (r *stubProductRepo) ListWithPurchases(_ context.Context) ([]model.Product, error) {
	all := r.sorted()
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if r.withPurchases[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) ApplyIntakeSideEffectsTx(_ *gorm.DB, id int64, salePrice *decimal.Decimal, expiryDate *time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	if salePrice != nil {
		p.SalePrice = *salePrice
	}
	if expiryDate != nil {
		p.ExpiryDate = expiryDate
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubPurchaseRepo struct {
	purchases map[int64]*model.Purchase
	products  *stubProductRepo
	nextID    int64
}

func newStubPurchaseRepo(products *stubProductRepo) *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[int64]*model.Purchase), products: products}
}

func (r *stubPurchaseRepo) CreateTx(_ *gorm.DB, p *model.Purchase) error {
	r.nextID++
	p.ID = r.nextID
	r.purchases[p.ID] = p
	if r.products != nil {
		r.products.withPurchases[p.ProductID] = true
	}
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id int64) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if r.products != nil {
		if prod, ok := r.products.products[p.ProductID]; ok {
			p.Product = prod
		} else {
			p.Product = nil
		}
	}
	return p, nil
}

func (r *stubPurchaseRepo) matching(filter dto.PurchaseFilter) []*model.Purchase {
	out := make([]*model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		if filter.Date != "" && p.PurchaseDate.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PurchaseDate.Equal(out[j].PurchaseDate) {
			return out[i].PurchaseDate.After(out[j].PurchaseDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *stubPurchaseRepo) List(_ context.Context, filter dto.PurchaseFilter) ([]model.Purchase, error) {
	rows := r.matching(filter)
	if filter.Offset < len(rows) {
		rows = rows[filter.Offset:]
	} else {
		rows = nil
	}
	if filter.Limit > 0 && filter.Limit < len(rows) {
		rows = rows[:filter.Limit]
	}
	out := make([]model.Purchase, 0, len(rows))
	for _, p := range rows {
		cp := *p
		if r.products != nil {
			if prod, ok := r.products.products[p.ProductID]; ok {
				cp.Product = prod
			} else {
				cp.Product = nil
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *stubPurchaseRepo) Count(_ context.Context, filter dto.PurchaseFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *stubPurchaseRepo) UpdateTx(_ *gorm.DB, p *model.Purchase) error {
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) Delete(_ context.Context, id int64) error {
	delete(r.purchases, id)
	return nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

type stubBillRepo struct {
	bills    map[int64]*model.Bill
	products *stubProductRepo
	nextID   int64
	itemID   int64
}

func newStubBillRepo(products *stubProductRepo) *stubBillRepo {
	return &stubBillRepo{bills: make(map[int64]*model.Bill), products: products}
}

func (r *stubBillRepo) CreateTx(_ *gorm.DB, b *model.Bill) error {
	r.nextID++
	b.ID = r.nextID
	for i := range b.Items {
		r.itemID++
		b.Items[i].ID = r.itemID
		b.Items[i].BillID = b.ID
	}
	r.bills[b.ID] = b
	return nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id int64) (*model.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBillRepo) List(_ context.Context, _ dto.BillFilter) ([]model.Bill, error) {
	out := make([]model.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubBillRepo) ListWithCredit(_ context.Context) ([]model.Bill, error) {
	out := make([]model.Bill, 0)
	for _, b := range r.bills {
		if b.PaymentMethod == model.PaymentCredit && b.CreditRemaining.IsPositive() {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBillRepo) SetPrinted(_ context.Context, id int64) error {
	if b, ok := r.bills[id]; ok {
		b.Printed = true
	}
	return nil
}

func (r *stubBillRepo) Items(_ context.Context, billID int64) ([]model.BillItem, error) {
	b, ok := r.bills[billID]
	if !ok {
		return nil, nil
	}
	out := make([]model.BillItem, 0, len(b.Items))
	for _, item := range b.Items {
		if r.products != nil {
			if prod, ok := r.products.products[item.ProductID]; ok {
				item.Product = prod
			} else {
				item.Product = nil
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *stubBillRepo) SalesSummary(_ context.Context, filter dto.SalesSummaryFilter) ([]repository.SalesSummaryRecord, error) {
	var out []repository.SalesSummaryRecord
	for _, b := range r.bills {
		if filter.Date != "" && b.BillDate.Format("2006-01-02") != filter.Date {
			continue
		}
		for _, item := range b.Items {
			rec := repository.SalesSummaryRecord{
				BillID:          b.ID,
				BillDate:        b.BillDate,
				PaymentMethod:   b.PaymentMethod,
				Total:           b.Total,
				AmountPaid:      b.AmountPaid,
				CreditRemaining: b.CreditRemaining,
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				UnitPrice:       item.UnitPrice,
				LineTotal:       item.LineTotal,
				PurchasePrice:   decimal.Zero,
			}
			if r.products != nil {
				if prod, ok := r.products.products[item.ProductID]; ok {
					name := prod.Name
					rec.ProductName = &name
					rec.PurchasePrice = prod.PurchasePrice
				}
			}
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BillDate.Equal(out[j].BillDate) {
			return out[i].BillDate.After(out[j].BillDate)
		}
		return out[i].BillID < out[j].BillID
	})
	return out, nil
}

func (r *stubBillRepo) UpdateCreditTx(_ *gorm.DB, id int64, amountPaid, creditRemaining decimal.Decimal) error {
	if b, ok := r.bills[id]; ok {
		b.AmountPaid = amountPaid
		b.CreditRemaining = creditRemaining
	}
	return nil
}

func (r *stubBillRepo) DB() *gorm.DB { return nil }

var _ repository.BillRepository = (*stubBillRepo)(nil)

type stubCreditPaymentRepo struct {
	payments []model.CreditPayment
	nextID   int64
}

func (r *stubCreditPaymentRepo) CreateTx(_ *gorm.DB, p *model.CreditPayment) error {
	r.nextID++
	p.ID = r.nextID
	r.payments = append(r.payments, *p)
	return nil
}

func (r *stubCreditPaymentRepo) ListByBill(_ context.Context, billID int64) ([]model.CreditPayment, error) {
	out := make([]model.CreditPayment, 0)
	for _, p := range r.payments {
		if p.BillID == billID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.CreditPaymentRepository = (*stubCreditPaymentRepo)(nil)

type stubStockRepo struct {
	purchased map[int64]int
	sold      map[int64]int
}

func (r *stubStockRepo) PurchasedByProduct(_ context.Context) (map[int64]int, error) {
	return r.purchased, nil
}

func (r *stubStockRepo) SoldByProduct(_ context.Context) (map[int64]int, error) {
	return r.sold, nil
}

var _ repository.StockRepository = (*stubStockRepo)(nil)

// stubStockService serves fixed on-hand quantities to the bill service.
type stubStockService struct {
	onHand map[int64]int
}

func (s *stubStockService) StockWithQuantity(_ context.Context) ([]dto.StockItemResponse, error) {
	return nil, nil
}
func (s *stubStockService) Sellable(_ context.Context) ([]dto.StockItemResponse, error) {
	return nil, nil
}
func (s *stubStockService) NearExpiry(_ context.Context) ([]dto.NearExpiryItemResponse, error) {
	return nil, nil
}
func (s *stubStockService) OnHand(_ context.Context, productID int64) (int, error) {
	return s.onHand[productID], nil
}

var _ StockService = (*stubStockService)(nil)

// ── Test helpers ──────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }
