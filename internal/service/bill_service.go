package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillService interface {
	Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error)
	// SetPrinted flips printed once; missing id = no-op.
	SetPrinted(ctx context.Context, id int64) error
	List(ctx context.Context, filter dto.BillFilter) ([]dto.BillResponse, error)
	Items(ctx context.Context, billID int64) ([]dto.BillItemResponse, error)
	SalesSummary(ctx context.Context, filter dto.SalesSummaryFilter) ([]dto.SalesSummaryRow, error)
}

type billService struct {
	repo repository.BillRepository
	// stock supplies the on-hand lookup for the quantity bound. The bound
	// used to live only in the UI; enforcing it here closes that gap.
	stock        StockService
	enforceStock bool
	now          func() time.Time
}

func NewBillService(repo repository.BillRepository, stock StockService, enforceStock bool) BillService {
	return &billService{repo: repo, stock: stock, enforceStock: enforceStock, now: time.Now}
}

// ── Create ───────────────────────────────────────────────────────────────────
// The bill transaction:
//   1. Validate payment method, total, and every line item
//   2. Recompute line totals so line_total == unit_price * quantity holds
//   3. Check the stock bound against the projection (when enforced)
//   4. Normalize amount_paid / credit_remaining so they sum to total
//   5. BEGIN TX: insert bill + all items, COMMIT
//
// Stock reduction is implicit: the projection reads the new bill items on its
// next pass. Nothing decrements a counter.

func (s *billService) Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	if req.PaymentMethod != model.PaymentCash && req.PaymentMethod != model.PaymentCredit {
		return nil, ErrInvalidPaymentMethod
	}
	if !req.Total.IsPositive() {
		return nil, ErrInvalidTotal
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	// Recompute line totals and aggregate quantities per product — a bill may
	// carry the same product on more than one line.
	requested := make(map[int64]int, len(req.Items))
	items := make([]model.BillItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, ErrInvalidItem
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		requested[item.ProductID] += item.Quantity
		items = append(items, model.BillItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	if s.enforceStock && s.stock != nil {
		for productID, qty := range requested {
			onHand, err := s.stock.OnHand(ctx, productID)
			if err != nil {
				return nil, err
			}
			if qty > onHand {
				return nil, fmt.Errorf("%w: product %d has %d on hand, %d requested",
					ErrInsufficientStock, productID, onHand, qty)
			}
		}
	}

	amountPaid, creditRemaining, err := normalizePayment(req)
	if err != nil {
		return nil, err
	}

	bill := model.Bill{
		BillDate:        s.now(),
		PaymentMethod:   req.PaymentMethod,
		Total:           req.Total,
		AmountPaid:      amountPaid,
		CreditRemaining: creditRemaining,
		Printed:         false,
		CustomerName:    req.CustomerName,
		CustomerMobile:  req.CustomerMobile,
		Items:           items,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &bill)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := billToResponse(&bill)
	return &resp, nil
}

// normalizePayment derives the amount_paid / credit_remaining pair so that
// amount_paid + credit_remaining == total. Cash settles in full; credit takes
// the caller's paid-now amount (default 0) and the remainder, with a
// caller-supplied remainder trusted when present.
func normalizePayment(req dto.CreateBillRequest) (paid, remaining decimal.Decimal, err error) {
	if req.PaymentMethod == model.PaymentCash {
		return req.Total, decimal.Zero, nil
	}
	paid = decimal.Zero
	if req.AmountPaid != nil {
		paid = *req.AmountPaid
	}
	if paid.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrInvalidAmount
	}
	if req.CreditRemaining != nil {
		return paid, *req.CreditRemaining, nil
	}
	remaining = req.Total.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return paid, remaining, nil
}

func (s *billService) SetPrinted(ctx context.Context, id int64) error {
	return s.repo.SetPrinted(ctx, id)
}

func (s *billService) List(ctx context.Context, filter dto.BillFilter) ([]dto.BillResponse, error) {
	bills, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return billsToResponses(bills), nil
}

func (s *billService) Items(ctx context.Context, billID int64) ([]dto.BillItemResponse, error) {
	items, err := s.repo.Items(ctx, billID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillItemResponse, 0, len(items))
	for i := range items {
		item := &items[i]
		name := "—"
		if item.Product != nil {
			name = item.Product.Name
		}
		out = append(out, dto.BillItemResponse{
			ID:          item.ID,
			BillID:      item.BillID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return out, nil
}

func (s *billService) SalesSummary(ctx context.Context, filter dto.SalesSummaryFilter) ([]dto.SalesSummaryRow, error) {
	records, err := s.repo.SalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.SalesSummaryRow, 0, len(records))
	for _, rec := range records {
		name := "—"
		if rec.ProductName != nil {
			name = *rec.ProductName
		}
		profit := rec.UnitPrice.Sub(rec.PurchasePrice).Mul(decimal.NewFromInt(int64(rec.Quantity)))
		rows = append(rows, dto.SalesSummaryRow{
			BillID:          rec.BillID,
			BillDate:        rec.BillDate.Format(time.DateTime),
			PaymentMethod:   rec.PaymentMethod,
			Total:           rec.Total,
			AmountPaid:      rec.AmountPaid,
			CreditRemaining: rec.CreditRemaining,
			ProductID:       rec.ProductID,
			ProductName:     name,
			Quantity:        rec.Quantity,
			UnitPrice:       rec.UnitPrice,
			LineTotal:       rec.LineTotal,
			PurchasePrice:   rec.PurchasePrice,
			Profit:          profit,
		})
	}
	return rows, nil
}

func billToResponse(b *model.Bill) dto.BillResponse {
	return dto.BillResponse{
		ID:              b.ID,
		BillDate:        b.BillDate.Format(time.DateTime),
		PaymentMethod:   b.PaymentMethod,
		Total:           b.Total,
		AmountPaid:      b.AmountPaid,
		CreditRemaining: b.CreditRemaining,
		Printed:         b.Printed,
		CustomerName:    b.CustomerName,
		CustomerMobile:  b.CustomerMobile,
	}
}

func billsToResponses(bills []model.Bill) []dto.BillResponse {
	out := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, billToResponse(&bills[i]))
	}
	return out
}
