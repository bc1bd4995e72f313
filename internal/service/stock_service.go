package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"
)

// urgentExpiryDays marks near-expiry items that need immediate attention.
const urgentExpiryDays = 7

// StockService derives on-hand quantities from history instead of keeping a
// mutable counter:
//
//	on_hand(p) = Σ purchase.quantity − Σ bill_item.quantity, floored at 0
//
// Recomputing on every read avoids counter drift when purchases or bills are
// edited or deleted out of order; the O(purchases + bill_items) cost is fine
// at single-shop volumes. The floor masks over-selling rather than preventing
// it — the bill service's stock bound is the preventive half.
type StockService interface {
	// StockWithQuantity returns catalog rows with positive derived quantity.
	// A product drops out entirely once its derived stock reaches zero.
	StockWithQuantity(ctx context.Context) ([]dto.StockItemResponse, error)
	// Sellable is StockWithQuantity minus near-expiry items — the sale
	// picker set.
	Sellable(ctx context.Context) ([]dto.StockItemResponse, error)
	// NearExpiry lists stocked products expiring within the lookahead
	// window, most urgent first.
	NearExpiry(ctx context.Context) ([]dto.NearExpiryItemResponse, error)
	// OnHand returns the derived quantity for one product (0 when unknown).
	OnHand(ctx context.Context, productID int64) (int, error)
}

type stockService struct {
	repo           repository.StockRepository
	productRepo    repository.ProductRepository
	nearExpiryDays int
	now            func() time.Time
}

func NewStockService(repo repository.StockRepository, productRepo repository.ProductRepository, nearExpiryDays int) StockService {
	return &stockService{
		repo:           repo,
		productRepo:    productRepo,
		nearExpiryDays: nearExpiryDays,
		now:            time.Now,
	}
}

func (s *stockService) project(ctx context.Context) ([]dto.StockItemResponse, error) {
	purchased, err := s.repo.PurchasedByProduct(ctx)
	if err != nil {
		return nil, err
	}
	sold, err := s.repo.SoldByProduct(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockItemResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		qty := purchased[p.ID] - sold[p.ID]
		if qty <= 0 {
			continue
		}
		items = append(items, dto.StockItemResponse{
			ID:             p.ID,
			Name:           p.Name,
			PurchasePrice:  p.PurchasePrice,
			SalePrice:      p.SalePrice,
			StockEntryDate: formatDate(p.StockEntryDate),
			ExpiryDate:     formatDatePtr(p.ExpiryDate),
			Quantity:       qty,
		})
	}
	return items, nil
}

func (s *stockService) StockWithQuantity(ctx context.Context) ([]dto.StockItemResponse, error) {
	return s.project(ctx)
}

func (s *stockService) Sellable(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := s.project(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	sellable := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		if _, near := s.nearExpiry(item.ExpiryDate, today); near {
			continue
		}
		sellable = append(sellable, item)
	}
	return sellable, nil
}

func (s *stockService) NearExpiry(ctx context.Context) ([]dto.NearExpiryItemResponse, error) {
	items, err := s.project(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	out := make([]dto.NearExpiryItemResponse, 0)
	for _, item := range items {
		days, near := s.nearExpiry(item.ExpiryDate, today)
		if !near {
			continue
		}
		out = append(out, dto.NearExpiryItemResponse{
			StockItemResponse: item,
			DaysUntilExpiry:   days,
			Urgent:            days <= urgentExpiryDays,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysUntilExpiry != out[j].DaysUntilExpiry {
			return out[i].DaysUntilExpiry < out[j].DaysUntilExpiry
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *stockService) OnHand(ctx context.Context, productID int64) (int, error) {
	purchased, err := s.repo.PurchasedByProduct(ctx)
	if err != nil {
		return 0, err
	}
	sold, err := s.repo.SoldByProduct(ctx)
	if err != nil {
		return 0, err
	}
	qty := purchased[productID] - sold[productID]
	if qty < 0 {
		qty = 0
	}
	return qty, nil
}

// nearExpiry reports whether an expiry date falls inside [0, window] whole
// days from today (ceiling division, matching the review screen), and how
// many days remain. Already-expired items (negative days) are not "near".
func (s *stockService) nearExpiry(expiryDate *string, today time.Time) (int, bool) {
	if expiryDate == nil || *expiryDate == "" {
		return 0, false
	}
	expiry, err := parseDate(*expiryDate)
	if err != nil {
		return 0, false
	}
	days := daysUntil(today, expiry)
	return days, days >= 0 && days <= s.nearExpiryDays
}

func daysUntil(today, expiry time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(e.Sub(t).Hours() / 24))
}
