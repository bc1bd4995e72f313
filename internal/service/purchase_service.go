package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	purchaseLimitDefault = 10
	purchaseLimitMax     = 1000
)

// PurchaseService records stock-intake events. Intake is the only flow that
// mutates a product from the side: a purchase carrying a sale_price or
// expiry_date overwrites the product's current values in the same
// transaction (last write wins).
type PurchaseService interface {
	Add(ctx context.Context, req dto.AddPurchaseRequest) (int64, error)
	// Update replaces the purchase's editable fields and re-applies the
	// product side effects. Missing id = no-op.
	Update(ctx context.Context, id int64, req dto.UpdatePurchaseRequest) error
	// Delete removes the intake event. The derived stock simply shrinks on
	// the next projection read; no retroactive validation happens.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
	Count(ctx context.Context, filter dto.PurchaseFilter) (int64, error)
	// GetByID returns (nil, nil) when the purchase does not exist.
	GetByID(ctx context.Context, id int64) (*dto.PurchaseResponse, error)
}

type purchaseService struct {
	repo        repository.PurchaseRepository
	productRepo repository.ProductRepository
}

func NewPurchaseService(repo repository.PurchaseRepository, productRepo repository.ProductRepository) PurchaseService {
	return &purchaseService{repo: repo, productRepo: productRepo}
}

// resolveProduct finds the target product by id or by trimmed,
// case-insensitive name, creating a new catalog row when the name is unknown.
func (s *purchaseService) resolveProduct(ctx context.Context, req dto.AddPurchaseRequest, purchaseDate time.Time, expiry *time.Time) (int64, error) {
	if req.ProductID != nil {
		return *req.ProductID, nil
	}
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return 0, ErrProductRequired
	}
	p, err := s.productRepo.FindByName(ctx, name)
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	// New catalog entry: unit cost from the intake, sale price as supplied.
	unitCost := decimal.Zero
	if req.Quantity > 0 {
		unitCost = req.TotalValue.Div(decimal.NewFromInt(int64(req.Quantity))).Round(2)
	}
	salePrice := decimal.Zero
	if req.SalePrice != nil {
		salePrice = *req.SalePrice
	}
	np := &model.Product{
		Name:           name,
		PurchasePrice:  unitCost,
		SalePrice:      salePrice,
		StockEntryDate: purchaseDate,
		ExpiryDate:     expiry,
	}
	if err := s.productRepo.Create(ctx, np); err != nil {
		return 0, err
	}
	return np.ID, nil
}

func (s *purchaseService) Add(ctx context.Context, req dto.AddPurchaseRequest) (int64, error) {
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return 0, err
	}
	expiry, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return 0, err
	}

	productID, err := s.resolveProduct(ctx, req, purchaseDate, expiry)
	if err != nil {
		return 0, err
	}

	purchase := &model.Purchase{
		ProductID:    productID,
		Quantity:     req.Quantity,
		TotalValue:   req.TotalValue,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiry,
		SalePrice:    req.SalePrice,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, purchase); err != nil {
			return err
		}
		return s.productRepo.ApplyIntakeSideEffectsTx(tx, productID, req.SalePrice, expiry)
	})
	if txErr != nil {
		return 0, txErr
	}
	return purchase.ID, nil
}

func (s *purchaseService) Update(ctx context.Context, id int64, req dto.UpdatePurchaseRequest) error {
	purchase, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return err
	}
	expiry, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return err
	}

	purchase.Quantity = req.Quantity
	purchase.TotalValue = req.TotalValue
	purchase.PurchaseDate = purchaseDate
	purchase.ExpiryDate = expiry
	purchase.SalePrice = req.SalePrice
	purchase.Product = nil

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, purchase); err != nil {
			return err
		}
		return s.productRepo.ApplyIntakeSideEffectsTx(tx, purchase.ProductID, req.SalePrice, expiry)
	})
}

func (s *purchaseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *purchaseService) List(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = purchaseLimitDefault
	}
	if filter.Limit > purchaseLimitMax {
		filter.Limit = purchaseLimitMax
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	purchases, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		data = append(data, purchaseToResponse(&purchases[i]))
	}
	return &dto.PurchaseListResponse{
		Data:   data,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *purchaseService) Count(ctx context.Context, filter dto.PurchaseFilter) (int64, error) {
	return s.repo.Count(ctx, filter)
}

func (s *purchaseService) GetByID(ctx context.Context, id int64) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resp := purchaseToResponse(purchase)
	return &resp, nil
}

func purchaseToResponse(p *model.Purchase) dto.PurchaseResponse {
	name := "—"
	if p.Product != nil {
		name = p.Product.Name
	}
	return dto.PurchaseResponse{
		ID:           p.ID,
		ProductID:    p.ProductID,
		ProductName:  name,
		Quantity:     p.Quantity,
		TotalValue:   p.TotalValue,
		PurchaseDate: formatDate(p.PurchaseDate),
		ExpiryDate:   formatDatePtr(p.ExpiryDate),
		SalePrice:    p.SalePrice,
	}
}
