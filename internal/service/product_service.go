package service

import (
	"context"
	"errors"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"

	"gorm.io/gorm"
)

// ProductService owns catalog CRUD. Duplicate names are legal — matching by
// name is the intake flow's job, not a uniqueness constraint here.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (int64, error)
	// Update merges non-nil fields over the stored row. Missing id = no-op.
	Update(ctx context.Context, id int64, req dto.UpdateProductRequest) error
	// Delete removes the row without cascading. Missing id = no-op.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]dto.ProductResponse, error)
	// ListFromPurchases restricts the picker set to products that have at
	// least one purchase record.
	ListFromPurchases(ctx context.Context) ([]dto.ProductResponse, error)
	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	now  func() time.Time
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo, now: time.Now}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (int64, error) {
	entryDate := s.now()
	if req.StockEntryDate != "" {
		var err error
		entryDate, err = parseDate(req.StockEntryDate)
		if err != nil {
			return 0, err
		}
	}
	expiry, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return 0, err
	}
	p := &model.Product{
		Name:           req.Name,
		PurchasePrice:  req.PurchasePrice,
		SalePrice:      req.SalePrice,
		StockEntryDate: entryDate,
		ExpiryDate:     expiry,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *productService) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.StockEntryDate != nil {
		entryDate, err := parseDate(*req.StockEntryDate)
		if err != nil {
			return err
		}
		p.StockEntryDate = entryDate
	}
	if req.ExpiryDate != nil {
		expiry, err := parseDatePtr(req.ExpiryDate)
		if err != nil {
			return err
		}
		p.ExpiryDate = expiry
	}
	return s.repo.Update(ctx, p)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *productService) ListFromPurchases(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListWithPurchases(ctx)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
		StockEntryDate: formatDate(p.StockEntryDate),
		ExpiryDate:     formatDatePtr(p.ExpiryDate),
	}
}

func productsToResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out
}
