package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*stubProductRepo, *productService) {
	repo := newStubProductRepo()
	svc := NewProductService(repo).(*productService)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC) }
	return repo, svc
}

func TestCreateProductDefaultsEntryDate(t *testing.T) {
	repo, svc := newProductFixture()

	id, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Cola 1L",
		PurchasePrice: dec("5"),
		SalePrice:     dec("8"),
	})
	require.NoError(t, err)

	p := repo.products[id]
	require.NotNil(t, p)
	assert.Equal(t, "2026-08-29", p.StockEntryDate.Format("2006-01-02"))
	assert.Nil(t, p.ExpiryDate)
}

func TestCreateProductParsesDates(t *testing.T) {
	repo, svc := newProductFixture()

	id, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:           "Cola 1L",
		StockEntryDate: "2026-07-01",
		ExpiryDate:     strPtr("2027-07-01"),
	})
	require.NoError(t, err)

	p := repo.products[id]
	assert.Equal(t, "2026-07-01", p.StockEntryDate.Format("2006-01-02"))
	require.NotNil(t, p.ExpiryDate)
	assert.Equal(t, "2027-07-01", p.ExpiryDate.Format("2006-01-02"))
}

func TestUpdateProductMergesPartialFields(t *testing.T) {
	repo, svc := newProductFixture()
	id, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Cola 1L",
		PurchasePrice: dec("5"),
		SalePrice:     dec("8"),
	})
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, dto.UpdateProductRequest{
		SalePrice: decPtr("9.50"),
	})
	require.NoError(t, err)

	p := repo.products[id]
	assert.Equal(t, "Cola 1L", p.Name)
	assert.True(t, p.PurchasePrice.Equal(dec("5")))
	assert.True(t, p.SalePrice.Equal(dec("9.50")))
}

func TestUpdateProductMissingIsNoop(t *testing.T) {
	_, svc := newProductFixture()

	err := svc.Update(context.Background(), 9999, dto.UpdateProductRequest{
		Name: strPtr("Ghost"),
	})
	assert.NoError(t, err)
}

func TestDeleteProductMissingIsNoop(t *testing.T) {
	_, svc := newProductFixture()
	assert.NoError(t, svc.Delete(context.Background(), 9999))
}

func TestGetProductMissingReturnsNil(t *testing.T) {
	_, svc := newProductFixture()

	resp, err := svc.GetByID(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestListSortsByName(t *testing.T) {
	_, svc := newProductFixture()
	for _, name := range []string{"Soda 500ml", "Cola 1L"} {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Cola 1L", out[0].Name)
	assert.Equal(t, "Soda 500ml", out[1].Name)
}

func TestListFromPurchasesRestrictsToPurchasedProducts(t *testing.T) {
	repo, svc := newProductFixture()
	purchases := newStubPurchaseRepo(repo)
	intake := NewPurchaseService(purchases, repo)

	for _, name := range []string{"Cola 1L", "Soda 500ml"} {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := intake.Add(context.Background(), dto.AddPurchaseRequest{
		ProductID:    i64Ptr(1),
		Quantity:     5,
		TotalValue:   dec("25"),
		PurchaseDate: "2026-08-29",
	})
	require.NoError(t, err)

	out, err := svc.ListFromPurchases(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cola 1L", out[0].Name)
}

func TestDuplicateNamesAreLegal(t *testing.T) {
	repo, svc := newProductFixture()
	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: "Cola 1L"})
		require.NoError(t, err)
	}
	assert.Len(t, repo.products, 2)

	// name lookup resolves to the lowest id
	p, err := repo.FindByName(context.Background(), "cola 1l")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}
