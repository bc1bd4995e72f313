package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed "today" for the expiry-window tests
var stockNow = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func newStockFixture(t *testing.T, purchased, sold map[int64]int, products ...*model.Product) (*stubProductRepo, *stockService) {
	t.Helper()
	productRepo := newStubProductRepo()
	for _, p := range products {
		require.NoError(t, productRepo.Create(context.Background(), p))
	}
	svc := NewStockService(&stubStockRepo{purchased: purchased, sold: sold}, productRepo, 30).(*stockService)
	svc.now = func() time.Time { return stockNow }
	return productRepo, svc
}

func expiryIn(days int) *time.Time {
	d := stockNow.AddDate(0, 0, days)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func TestStockDerivedFromHistory(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 10, 2: 5},
		map[int64]int{1: 4},
		&model.Product{Name: "Cola 1L", StockEntryDate: stockNow},
		&model.Product{Name: "Soda 500ml", StockEntryDate: stockNow},
	)

	items, err := svc.StockWithQuantity(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]int{}
	for _, item := range items {
		byName[item.Name] = item.Quantity
	}
	assert.Equal(t, 6, byName["Cola 1L"])
	assert.Equal(t, 5, byName["Soda 500ml"])
}

func TestStockDropsZeroAndNegativeQuantities(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 4, 2: 3},
		map[int64]int{1: 4, 2: 5},
		&model.Product{Name: "Cola 1L", StockEntryDate: stockNow},
		&model.Product{Name: "Soda 500ml", StockEntryDate: stockNow},
	)

	items, err := svc.StockWithQuantity(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOnHandNeverNegative(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 3},
		map[int64]int{1: 8},
	)

	qty, err := svc.OnHand(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	// unknown product is simply zero
	qty, err = svc.OnHand(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestOnHandAfterSingleIntake(t *testing.T) {
	_, svc := newStockFixture(t, map[int64]int{1: 10}, map[int64]int{})

	qty, err := svc.OnHand(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestNearExpiryWindowAndUrgency(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 5, 2: 5, 3: 5, 4: 5, 5: 5},
		map[int64]int{},
		&model.Product{Name: "Expires in 5", StockEntryDate: stockNow, ExpiryDate: expiryIn(5)},
		&model.Product{Name: "Expires in 20", StockEntryDate: stockNow, ExpiryDate: expiryIn(20)},
		&model.Product{Name: "Expires in 31", StockEntryDate: stockNow, ExpiryDate: expiryIn(31)},
		&model.Product{Name: "Expired yesterday", StockEntryDate: stockNow, ExpiryDate: expiryIn(-1)},
		&model.Product{Name: "No expiry", StockEntryDate: stockNow},
	)

	items, err := svc.NearExpiry(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// most urgent first
	assert.Equal(t, "Expires in 5", items[0].Name)
	assert.Equal(t, 5, items[0].DaysUntilExpiry)
	assert.True(t, items[0].Urgent)

	assert.Equal(t, "Expires in 20", items[1].Name)
	assert.Equal(t, 20, items[1].DaysUntilExpiry)
	assert.False(t, items[1].Urgent)
}

func TestNearExpiryIncludesToday(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 5},
		map[int64]int{},
		&model.Product{Name: "Expires today", StockEntryDate: stockNow, ExpiryDate: expiryIn(0)},
	)

	items, err := svc.NearExpiry(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].DaysUntilExpiry)
	assert.True(t, items[0].Urgent)
}

func TestNearExpirySkipsOutOfStockProducts(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 4},
		map[int64]int{1: 4},
		&model.Product{Name: "Sold out", StockEntryDate: stockNow, ExpiryDate: expiryIn(3)},
	)

	items, err := svc.NearExpiry(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSellableExcludesNearExpiry(t *testing.T) {
	_, svc := newStockFixture(t,
		map[int64]int{1: 5, 2: 5, 3: 5},
		map[int64]int{},
		&model.Product{Name: "Fresh", StockEntryDate: stockNow, ExpiryDate: expiryIn(90)},
		&model.Product{Name: "Closing in", StockEntryDate: stockNow, ExpiryDate: expiryIn(10)},
		&model.Product{Name: "No expiry", StockEntryDate: stockNow},
	)

	items, err := svc.Sellable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	names := []string{items[0].Name, items[1].Name}
	assert.Contains(t, names, "Fresh")
	assert.Contains(t, names, "No expiry")
}
