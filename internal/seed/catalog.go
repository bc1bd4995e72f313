// Package seed installs the default beverage catalog for a fresh shop:
// every product the counter usually stocks, priced by pack size, each with an
// opening 200-unit intake purchase so the derived stock starts non-empty.
package seed

import (
	"context"
	"strings"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/shopspring/decimal"
)

const openingQuantity = 200

// CatalogNames is the default soft-drink / juice / milk / water lineup.
var CatalogNames = []string{
	"Coca Cola 2 Liter", "Coca Cola 1.5 Liter", "Coca Cola 1 Liter", "Coca Cola 500 ml", "Coca Cola 330 ml Can", "Coca Cola 250 ml", "Coca Cola NR (Normal Returnable Glass Bottle)", "Coca Cola Diet 500 ml", "Coca Cola Diet 1.5 Liter", "Coca Cola Zero 500 ml",
	"Pepsi 2 Liter", "Pepsi 1.5 Liter", "Pepsi 1 Liter", "Pepsi 500 ml", "Pepsi 330 ml Can", "Pepsi 250 ml", "Pepsi NR", "Pepsi Black 500 ml", "Pepsi Black 1.5 Liter",
	"7UP 2 Liter", "7UP 1.5 Liter", "7UP 1 Liter", "7UP 500 ml", "7UP 250 ml", "7UP NR", "7UP Diet 500 ml", "7UP Can",
	"Sprite 2 Liter", "Sprite 1.5 Liter", "Sprite 1 Liter", "Sprite 500 ml", "Sprite 250 ml", "Sprite NR", "Sprite Can",
	"Fanta Orange 1.5 Liter", "Fanta Orange 500 ml", "Fanta Orange Can", "Fanta NR",
	"Mirinda 1.5 Liter", "Mirinda 500 ml", "Mirinda NR",
	"Mountain Dew 1.5 Liter", "Mountain Dew 500 ml", "Mountain Dew 250 ml", "Mountain Dew NR", "Mountain Dew Can",
	"Sting 500 ml", "Sting 250 ml", "Sting Can",
	"Pakola Ice Cream Soda 1.5 Liter", "Pakola Ice Cream Soda 500 ml", "Pakola NR", "Pakola Raspberry 500 ml",
	"Gourmet Cola 1.5 Liter", "Gourmet Cola 500 ml", "Gourmet Lemon Up 1.5 Liter", "Gourmet Lemon Up 500 ml", "Gourmet Orange 1.5 Liter", "Gourmet Orange 500 ml", "Gourmet NR",
	"Next Cola 1.5 Liter", "Next Cola 500 ml", "Next Cola NR", "RC Cola 1.5 Liter", "RC Cola 500 ml",
	"Fruita Vitals Mango 1 Liter", "Fruita Vitals Apple 1 Liter", "Fruita Vitals Orange 1 Liter", "Fruita Vitals 200 ml", "Fruita Vitals 250 ml",
	"Shezan Mango 1 Liter", "Shezan Apple 1 Liter", "Shezan Orange 1 Liter", "Shezan 250 ml", "Shezan 200 ml",
	"Slice Mango 1 Liter", "Slice Mango 250 ml", "Maaza Mango 1 Liter", "Maaza Mango 250 ml",
	"MilkPak 1 Liter", "MilkPak 500 ml", "MilkPak 250 ml",
	"Olpers 1 Liter", "Olpers 500 ml", "Olpers 250 ml", "Olpers Cream 200 ml",
	"Omung 1 Liter", "Omung 500 ml",
	"Haleeb 1 Liter", "Haleeb 500 ml", "Haleeb 250 ml",
	"Nurpur 1 Liter", "Nurpur 500 ml",
	"EveryDay 1 Liter", "EveryDay 500 ml", "EveryDay 200 ml",
	"Tarang 1 Liter", "Tarang 500 ml", "Dairy Omung Tea Whitener 1 Liter",
	"Olpers Chocolate Milk 250 ml", "Olpers Strawberry Milk 250 ml", "Nurpur Chocolate Milk 250 ml",
	"Nestle Water 1.5 Liter", "Nestle Water 500 ml", "Nestle Water 250 ml",
	"Aquafina 1.5 Liter", "Aquafina 500 ml", "Gourmet Water 1.5 Liter", "Gourmet Water 500 ml",
	"Aqua Green Water 1.5 Liter", "Aqua Green Water 500 ml", "Aqua Green Water 250 ml",
}

// DefaultPrice derives purchase/sale prices from the pack size in the name.
func DefaultPrice(name string) (purchase, sale decimal.Decimal) {
	n := strings.ToLower(name)
	pair := func(p, s int64) (decimal.Decimal, decimal.Decimal) {
		return decimal.NewFromInt(p), decimal.NewFromInt(s)
	}
	switch {
	case strings.Contains(n, "2 liter") || strings.Contains(n, "2 l"):
		return pair(220, 260)
	case strings.Contains(n, "1.5 liter") || strings.Contains(n, "1.5 l"):
		return pair(180, 210)
	case strings.Contains(n, "1 liter") || strings.Contains(n, "1 l"):
		return pair(140, 170)
	case strings.Contains(n, "500 ml"):
		return pair(80, 95)
	case strings.Contains(n, "330") || strings.Contains(n, "can"):
		return pair(60, 75)
	case strings.Contains(n, "250 ml"):
		return pair(45, 55)
	case strings.Contains(n, "200 ml"):
		return pair(40, 50)
	case strings.Contains(n, "nr"):
		return pair(55, 65)
	default:
		return pair(80, 100)
	}
}

// Seeder inserts missing catalog entries. Idempotent by product name.
type Seeder struct {
	products  repository.ProductRepository
	purchases service.PurchaseService
	now       func() time.Time
}

func NewSeeder(products repository.ProductRepository, purchases service.PurchaseService) *Seeder {
	return &Seeder{products: products, purchases: purchases, now: time.Now}
}

// Run adds every catalog name not yet present, with an opening intake
// purchase at the default purchase price. Returns the number added.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	existing, err := s.products.List(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[strings.ToLower(strings.TrimSpace(p.Name))] = true
	}

	today := s.now().Format("2006-01-02")
	added := 0
	for _, name := range CatalogNames {
		if have[strings.ToLower(name)] {
			continue
		}
		purchasePrice, salePrice := DefaultPrice(name)
		sp := salePrice
		_, err := s.purchases.Add(ctx, dto.AddPurchaseRequest{
			ProductName:  name,
			Quantity:     openingQuantity,
			TotalValue:   purchasePrice.Mul(decimal.NewFromInt(openingQuantity)),
			PurchaseDate: today,
			SalePrice:    &sp,
		})
		if err != nil {
			return added, err
		}
		have[strings.ToLower(name)] = true
		added++
	}
	return added, nil
}
