// Seeds the default beverage catalog into the configured database.
// Safe to run repeatedly: products already present (by name) are skipped.
package main

import (
	"context"
	"os"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/config"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/infra"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/seed"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo)

	added, err := seed.NewSeeder(productRepo, purchaseSvc).Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Int("added", added).Msg("catalog seeded")
}
