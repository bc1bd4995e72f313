package router

import (
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/config"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/handler"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/middleware"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/seed"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	billRepo := repository.NewBillRepository(db)
	creditRepo := repository.NewCreditPaymentRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	productSvc := service.NewProductService(productRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo)
	stockSvc := service.NewStockService(stockRepo, productRepo, cfg.NearExpiryDays)
	billSvc := service.NewBillService(billRepo, stockSvc, cfg.EnforceStock)
	creditSvc := service.NewCreditService(billRepo, creditRepo)
	seeder := seed.NewSeeder(productRepo, purchaseSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc, seeder)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	billsH := handler.NewBillsHandler(billSvc)
	creditH := handler.NewCreditHandler(creditSvc)
	stockH := handler.NewStockHandler(stockSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/from-purchases", productsH.ListFromPurchases)
			products.GET("/:id", productsH.Get)
			products.POST("", productsH.Create)
			products.POST("/seed", productsH.Seed)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.List)
			stock.GET("/sellable", stockH.Sellable)
			stock.GET("/near-expiry", stockH.NearExpiry)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", purchasesH.List)
			purchases.GET("/count", purchasesH.Count)
			purchases.GET("/:id", purchasesH.Get)
			purchases.POST("", purchasesH.Add)
			purchases.PUT("/:id", purchasesH.Update)
			purchases.DELETE("/:id", purchasesH.Delete)
		}

		bills := v1.Group("/bills")
		{
			bills.GET("", billsH.List)
			bills.POST("", billsH.Create)
			bills.POST("/:id/printed", billsH.SetPrinted)
			bills.GET("/:id/items", billsH.Items)
			bills.GET("/:id/credit-payments", creditH.Payments)
			bills.POST("/:id/credit-payments", creditH.AddPayment)
		}

		v1.GET("/sales/summary", billsH.SalesSummary)
		v1.GET("/credit/outstanding", creditH.Outstanding)
	}

	return r
}
