package main

import (
	"strings"

	"cloudk-backend/internal/auth"
	"cloudk-backend/internal/config"
	"cloudk-backend/internal/expense"
	"cloudk-backend/internal/inventory"
	"cloudk-backend/internal/ledger"
	"cloudk-backend/internal/logging"
	"cloudk-backend/internal/outlet"
	"cloudk-backend/internal/persist"
	"cloudk-backend/internal/recipe"
	"cloudk-backend/internal/report"
	"cloudk-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	// The store is created once here and handed to every component by
	// reference. No package holds a global copy.
	store := ledger.NewStore(ledger.Options{TaxReducesProfit: cfg.TaxReducesProfit})
	registry := ledger.NewRegistry(store)
	inv := ledger.NewInventory(store)
	catalog := ledger.NewCatalog(store)
	settlement := ledger.NewSettlement(store)
	expenses := ledger.NewExpenses(store)
	reports := ledger.NewReports(store)

	admin, err := auth.NewAdmin(cfg)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.WithField("path", c.Path()).Error(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Optional durability: load the books at boot, flush after every
	// successful command. With no DSN the ledger lives in memory only.
	if cfg.DatabaseDSN != "" {
		db, err := persist.Open(cfg.DatabaseDSN, log)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		if err := db.Load(store); err != nil {
			log.Fatalf("load snapshot: %v", err)
		}
		app.Use(db.Middleware(store))
	}

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, admin))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Outlets & platforms
	protected.Post("/outlets", outlet.RegisterOutletHandler(registry, log))
	protected.Get("/outlets", outlet.ListOutletsHandler(registry))
	protected.Put("/outlets/:name", outlet.RenameOutletHandler(registry, log))
	protected.Delete("/outlets/:name", outlet.RemoveOutletHandler(registry, log))
	protected.Post("/outlets/:name/platforms", outlet.ConfigurePlatformHandler(registry, log))
	protected.Get("/outlets/:name/platforms", outlet.ListPlatformsHandler(registry))

	// Stock room
	protected.Post("/stock", inventory.AddStockHandler(inv, log))
	protected.Get("/stock", inventory.ListStockHandler(inv))
	protected.Get("/stock/low", inventory.LowStockHandler(inv))
	protected.Delete("/stock/:id", inventory.RemoveStockLineHandler(inv, log))

	// Recipes & menu prices
	protected.Post("/recipes", recipe.SaveRecipeHandler(catalog, log))
	protected.Get("/recipes", recipe.ListRecipesHandler(catalog))
	protected.Delete("/recipes/:dish", recipe.DeleteRecipeHandler(catalog, log))
	protected.Put("/recipes/:dish/price", recipe.SetPriceHandler(catalog, log))

	// Sales
	protected.Post("/sales", sales.RecordSaleHandler(settlement, catalog, log))
	protected.Get("/sales", sales.ListSalesHandler(settlement))
	protected.Delete("/sales/:id", sales.DeleteSaleHandler(settlement, log))

	// Expenses
	protected.Post("/expenses", expense.RecordExpenseHandler(expenses, log))
	protected.Get("/expenses", expense.ListExpensesHandler(expenses))
	protected.Delete("/expenses/:id", expense.DeleteExpenseHandler(expenses, log))

	// Reports
	protected.Get("/reports/summary", report.SummaryHandler(reports))
	protected.Get("/reports/summary/export", report.ExportSummaryHandler(reports))
	protected.Get("/reports/dashboard", report.DashboardHandler(reports))

	log.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
