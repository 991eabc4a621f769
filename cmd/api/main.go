package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mohazard555/sampro-api/internal/application/accounting"
	appanalytics "github.com/mohazard555/sampro-api/internal/application/analytics"
	"github.com/mohazard555/sampro-api/internal/application/auth"
	"github.com/mohazard555/sampro-api/internal/application/inventory"
	appsettings "github.com/mohazard555/sampro-api/internal/application/settings"
	"github.com/mohazard555/sampro-api/internal/application/usecase"
	infrapdf "github.com/mohazard555/sampro-api/internal/infrastructure/pdf"
	"github.com/mohazard555/sampro-api/internal/infrastructure/postgres"
	httpRouter "github.com/mohazard555/sampro-api/internal/interfaces/http"
	"github.com/mohazard555/sampro-api/pkg/config"
	"github.com/mohazard555/sampro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	companySettingsRepo := postgres.NewCompanySettingsRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo)
	lowStockUC := inventory.NewLowStockUseCase(productRepo, movementRepo, warehouseRepo, log)
	movementUC := inventory.NewMovementUseCase(movementRepo, productRepo)
	settingsUC := appsettings.NewUseCase(currencyRepo, companySettingsRepo, log)
	journalUC := accounting.NewJournalUseCase(journalRepo, statsRepo, currencyRepo)
	reportUC := accounting.NewReportUseCase(journalUC, lowStockUC, settingsUC, infrapdf.NewMarotoReportGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo, invoiceRepo, lowStockUC)

	// Datos iniciales: admin, almacén principal, monedas y configuración base
	if err := seedDefaults(ctx, log, authUC, warehouseRepo, currencyRepo, companySettingsRepo); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sampro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		LowStockUC:  lowStockUC,
		MovementUC:  movementUC,
		InvoiceUC:   invoiceUC,
		SettingsUC:  settingsUC,
		JournalUC:   journalUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
