// Package http registra las rutas de la API y adapta errores de dominio a
// respuestas JSON.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mohazard555/sampro-api/internal/application/accounting"
	"github.com/mohazard555/sampro-api/internal/application/analytics"
	"github.com/mohazard555/sampro-api/internal/application/auth"
	"github.com/mohazard555/sampro-api/internal/application/inventory"
	"github.com/mohazard555/sampro-api/internal/application/settings"
	"github.com/mohazard555/sampro-api/internal/application/usecase"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LowStockUC  *inventory.LowStockUseCase
	MovementUC  *inventory.MovementUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	SettingsUC  *settings.UseCase
	JournalUC   *accounting.JournalUseCase
	ReportUC    *accounting.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; registro y /me protegidos
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly(), authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	editor := RequireRole(entity.RoleAdmin, entity.RoleUser)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", editor, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", editor, customerHandler.Update)
	customers.Delete("/:id", editor, customerHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", editor, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", editor, supplierHandler.Update)
	suppliers.Delete("/:id", editor, supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", editor, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", editor, productHandler.Update)
	products.Delete("/:id", editor, productHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", adminOnly(), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory: reporte de faltantes + libro de movimientos
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LowStockUC, deps.MovementUC)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Post("/movements", editor, inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.MovementHistory)

	// Invoices (solo lectura: el registro de facturas viene del sistema de ventas)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Settings: monedas, tasas y configuración de empresa
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/currencies", settingsHandler.ListCurrencies)
	protected.Post("/exchange-rates", adminOnly(), settingsHandler.UpdateRates)
	protected.Get("/settings", settingsHandler.GetConfig)
	protected.Post("/settings", adminOnly(), settingsHandler.UpdateSettings)

	// Contabilidad: libro diario y saldos
	journalHandler := NewJournalHandler(deps.JournalUC)
	protected.Get("/journal", journalHandler.List)
	protected.Get("/balances", journalHandler.Balances)

	// Reportes PDF
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/journal.pdf", reportHandler.ExportJournal)
	reports.Get("/balances.pdf", reportHandler.ExportBalances)
	reports.Get("/low-stock.pdf", reportHandler.ExportLowStock)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
