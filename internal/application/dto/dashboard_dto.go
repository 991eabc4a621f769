package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardDTO respuesta de GET /api/dashboard: estadísticas rápidas,
// últimas facturas y el top de productos con faltante.
type DashboardDTO struct {
	Stats          DashboardStatsDTO    `json:"stats"`
	RecentInvoices []RecentInvoiceDTO   `json:"recent_invoices"`
	LowStock       []LowStockProductDTO `json:"low_stock_products"` // top 10 por urgencia
}

// DashboardStatsDTO KPIs del dashboard.
type DashboardStatsDTO struct {
	CustomersCount   int64           `json:"customers_count"`
	SuppliersCount   int64           `json:"suppliers_count"`
	ProductsCount    int64           `json:"products_count"`
	InvoicesCount    int64           `json:"invoices_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	PendingPayments  decimal.Decimal `json:"pending_payments"`
	LowStockProducts int64           `json:"low_stock_products"`
}

// RecentInvoiceDTO resumen de factura para el widget del dashboard.
type RecentInvoiceDTO struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceType   string          `json:"invoice_type"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
