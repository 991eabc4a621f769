package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// EntityCounts conteos rápidos para el dashboard.
type EntityCounts struct {
	Customers int64
	Suppliers int64
	Products  int64
	Invoices  int64
	// LowStock cuenta productos activos con quantity <= min_quantity según la
	// ficha (indicador barato; el reporte exacto lo da el motor de valoración).
	LowStock int64
}

// InvoiceTotals agregados monetarios de facturas confirmadas.
type InvoiceTotals struct {
	TotalSales      decimal.Decimal // ventas confirmadas
	TotalPurchases  decimal.Decimal // compras confirmadas
	PendingPayments decimal.Decimal // suma de remaining_amount > 0
}

// CurrencyBalance saldos agregados de una moneda.
type CurrencyBalance struct {
	CustomerBalance decimal.Decimal // cartera por cobrar (ventas confirmadas)
	SupplierBalance decimal.Decimal // cuentas por pagar (compras confirmadas)
	CashBalance     decimal.Decimal // caja: cobros - pagos en efectivo
	BankBalance     decimal.Decimal // banco: cobros - pagos bancarios
}

// StatsRepository consultas agregadas read-only para dashboard y saldos.
type StatsRepository interface {
	GetEntityCounts(ctx context.Context) (EntityCounts, error)
	GetInvoiceTotals(ctx context.Context) (InvoiceTotals, error)
	GetBalances(ctx context.Context, currencyCode string) (CurrencyBalance, error)
}
