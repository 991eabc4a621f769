package postgres

import (
	"context"
	"fmt"

	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas read-only para dashboard y saldos.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetEntityCounts devuelve los conteos rápidos del dashboard en una sola consulta.
func (r *StatsRepo) GetEntityCounts(ctx context.Context) (repository.EntityCounts, error) {
	var c repository.EntityCounts
	query := `
		SELECT
			(SELECT count(*) FROM customers WHERE is_active = true),
			(SELECT count(*) FROM suppliers WHERE is_active = true),
			(SELECT count(*) FROM products  WHERE is_active = true),
			(SELECT count(*) FROM invoices),
			(SELECT count(*) FROM products
			 WHERE is_active = true AND min_quantity > 0 AND quantity <= min_quantity)`
	err := r.q.QueryRow(ctx, query).Scan(
		&c.Customers, &c.Suppliers, &c.Products, &c.Invoices, &c.LowStock)
	if err != nil {
		return c, fmt.Errorf("entity counts: %w", err)
	}
	return c, nil
}

// GetInvoiceTotals devuelve los agregados monetarios de facturas no canceladas.
func (r *StatsRepo) GetInvoiceTotals(ctx context.Context) (repository.InvoiceTotals, error) {
	var t repository.InvoiceTotals
	query := `
		SELECT
			COALESCE(sum(total_amount) FILTER (WHERE invoice_type = 'sale'     AND status <> 'cancelled'), 0),
			COALESCE(sum(total_amount) FILTER (WHERE invoice_type = 'purchase' AND status <> 'cancelled'), 0),
			COALESCE(sum(remaining_amount) FILTER (WHERE remaining_amount > 0  AND status <> 'cancelled'), 0)
		FROM invoices`
	err := r.q.QueryRow(ctx, query).Scan(&t.TotalSales, &t.TotalPurchases, &t.PendingPayments)
	if err != nil {
		return t, fmt.Errorf("invoice totals: %w", err)
	}
	return t, nil
}

// GetBalances devuelve los saldos agregados de una moneda: cartera por cobrar,
// cuentas por pagar y los movimientos netos de caja y banco.
func (r *StatsRepo) GetBalances(ctx context.Context, currencyCode string) (repository.CurrencyBalance, error) {
	var b repository.CurrencyBalance
	query := `
		SELECT
			COALESCE((SELECT sum(remaining_amount) FROM invoices
				WHERE invoice_type = 'sale' AND status <> 'cancelled' AND currency = $1), 0),
			COALESCE((SELECT sum(remaining_amount) FROM invoices
				WHERE invoice_type = 'purchase' AND status <> 'cancelled' AND currency = $1), 0),
			COALESCE((SELECT sum(CASE WHEN payment_type = 'receipt' THEN amount ELSE -amount END)
				FROM payments
				WHERE status = 'confirmed' AND payment_method = 'cash' AND currency = $1), 0),
			COALESCE((SELECT sum(CASE WHEN payment_type = 'receipt' THEN amount ELSE -amount END)
				FROM payments
				WHERE status = 'confirmed' AND payment_method IN ('bank', 'check', 'card') AND currency = $1), 0)`
	err := r.q.QueryRow(ctx, query, currencyCode).Scan(
		&b.CustomerBalance, &b.SupplierBalance, &b.CashBalance, &b.BankBalance)
	if err != nil {
		return b, fmt.Errorf("currency balances: %w", err)
	}
	return b, nil
}
