package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, invoice_type, invoice_date, due_date,
	customer_id, supplier_id, subtotal, discount_amount, discount_percentage,
	tax_amount, tax_percentage, total_amount, paid_amount, remaining_amount,
	currency, notes, status, created_by, created_at, updated_at`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura con sus líneas.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.InvoiceType, inv.InvoiceDate, inv.DueDate,
		nullIfEmpty(inv.CustomerID), nullIfEmpty(inv.SupplierID),
		inv.Subtotal, inv.DiscountAmount, inv.DiscountPercentage,
		inv.TaxAmount, inv.TaxPercentage, inv.TotalAmount, inv.PaidAmount, inv.RemainingAmount,
		inv.Currency, inv.Notes, inv.Status, nullIfEmpty(inv.CreatedBy), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, product_id, quantity, unit_price,
				discount_amount, discount_percentage, total_amount, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.InvoiceID, item.ProductID, item.Quantity, item.UnitPrice,
			item.DiscountAmount, item.DiscountPercentage, item.TotalAmount, item.Notes, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	var customerID, supplierID, createdBy *string
	err := r.q.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id,
	).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceType, &inv.InvoiceDate, &inv.DueDate,
		&customerID, &supplierID, &inv.Subtotal, &inv.DiscountAmount, &inv.DiscountPercentage,
		&inv.TaxAmount, &inv.TaxPercentage, &inv.TotalAmount, &inv.PaidAmount, &inv.RemainingAmount,
		&inv.Currency, &inv.Notes, &inv.Status, &createdBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.CustomerID = deref(customerID)
	inv.SupplierID = deref(supplierID)
	inv.CreatedBy = deref(createdBy)
	return &inv, nil
}

// ListRecent devuelve las últimas facturas para el dashboard.
func (r *InvoiceRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var customerID, supplierID, createdBy *string
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.InvoiceType, &inv.InvoiceDate, &inv.DueDate,
			&customerID, &supplierID, &inv.Subtotal, &inv.DiscountAmount, &inv.DiscountPercentage,
			&inv.TaxAmount, &inv.TaxPercentage, &inv.TotalAmount, &inv.PaidAmount, &inv.RemainingAmount,
			&inv.Currency, &inv.Notes, &inv.Status, &createdBy, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.CustomerID = deref(customerID)
		inv.SupplierID = deref(supplierID)
		inv.CreatedBy = deref(createdBy)
		out = append(out, &inv)
	}
	return out, rows.Err()
}
