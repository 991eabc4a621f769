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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, payment_number, payment_type, payment_date, customer_id,
	supplier_id, invoice_id, amount, currency, payment_method, reference_number,
	bank_name, notes, status, created_by, created_at, updated_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un comprobante de cobro o pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PaymentNumber, p.PaymentType, p.PaymentDate,
		nullIfEmpty(p.CustomerID), nullIfEmpty(p.SupplierID), nullIfEmpty(p.InvoiceID),
		p.Amount, p.Currency, p.PaymentMethod, p.ReferenceNumber,
		p.BankName, p.Notes, p.Status, nullIfEmpty(p.CreatedBy), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un comprobante por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	row := r.q.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByInvoice devuelve los comprobantes ligados a una factura.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE invoice_id = $1 ORDER BY payment_date`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var customerID, supplierID, invoiceID, createdBy *string
	err := row.Scan(
		&p.ID, &p.PaymentNumber, &p.PaymentType, &p.PaymentDate, &customerID,
		&supplierID, &invoiceID, &p.Amount, &p.Currency, &p.PaymentMethod,
		&p.ReferenceNumber, &p.BankName, &p.Notes, &p.Status, &createdBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CustomerID = deref(customerID)
	p.SupplierID = deref(supplierID)
	p.InvoiceID = deref(invoiceID)
	p.CreatedBy = deref(createdBy)
	return &p, nil
}
