package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

const journalColumns = `id, entry_date, entry_type, reference_type, reference_id,
	invoice_id, payment_id, description, debit_amount, credit_amount, currency,
	debit_account, credit_account, created_by, created_at`

// JournalRepo implementación del libro diario sobre PostgreSQL.
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// Create persiste un asiento. El libro es append-only.
func (r *JournalRepo) Create(ctx context.Context, e *entity.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.EntryDate, e.EntryType, nullIfEmpty(e.ReferenceType), nullIfEmpty(e.ReferenceID),
		nullIfEmpty(e.InvoiceID), nullIfEmpty(e.PaymentID), e.Description,
		e.DebitAmount, e.CreditAmount, e.Currency,
		e.DebitAccount, e.CreditAccount, nullIfEmpty(e.CreatedBy), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// List devuelve asientos según el filtro, del más reciente al más antiguo.
// El filtro se construye dinámicamente: campos vacíos o nil no filtran.
func (r *JournalRepo) List(ctx context.Context, filter repository.JournalFilter) ([]*entity.JournalEntry, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Currency != "" {
		add("currency = $%d", filter.Currency)
	}
	if filter.EntryType != "" {
		add("entry_type = $%d", filter.EntryType)
	}
	if filter.DateFrom != nil {
		add("entry_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("entry_date <= $%d", *filter.DateTo)
	}

	query := `SELECT ` + journalColumns + ` FROM journal_entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY entry_date DESC, created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		var refType, refID, invoiceID, paymentID, createdBy *string
		if err := rows.Scan(
			&e.ID, &e.EntryDate, &e.EntryType, &refType, &refID,
			&invoiceID, &paymentID, &e.Description, &e.DebitAmount, &e.CreditAmount,
			&e.Currency, &e.DebitAccount, &e.CreditAccount, &createdBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.ReferenceType = deref(refType)
		e.ReferenceID = deref(refID)
		e.InvoiceID = deref(invoiceID)
		e.PaymentID = deref(paymentID)
		e.CreatedBy = deref(createdBy)
		out = append(out, &e)
	}
	return out, rows.Err()
}
