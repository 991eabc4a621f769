package repository

import (
	"context"
	"time"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// JournalFilter restringe el listado del libro diario. Campos vacíos/nil no filtran.
type JournalFilter struct {
	Currency  string // código de moneda, vacío = todas
	EntryType string // invoice, payment, adjustment; vacío = todos
	DateFrom  *time.Time
	DateTo    *time.Time
}

// JournalRepository puerto de lectura del libro diario.
type JournalRepository interface {
	Create(ctx context.Context, entry *entity.JournalEntry) error
	List(ctx context.Context, filter JournalFilter) ([]*entity.JournalEntry, error)
}
