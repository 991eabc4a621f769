// Package accounting expone el libro diario y los saldos por moneda, y
// genera los reportes PDF contables.
package accounting

import (
	"context"
	"time"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// JournalUseCase lectura del libro diario y saldos agregados.
type JournalUseCase struct {
	journalRepo  repository.JournalRepository
	statsRepo    repository.StatsRepository
	currencyRepo repository.CurrencyRepository
}

// NewJournalUseCase construye el caso de uso.
func NewJournalUseCase(
	journalRepo repository.JournalRepository,
	statsRepo repository.StatsRepository,
	currencyRepo repository.CurrencyRepository,
) *JournalUseCase {
	return &JournalUseCase{
		journalRepo:  journalRepo,
		statsRepo:    statsRepo,
		currencyRepo: currencyRepo,
	}
}

// JournalQuery parámetros de GET /api/journal.
type JournalQuery struct {
	Currency  string
	EntryType string
	DateFrom  string // YYYY-MM-DD
	DateTo    string // YYYY-MM-DD
}

// List devuelve asientos del libro diario según el filtro.
func (uc *JournalUseCase) List(ctx context.Context, q JournalQuery) ([]dto.JournalEntryDTO, error) {
	filter := repository.JournalFilter{
		Currency:  q.Currency,
		EntryType: q.EntryType,
	}
	if q.DateFrom != "" {
		from, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateTo = &to
	}

	entries, err := uc.journalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JournalEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJournalEntryDTO(e))
	}
	return out, nil
}

// Balances devuelve los saldos agregados de cada moneda activa: cartera,
// cuentas por pagar, caja, banco y el neto.
func (uc *JournalUseCase) Balances(ctx context.Context) ([]dto.CurrencyBalanceDTO, error) {
	currencies, err := uc.currencyRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CurrencyBalanceDTO, 0, len(currencies))
	for _, c := range currencies {
		balance, err := uc.statsRepo.GetBalances(ctx, c.CurrencyCode)
		if err != nil {
			return nil, err
		}
		net := balance.CustomerBalance.
			Sub(balance.SupplierBalance).
			Add(balance.CashBalance).
			Add(balance.BankBalance)
		out = append(out, dto.CurrencyBalanceDTO{
			CurrencyName:    c.CurrencyName,
			CurrencySymbol:  c.CurrencySymbol,
			CustomerBalance: balance.CustomerBalance,
			SupplierBalance: balance.SupplierBalance,
			CashBalance:     balance.CashBalance,
			BankBalance:     balance.BankBalance,
			NetBalance:      net,
		})
	}
	return out, nil
}

func toJournalEntryDTO(e *entity.JournalEntry) dto.JournalEntryDTO {
	return dto.JournalEntryDTO{
		ID:            e.ID,
		Date:          e.EntryDate.Format("2006-01-02"),
		Type:          e.EntryType,
		Description:   e.Description,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		DebitAmount:   e.DebitAmount,
		CreditAmount:  e.CreditAmount,
		Currency:      e.Currency,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
	}
}
