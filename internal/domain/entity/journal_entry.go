package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry es un asiento del libro diario. Los asientos los generan los
// módulos de facturación y pagos; aquí solo se listan, filtran y exportan.
type JournalEntry struct {
	ID            string
	EntryDate     time.Time
	EntryType     string // invoice, payment, adjustment
	ReferenceType string
	ReferenceID   string
	InvoiceID     string
	PaymentID     string
	Description   string
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
	Currency      string
	DebitAccount  string
	CreditAccount string
	CreatedBy     string
	CreatedAt     time.Time
}
