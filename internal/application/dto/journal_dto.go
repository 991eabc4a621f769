package dto

import "github.com/shopspring/decimal"

// JournalEntryDTO asiento del libro diario para la API.
type JournalEntryDTO struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account,omitempty"`
	CreditAccount string          `json:"credit_account,omitempty"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Currency      string          `json:"currency"`
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
}

// CurrencyBalanceDTO saldos de una moneda para GET /api/balances.
type CurrencyBalanceDTO struct {
	CurrencyName    string          `json:"currency_name"`
	CurrencySymbol  string          `json:"currency_symbol"`
	CustomerBalance decimal.Decimal `json:"customer_balance"`
	SupplierBalance decimal.Decimal `json:"supplier_balance"`
	CashBalance     decimal.Decimal `json:"cash_balance"`
	BankBalance     decimal.Decimal `json:"bank_balance"`
	NetBalance      decimal.Decimal `json:"net_balance"`
}
