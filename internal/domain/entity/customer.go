package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente. CurrentBalance positivo = deudor.
type Customer struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Address        string
	TaxNumber      string
	CreditLimit    decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string // moneda por defecto del cliente
	Notes          string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
