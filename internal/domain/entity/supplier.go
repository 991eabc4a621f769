package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor. CurrentBalance positivo = acreedor.
type Supplier struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Address        string
	TaxNumber      string
	CurrentBalance decimal.Decimal
	Currency       string
	Notes          string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
