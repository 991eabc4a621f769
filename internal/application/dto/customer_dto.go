package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	TaxNumber   string          `json:"tax_number"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	TaxNumber      string          `json:"tax_number,omitempty"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	Notes          string          `json:"notes,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
