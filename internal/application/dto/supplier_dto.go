package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
	Currency  string `json:"currency"`
	Notes     string `json:"notes"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest = CreateSupplierRequest

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	TaxNumber      string          `json:"tax_number,omitempty"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	Notes          string          `json:"notes,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
