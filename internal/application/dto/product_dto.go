package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinQuantity  decimal.Decimal `json:"min_quantity"`
	WarehouseID  string          `json:"warehouse_id"`
	Category     string          `json:"category"`
	Barcode      string          `json:"barcode"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest = CreateProductRequest

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinQuantity  decimal.Decimal `json:"min_quantity"`
	WarehouseID  string          `json:"warehouse_id"`
	Category     string          `json:"category,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
