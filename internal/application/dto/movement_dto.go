package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/inventory/movements.
// Quantity es magnitud salvo en adjustment, donde el signo es significativo.
type CreateMovementRequest struct {
	Type          string          `json:"type"`
	Date          string          `json:"date"` // YYYY-MM-DD, vacío = hoy
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	ToWarehouseID string          `json:"to_warehouse_id,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// MovementResponse representación pública de un movimiento de inventario.
type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Date          string          `json:"date"` // YYYY-MM-DD
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	ToWarehouseID string          `json:"to_warehouse_id,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
