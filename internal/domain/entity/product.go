package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario asociado a un almacén.
// Quantity es la cantidad registrada (cache); la cantidad real se reconcilia
// contra el historial de movimientos en el motor de valoración.
// MinQuantity es el umbral de reorden: cero = el producto no se evalúa.
type Product struct {
	ID           string
	Code         string // código único
	Name         string
	Description  string
	Unit         string // unidad de medida
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     decimal.Decimal // cantidad registrada en ficha
	MinQuantity  decimal.Decimal // umbral de reorden
	WarehouseID  string
	Category     string
	Barcode      string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
