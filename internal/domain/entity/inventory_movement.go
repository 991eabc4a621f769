package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. La enumeración es cerrada: el motor de
// valoración ignora (y reporta) cualquier tipo fuera de este conjunto.
const (
	MovementTypeIn             = "in"              // entrada directa
	MovementTypeOut            = "out"             // salida directa
	MovementTypePurchase       = "purchase"        // compra
	MovementTypeSale           = "sale"            // venta
	MovementTypeReturnSale     = "return_sale"     // devolución de venta (entra)
	MovementTypeReturnPurchase = "return_purchase" // devolución de compra (sale)
	MovementTypeTransferIn     = "transfer_in"     // traslado entrante
	MovementTypeTransferOut    = "transfer_out"    // traslado saliente
	MovementTypeTransfer       = "transfer"        // traslado legado (ambiguo, ver valuation)
	MovementTypeAdjustment     = "adjustment"      // ajuste con signo
	MovementTypeDamage         = "damage"          // merma/daño (sale)
)

// InventoryMovement es un hecho histórico inmutable del libro de movimientos.
// Quantity es magnitud salvo en adjustment, donde el signo es significativo.
// ToWarehouseID solo aplica al tipo legado transfer.
type InventoryMovement struct {
	ID            string
	Type          string
	Date          time.Time
	ProductID     string
	WarehouseID   string
	ToWarehouseID string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	ReferenceType string // invoice, transfer, adjustment
	ReferenceID   string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}
