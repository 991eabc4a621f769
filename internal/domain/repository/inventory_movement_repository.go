package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// InventoryMovementRepository puerto del libro de movimientos (solo lectura
// para el motor de valoración; los movimientos son hechos inmutables).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListForProductWarehouse devuelve el libro completo del par
	// (producto, almacén), incluyendo transfers legados entrantes
	// (to_warehouse_id = almacén). Orden: movement_date DESC, id DESC
	// (desempate estable cuando las fechas coinciden).
	ListForProductWarehouse(ctx context.Context, productID, warehouseID string) ([]*entity.InventoryMovement, error)
}
