package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia de almacenes.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
	// GetNames devuelve id → nombre de todos los almacenes (lookup para reportes).
	GetNames(ctx context.Context) (map[string]string, error)
}
