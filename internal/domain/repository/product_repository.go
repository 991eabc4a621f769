package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	// ListActiveWithThreshold devuelve los productos activos con umbral de
	// reorden definido (min_quantity > 0): el universo del motor de valoración.
	ListActiveWithThreshold(ctx context.Context) ([]*entity.Product, error)
}
