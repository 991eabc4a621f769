package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia de proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Supplier, error)
	HasInvoices(ctx context.Context, id string) (bool, error)
}
