package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	// HasInvoices indica si existen facturas vinculadas (bloquea el borrado).
	HasInvoices(ctx context.Context, id string) (bool, error)
}
