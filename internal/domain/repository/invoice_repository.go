package repository

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia de facturas (registros almacenados;
// este servicio no calcula totales).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error)
}

// PaymentRepository puerto de persistencia de comprobantes de cobro/pago.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
}
