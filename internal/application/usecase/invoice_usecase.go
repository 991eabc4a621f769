package usecase

import (
	"context"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// InvoiceUseCase consulta de facturas almacenadas y sus comprobantes.
// Este servicio no emite ni recalcula facturas, solo las expone.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
}

// InvoiceDetail factura con sus comprobantes de cobro/pago asociados.
type InvoiceDetail struct {
	Invoice  *entity.Invoice   `json:"invoice"`
	Payments []*entity.Payment `json:"payments"`
}

// ListRecent devuelve las últimas facturas registradas.
func (uc *InvoiceUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return uc.invoiceRepo.ListRecent(ctx, limit)
}

// GetDetail devuelve una factura con sus comprobantes.
func (uc *InvoiceUseCase) GetDetail(ctx context.Context, id string) (*InvoiceDetail, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceDetail{Invoice: invoice, Payments: payments}, nil
}
