package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de factura.
const (
	InvoiceTypeSale     = "sale"
	InvoiceTypePurchase = "purchase"

	InvoiceStatusDraft     = "draft"
	InvoiceStatusConfirmed = "confirmed"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa una factura de venta o compra. Los montos son campos
// almacenados; este servicio no recalcula totales (solo los lista y agrega).
type Invoice struct {
	ID                 string
	InvoiceNumber      string
	InvoiceType        string // sale, purchase
	InvoiceDate        time.Time
	DueDate            *time.Time
	CustomerID         string // vacío en compras
	SupplierID         string // vacío en ventas
	Subtotal           decimal.Decimal
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxAmount          decimal.Decimal
	TaxPercentage      decimal.Decimal
	TotalAmount        decimal.Decimal
	PaidAmount         decimal.Decimal
	RemainingAmount    decimal.Decimal
	Currency           string
	Notes              string
	Status             string // draft, confirmed, paid, cancelled
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsPaid indica si la factura está saldada.
func (i *Invoice) IsPaid() bool {
	return i.RemainingAmount.LessThanOrEqual(decimal.Zero)
}

// InvoiceItem es una línea de factura.
type InvoiceItem struct {
	ID                 string
	InvoiceID          string
	ProductID          string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	DiscountAmount     decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalAmount        decimal.Decimal
	Notes              string
	CreatedAt          time.Time
}
