package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos, métodos y estados de pago.
const (
	PaymentTypeReceipt = "receipt" // comprobante de cobro
	PaymentTypePayment = "payment" // comprobante de pago

	PaymentMethodCash  = "cash"
	PaymentMethodBank  = "bank"
	PaymentMethodCheck = "check"
	PaymentMethodCard  = "card"

	PaymentStatusConfirmed = "confirmed"
	PaymentStatusCancelled = "cancelled"
)

// Payment representa un comprobante de cobro o pago, opcionalmente ligado a una factura.
type Payment struct {
	ID              string
	PaymentNumber   string
	PaymentType     string // receipt, payment
	PaymentDate     time.Time
	CustomerID      string
	SupplierID      string
	InvoiceID       string
	Amount          decimal.Decimal
	Currency        string
	PaymentMethod   string // cash, bank, check, card
	ReferenceNumber string // número de cheque o transferencia
	BankName        string
	Notes           string
	Status          string // confirmed, cancelled
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
