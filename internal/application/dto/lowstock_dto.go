package dto

import "github.com/shopspring/decimal"

// LowStockProductDTO es el registro por producto del reporte de faltantes.
// El shape JSON es contrato con los consumidores existentes (dashboard y API).
type LowStockProductDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Unit string `json:"unit"`

	CurrentQuantity    decimal.Decimal `json:"current_quantity"`
	CalculatedQuantity decimal.Decimal `json:"calculated_quantity"` // derivada del libro
	RegisteredQuantity decimal.Decimal `json:"registered_quantity"` // cantidad en ficha
	TotalIn            decimal.Decimal `json:"total_in"`
	TotalOut           decimal.Decimal `json:"total_out"`
	MinQuantity        decimal.Decimal `json:"min_quantity"`

	Shortage           decimal.Decimal `json:"shortage"`
	ShortagePercentage decimal.Decimal `json:"shortage_percentage"`
	RequiredQuantity   decimal.Decimal `json:"required_quantity"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`

	UrgencyLevel string `json:"urgency_level"` // critical, high, medium, low
	UrgencyText  string `json:"urgency_text"`
	UrgencyColor string `json:"urgency_color"` // danger, warning, info
	Priority     int    `json:"priority"`      // 1 = más urgente

	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Category      string          `json:"category"`

	LastMovementDate      *string         `json:"last_movement_date"` // YYYY-MM-DD
	DaysSinceLastMovement *int64          `json:"days_since_last_movement"`
	ConsumptionRate       decimal.Decimal `json:"consumption_rate"` // unidades/día
	DaysRemaining         *int64          `json:"days_remaining"`
	TotalMovements        int             `json:"total_movements"`

	IsOutOfStock bool `json:"is_out_of_stock"`
	IsCritical   bool `json:"is_critical"`
	IsVeryLow    bool `json:"is_very_low"`

	CreatedAt *string `json:"created_at"` // YYYY-MM-DD
}

// FailedProductDTO marca un producto cuya evaluación falló; el lote continúa
// con resultados parciales.
type FailedProductDTO struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// LowStockReportDTO respuesta completa del reporte de faltantes.
type LowStockReportDTO struct {
	Products []LowStockProductDTO `json:"products"`
	Failed   []FailedProductDTO   `json:"failed_products,omitempty"`

	TotalCount         int             `json:"total_count"`
	CriticalCount      int             `json:"critical_count"`
	HighCount          int             `json:"high_count"`
	MediumCount        int             `json:"medium_count"`
	LowCount           int             `json:"low_count"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
}
