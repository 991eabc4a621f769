package dto

import "github.com/shopspring/decimal"

// CurrencyDTO moneda activa y su tasa frente a la base.
type CurrencyDTO struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
	IsBase bool            `json:"is_base"`
}

// UpdateRatesRequest body para POST /api/exchange-rates: código → nueva tasa.
type UpdateRatesRequest map[string]decimal.Decimal

// UpdateSettingsRequest body para POST /api/settings: clave → valor.
type UpdateSettingsRequest map[string]string

// CompanyConfigDTO configuración de empresa con claves reconocidas, tipada.
// Reemplaza el estado global mutable del sistema anterior: se construye por
// petición y se pasa explícitamente a quien la necesita.
type CompanyConfigDTO struct {
	CompanyName         string          `json:"company_name"`
	BaseCurrency        string          `json:"base_currency"`
	EnableMultiCurrency bool            `json:"enable_multi_currency"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
	// Extra conserva claves no reconocidas sin perderlas
	Extra map[string]string `json:"extra,omitempty"`
}
