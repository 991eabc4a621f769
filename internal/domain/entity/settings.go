package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySetting define una moneda disponible y su tasa de cambio frente a la base.
type CurrencySetting struct {
	ID             string
	CurrencyCode   string // USD, EUR, SYP...
	CurrencyName   string
	CurrencySymbol string
	ExchangeRate   decimal.Decimal // tasa frente a la moneda base
	IsBaseCurrency bool
	IsActive       bool
	LastUpdated    time.Time
	CreatedAt      time.Time
}

// CompanySetting es un par clave/valor de configuración de la empresa.
type CompanySetting struct {
	ID           string
	SettingKey   string
	SettingValue string
	SettingType  string // string, boolean, number, json
	Description  string
	UpdatedAt    time.Time
	CreatedAt    time.Time
}
