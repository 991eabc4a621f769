package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// CurrencyRepository puerto de persistencia de monedas y tasas de cambio.
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.CurrencySetting) error
	GetByCode(ctx context.Context, code string) (*entity.CurrencySetting, error)
	ListActive(ctx context.Context) ([]*entity.CurrencySetting, error)
	UpdateRate(ctx context.Context, code string, rate decimal.Decimal) error
}

// CompanySettingsRepository puerto de persistencia de la configuración de empresa.
type CompanySettingsRepository interface {
	GetAll(ctx context.Context) ([]*entity.CompanySetting, error)
	Get(ctx context.Context, key string) (*entity.CompanySetting, error)
	Upsert(ctx context.Context, setting *entity.CompanySetting) error
}
