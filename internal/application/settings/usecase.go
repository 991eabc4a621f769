// Package settings gestiona monedas, tasas de cambio y la configuración de
// empresa. La configuración vive en base de datos como pares clave/valor y se
// expone tipada; nunca como estado global del proceso.
package settings

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
	"github.com/mohazard555/sampro-api/pkg/logger"
)

// Claves reconocidas de configuración de empresa.
const (
	KeyCompanyName         = "company_name"
	KeyBaseCurrency        = "base_currency"
	KeyEnableMultiCurrency = "enable_multi_currency"
	KeyTaxRate             = "tax_rate"
)

// UseCase casos de uso de configuración.
type UseCase struct {
	currencyRepo repository.CurrencyRepository
	settingsRepo repository.CompanySettingsRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	currencyRepo repository.CurrencyRepository,
	settingsRepo repository.CompanySettingsRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{currencyRepo: currencyRepo, settingsRepo: settingsRepo, log: log}
}

// ListCurrencies devuelve las monedas activas con sus tasas.
func (uc *UseCase) ListCurrencies(ctx context.Context) ([]dto.CurrencyDTO, error) {
	currencies, err := uc.currencyRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CurrencyDTO, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, dto.CurrencyDTO{
			Code:   c.CurrencyCode,
			Name:   c.CurrencyName,
			Symbol: c.CurrencySymbol,
			Rate:   c.ExchangeRate,
			IsBase: c.IsBaseCurrency,
		})
	}
	return out, nil
}

// UpdateRates actualiza tasas de cambio en lote. La moneda base no se toca
// (su tasa es 1 por definición) y las tasas deben ser positivas.
func (uc *UseCase) UpdateRates(ctx context.Context, in dto.UpdateRatesRequest) error {
	for code, rate := range in {
		if !rate.IsPositive() {
			return domain.ErrInvalidInput
		}
		currency, err := uc.currencyRepo.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if currency.IsBaseCurrency {
			continue
		}
		if err := uc.currencyRepo.UpdateRate(ctx, code, rate); err != nil {
			return err
		}
		uc.log.Info().
			Str("currency", code).
			Str("rate", rate.String()).
			Msg("tasa de cambio actualizada")
	}
	return nil
}

// GetConfig lee todos los pares de configuración y los devuelve tipados.
// Las claves no reconocidas se conservan en Extra.
func (uc *UseCase) GetConfig(ctx context.Context) (*dto.CompanyConfigDTO, error) {
	settings, err := uc.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cfg := &dto.CompanyConfigDTO{
		BaseCurrency: "SYP",
		TaxRate:      decimal.Zero,
	}
	for _, s := range settings {
		switch s.SettingKey {
		case KeyCompanyName:
			cfg.CompanyName = s.SettingValue
		case KeyBaseCurrency:
			cfg.BaseCurrency = s.SettingValue
		case KeyEnableMultiCurrency:
			cfg.EnableMultiCurrency = s.SettingValue == "true"
		case KeyTaxRate:
			rate, err := decimal.NewFromString(s.SettingValue)
			if err != nil {
				uc.log.Warn().
					Str("value", s.SettingValue).
					Msg("tasa de impuesto inválida en configuración, se ignora")
				continue
			}
			cfg.TaxRate = rate
		default:
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]string)
			}
			cfg.Extra[s.SettingKey] = s.SettingValue
		}
	}
	return cfg, nil
}

// UpdateSettings guarda pares clave/valor. Las claves reconocidas se validan
// según su tipo declarado.
func (uc *UseCase) UpdateSettings(ctx context.Context, in dto.UpdateSettingsRequest) error {
	for key, value := range in {
		settingType := "string"
		switch key {
		case KeyEnableMultiCurrency:
			settingType = "boolean"
			if _, err := strconv.ParseBool(value); err != nil {
				return domain.ErrInvalidInput
			}
		case KeyTaxRate:
			settingType = "number"
			if _, err := decimal.NewFromString(value); err != nil {
				return domain.ErrInvalidInput
			}
		}
		setting := &entity.CompanySetting{
			ID:           uuid.New().String(),
			SettingKey:   key,
			SettingValue: value,
			SettingType:  settingType,
			UpdatedAt:    time.Now(),
			CreatedAt:    time.Now(),
		}
		if err := uc.settingsRepo.Upsert(ctx, setting); err != nil {
			return err
		}
	}
	return nil
}
