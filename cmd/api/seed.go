package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/application/auth"
	appsettings "github.com/mohazard555/sampro-api/internal/application/settings"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
	"github.com/mohazard555/sampro-api/pkg/logger"
)

// defaultCurrencies monedas sembradas en la primera ejecución. SYP es la base.
var defaultCurrencies = []struct {
	code, name, symbol string
	rate               string
	base               bool
}{
	{"SYP", "Libra siria", "ل.س", "1", true},
	{"USD", "Dólar estadounidense", "$", "13000", false},
	{"EUR", "Euro", "€", "14000", false},
	{"TRY", "Lira turca", "₺", "380", false},
	{"SAR", "Riyal saudí", "ر.س", "3465", false},
	{"AED", "Dírham emiratí", "د.إ", "3540", false},
}

// defaultSettings configuración de empresa inicial.
var defaultSettings = map[string]string{
	appsettings.KeyCompanyName:         "Mi Empresa",
	appsettings.KeyBaseCurrency:        "SYP",
	appsettings.KeyEnableMultiCurrency: "true",
	appsettings.KeyTaxRate:             "0",
}

// seedDefaults siembra los datos mínimos en la primera ejecución: el usuario
// administrador, el almacén principal, las monedas y la configuración base.
// Es idempotente: lo ya existente no se toca.
func seedDefaults(
	ctx context.Context,
	log *logger.Logger,
	authUC *auth.UseCase,
	warehouseRepo repository.WarehouseRepository,
	currencyRepo repository.CurrencyRepository,
	settingsRepo repository.CompanySettingsRepository,
) error {
	if err := authUC.EnsureAdmin(ctx, "admin", "admin123"); err != nil {
		return err
	}

	warehouses, err := warehouseRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(warehouses) == 0 {
		err := warehouseRepo.Create(ctx, &entity.Warehouse{
			ID:        uuid.New().String(),
			Name:      "Almacén principal",
			IsActive:  true,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		log.Info().Msg("almacén principal creado")
	}

	for _, c := range defaultCurrencies {
		_, err := currencyRepo.GetByCode(ctx, c.code)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		rate, _ := decimal.NewFromString(c.rate)
		err = currencyRepo.Create(ctx, &entity.CurrencySetting{
			ID:             uuid.New().String(),
			CurrencyCode:   c.code,
			CurrencyName:   c.name,
			CurrencySymbol: c.symbol,
			ExchangeRate:   rate,
			IsBaseCurrency: c.base,
			IsActive:       true,
			LastUpdated:    time.Now(),
			CreatedAt:      time.Now(),
		})
		if err != nil {
			return err
		}
		log.Info().Str("currency", c.code).Msg("moneda sembrada")
	}

	for key, value := range defaultSettings {
		_, err := settingsRepo.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		err = settingsRepo.Upsert(ctx, &entity.CompanySetting{
			ID:           uuid.New().String(),
			SettingKey:   key,
			SettingValue: value,
			SettingType:  "string",
			UpdatedAt:    time.Now(),
			CreatedAt:    time.Now(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
