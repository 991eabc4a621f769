package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)
var _ repository.CompanySettingsRepository = (*CompanySettingsRepo)(nil)

// CurrencyRepo implementación del puerto CurrencyRepository sobre PostgreSQL.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

const currencyColumns = `id, currency_code, currency_name, currency_symbol,
	exchange_rate, is_base_currency, is_active, last_updated, created_at`

// Create persiste una moneda nueva.
func (r *CurrencyRepo) Create(ctx context.Context, c *entity.CurrencySetting) error {
	query := `
		INSERT INTO currency_settings (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CurrencyCode, c.CurrencyName, c.CurrencySymbol,
		c.ExchangeRate, c.IsBaseCurrency, c.IsActive, c.LastUpdated, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert currency: %w", err)
	}
	return nil
}

// GetByCode obtiene una moneda por su código.
func (r *CurrencyRepo) GetByCode(ctx context.Context, code string) (*entity.CurrencySetting, error) {
	var c entity.CurrencySetting
	err := r.q.QueryRow(ctx,
		`SELECT `+currencyColumns+` FROM currency_settings WHERE currency_code = $1`, code,
	).Scan(
		&c.ID, &c.CurrencyCode, &c.CurrencyName, &c.CurrencySymbol,
		&c.ExchangeRate, &c.IsBaseCurrency, &c.IsActive, &c.LastUpdated, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// ListActive devuelve las monedas activas, la base primero.
func (r *CurrencyRepo) ListActive(ctx context.Context) ([]*entity.CurrencySetting, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+currencyColumns+`
		 FROM currency_settings
		 WHERE is_active = true
		 ORDER BY is_base_currency DESC, currency_code`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var out []*entity.CurrencySetting
	for rows.Next() {
		var c entity.CurrencySetting
		if err := rows.Scan(
			&c.ID, &c.CurrencyCode, &c.CurrencyName, &c.CurrencySymbol,
			&c.ExchangeRate, &c.IsBaseCurrency, &c.IsActive, &c.LastUpdated, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// UpdateRate actualiza la tasa de cambio de una moneda.
func (r *CurrencyRepo) UpdateRate(ctx context.Context, code string, rate decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE currency_settings SET exchange_rate = $2, last_updated = now()
		 WHERE currency_code = $1`, code, rate)
	if err != nil {
		return fmt.Errorf("update exchange rate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompanySettingsRepo implementación clave/valor de la configuración de empresa.
type CompanySettingsRepo struct {
	q Querier
}

// NewCompanySettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanySettingsRepository(q Querier) *CompanySettingsRepo {
	return &CompanySettingsRepo{q: q}
}

const settingColumns = `id, setting_key, setting_value, setting_type, description, updated_at, created_at`

// GetAll devuelve todos los pares de configuración.
func (r *CompanySettingsRepo) GetAll(ctx context.Context) ([]*entity.CompanySetting, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+settingColumns+` FROM company_settings ORDER BY setting_key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []*entity.CompanySetting
	for rows.Next() {
		var s entity.CompanySetting
		if err := rows.Scan(
			&s.ID, &s.SettingKey, &s.SettingValue, &s.SettingType,
			&s.Description, &s.UpdatedAt, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Get obtiene un par por clave.
func (r *CompanySettingsRepo) Get(ctx context.Context, key string) (*entity.CompanySetting, error) {
	var s entity.CompanySetting
	err := r.q.QueryRow(ctx,
		`SELECT `+settingColumns+` FROM company_settings WHERE setting_key = $1`, key,
	).Scan(
		&s.ID, &s.SettingKey, &s.SettingValue, &s.SettingType,
		&s.Description, &s.UpdatedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza un par clave/valor.
func (r *CompanySettingsRepo) Upsert(ctx context.Context, s *entity.CompanySetting) error {
	query := `
		INSERT INTO company_settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			setting_type  = EXCLUDED.setting_type,
			updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SettingKey, s.SettingValue, s.SettingType, s.Description, s.UpdatedAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
