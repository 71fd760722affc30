package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// manualRateKey is the app_settings key of the operator USD rate override.
const manualRateKey = "manual_usd_rate"

// PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade using pgxpool.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetManualExchangeRate returns the stored manual rate, or nil when none is set.
func (r *PgxSettingsRepository) GetManualExchangeRate(ctx context.Context) (*domain.ManualRateSetting, error) {
	var value string
	setting := &domain.ManualRateSetting{}
	err := r.Pool.QueryRow(ctx,
		`SELECT value, last_updated_at, last_updated_by FROM app_settings WHERE key = $1`,
		manualRateKey,
	).Scan(&value, &setting.LastUpdatedAt, &setting.LastUpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying manual exchange rate: %w", err)
	}

	rate, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: stored manual exchange rate %q", apperrors.ErrInvalidAmount, value)
	}
	setting.Rate = rate
	return setting, nil
}

// SaveManualExchangeRate inserts or replaces the manual rate.
func (r *PgxSettingsRepository) SaveManualExchangeRate(ctx context.Context, setting domain.ManualRateSetting) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO app_settings (key, value, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by`,
		manualRateKey, setting.Rate.String(), setting.LastUpdatedAt, setting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error saving manual exchange rate: %w", err)
	}
	return nil
}

// DeleteManualExchangeRate removes the manual rate. Deleting a missing rate is not an error.
func (r *PgxSettingsRepository) DeleteManualExchangeRate(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM app_settings WHERE key = $1`, manualRateKey); err != nil {
		return fmt.Errorf("error deleting manual exchange rate: %w", err)
	}
	return nil
}
