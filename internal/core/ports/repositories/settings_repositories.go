package repositories

import (
	"context"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
)

// SettingsReader defines read operations for persisted application settings
type SettingsReader interface {
	// GetManualExchangeRate returns the operator-entered USD rate, or nil if none is set.
	GetManualExchangeRate(ctx context.Context) (*domain.ManualRateSetting, error)
}

// SettingsWriter defines write operations for persisted application settings
type SettingsWriter interface {
	SaveManualExchangeRate(ctx context.Context, setting domain.ManualRateSetting) error
	DeleteManualExchangeRate(ctx context.Context) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
