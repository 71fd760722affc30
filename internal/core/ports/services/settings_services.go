package services

import (
	"context"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/SscSPs/business_dashboard/internal/dto"
)

// SettingsReaderSvc defines read operations for operator settings
type SettingsReaderSvc interface {
	// GetManualRate returns the manual USD rate or apperrors.ErrNotFound.
	GetManualRate(ctx context.Context) (*domain.ManualRateSetting, error)
}

// SettingsWriterSvc defines write operations for operator settings
type SettingsWriterSvc interface {
	SetManualRate(ctx context.Context, req dto.SetManualRateRequest, userID string) (*domain.ManualRateSetting, error)
	ClearManualRate(ctx context.Context, userID string) error
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
