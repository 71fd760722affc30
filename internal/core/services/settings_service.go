package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/go-playground/validator/v10"
)

// settingsService implements portssvc.SettingsSvcFacade
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	rates        portssvc.RateProvider
	validate     *validator.Validate
	now          func() time.Time
}

// SettingsServiceOption is a functional option for configuring the settings service
type SettingsServiceOption func(*settingsService)

// WithSettingsClock replaces time.Now for audit timestamps.
func WithSettingsClock(now func() time.Time) SettingsServiceOption {
	return func(s *settingsService) {
		s.now = now
	}
}

// NewSettingsService creates a new settings service. rates is invalidated
// whenever the manual rate changes.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, rates portssvc.RateProvider, options ...SettingsServiceOption) portssvc.SettingsSvcFacade {
	svc := &settingsService{
		settingsRepo: repo,
		rates:        rates,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		now:          time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetManualRate returns the stored manual rate or apperrors.ErrNotFound.
func (s *settingsService) GetManualRate(ctx context.Context) (*domain.ManualRateSetting, error) {
	setting, err := s.settingsRepo.GetManualExchangeRate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read manual exchange rate")
		return nil, fmt.Errorf("failed to read manual exchange rate: %w", err)
	}
	if setting == nil {
		return nil, apperrors.NewNotFoundError("manual exchange rate not set")
	}
	return setting, nil
}

// SetManualRate stores a positive manual rate and drops any cached non-live rate.
func (s *settingsService) SetManualRate(ctx context.Context, req dto.SetManualRateRequest, userID string) (*domain.ManualRateSetting, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("rate is required")
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("rate must be greater than zero")
	}

	setting := domain.ManualRateSetting{
		Rate:          *req.Rate,
		LastUpdatedAt: s.now(),
		LastUpdatedBy: userID,
	}
	if err := s.settingsRepo.SaveManualExchangeRate(ctx, setting); err != nil {
		s.LogError(ctx, err, "Failed to save manual exchange rate",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save manual exchange rate: %w", err)
	}
	s.rates.Invalidate()

	s.LogInfo(ctx, "Manual exchange rate updated",
		slog.String("rate", setting.Rate.String()),
		slog.String("user_id", userID))
	return &setting, nil
}

// ClearManualRate removes the manual rate.
func (s *settingsService) ClearManualRate(ctx context.Context, userID string) error {
	if err := s.settingsRepo.DeleteManualExchangeRate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to delete manual exchange rate",
			slog.String("user_id", userID))
		return fmt.Errorf("failed to delete manual exchange rate: %w", err)
	}
	s.rates.Invalidate()

	s.LogInfo(ctx, "Manual exchange rate cleared", slog.String("user_id", userID))
	return nil
}
