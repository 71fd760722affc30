package dto

import (
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetManualRateRequest defines the structure for storing the operator USD rate override.
type SetManualRateRequest struct {
	Rate *decimal.Decimal `json:"rate" binding:"required" validate:"required"` // Must be > 0, checked by the service
}

// ExchangeRateResponse describes the rate currently used for normalization.
type ExchangeRateResponse struct {
	BaseCurrency   string            `json:"baseCurrency"`
	TargetCurrency string            `json:"targetCurrency"`
	Rate           decimal.Decimal   `json:"rate"`
	Source         domain.RateSource `json:"source"`
	Authoritative  bool              `json:"authoritative"`
	ResolvedAt     time.Time         `json:"resolvedAt"`
	ExpiresAt      time.Time         `json:"expiresAt"`
}

// ManualRateResponse describes the stored manual override, if any.
type ManualRateResponse struct {
	Rate          *decimal.Decimal `json:"rate"`
	LastUpdatedAt *time.Time       `json:"lastUpdatedAt,omitempty"`
	LastUpdatedBy string           `json:"lastUpdatedBy,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate, targetCurrency string) ExchangeRateResponse {
	return ExchangeRateResponse{
		BaseCurrency:   string(domain.CurrencyUSD),
		TargetCurrency: targetCurrency,
		Rate:           rate.Rate,
		Source:         rate.Source,
		Authoritative:  rate.Source.IsAuthoritative(),
		ResolvedAt:     rate.ResolvedAt,
		ExpiresAt:      rate.ExpiresAt,
	}
}

// ToManualRateResponse converts a stored setting (possibly nil) to its DTO.
func ToManualRateResponse(setting *domain.ManualRateSetting) ManualRateResponse {
	if setting == nil {
		return ManualRateResponse{}
	}
	rate := setting.Rate
	updatedAt := setting.LastUpdatedAt
	return ManualRateResponse{
		Rate:          &rate,
		LastUpdatedAt: &updatedAt,
		LastUpdatedBy: setting.LastUpdatedBy,
	}
}
