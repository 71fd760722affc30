package services

import (
	"context"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExternalRateSource is a live USD quote provider.
type ExternalRateSource interface {
	// IsConfigured reports whether a credential that looks usable is present.
	IsConfigured() bool

	// FetchUSDRate returns units of targetCurrency per 1 USD. Any transport,
	// status or payload problem is returned as an error.
	FetchUSDRate(ctx context.Context, targetCurrency string) (decimal.Decimal, error)
}

// RateProvider resolves the current USD to reporting-currency rate.
type RateProvider interface {
	// GetCurrentRate never fails; it always returns a positive rate.
	GetCurrentRate(ctx context.Context) domain.ExchangeRate

	// Invalidate drops a cached non-external rate so the next read re-resolves.
	Invalidate()
}
