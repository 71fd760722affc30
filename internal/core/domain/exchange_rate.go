package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource records where the current exchange rate came from.
type RateSource string

const (
	RateSourceExternal RateSource = "external"
	RateSourceManual   RateSource = "manual"
	RateSourceFallback RateSource = "fallback"
)

// IsAuthoritative reports whether figures computed with this rate rest on a live quote.
func (s RateSource) IsAuthoritative() bool {
	return s == RateSourceExternal
}

// ExchangeRate is the resolved USD to reporting-currency rate.
// Rate is local-currency units per 1 USD and is always positive.
type ExchangeRate struct {
	Rate       decimal.Decimal `json:"rate"`
	Source     RateSource      `json:"source"`
	ResolvedAt time.Time       `json:"resolvedAt"`
	ExpiresAt  time.Time       `json:"expiresAt"`
}

// IsFresh reports whether the rate may still be served from cache at now.
func (r ExchangeRate) IsFresh(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}

// ManualRateSetting is the operator-entered USD rate override.
type ManualRateSetting struct {
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}
