package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	// AuthoritativeRateTTL applies to live quotes and to a manual rate used
	// while no external source is configured.
	AuthoritativeRateTTL = time.Hour

	// ProvisionalRateTTL applies to the fallback constant and to a manual rate
	// used after the external source failed, so the source is retried soon.
	ProvisionalRateTTL = 45 * time.Second

	externalRateAttempts       = 2
	defaultExternalRateTimeout = 10 * time.Second
	rateFlightKey              = "usd-rate"
)

// DefaultFallbackUSDRate is used when no fallback rate is configured.
var DefaultFallbackUSDRate = decimal.NewFromInt(12500)

var errNonPositiveRate = errors.New("external rate is not positive")

// rateProvider implements portssvc.RateProvider
type rateProvider struct {
	BaseService
	cache             *RateCache
	external          portssvc.ExternalRateSource
	manual            portsrepo.SettingsReader
	fallback          decimal.Decimal
	reportingCurrency string
	attemptTimeout    time.Duration
	now               func() time.Time
	flight            singleflight.Group
}

// RateProviderOption is a functional option for configuring the rate provider
type RateProviderOption func(*rateProvider)

// WithExternalRateSource sets the live quote source.
func WithExternalRateSource(src portssvc.ExternalRateSource) RateProviderOption {
	return func(p *rateProvider) {
		p.external = src
	}
}

// WithManualRateReader sets the accessor of the operator-entered rate.
func WithManualRateReader(reader portsrepo.SettingsReader) RateProviderOption {
	return func(p *rateProvider) {
		p.manual = reader
	}
}

// WithFallbackRate overrides the hardcoded fallback. Non-positive values are ignored.
func WithFallbackRate(rate decimal.Decimal) RateProviderOption {
	return func(p *rateProvider) {
		if rate.IsPositive() {
			p.fallback = rate
		}
	}
}

// WithReportingCurrency sets the currency code requested from the external source.
func WithReportingCurrency(code string) RateProviderOption {
	return func(p *rateProvider) {
		if code != "" {
			p.reportingCurrency = code
		}
	}
}

// WithExternalAttemptTimeout bounds each external attempt.
func WithExternalAttemptTimeout(d time.Duration) RateProviderOption {
	return func(p *rateProvider) {
		if d > 0 {
			p.attemptTimeout = d
		}
	}
}

// WithRateCache shares an existing cache with the provider.
func WithRateCache(cache *RateCache) RateProviderOption {
	return func(p *rateProvider) {
		p.cache = cache
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RateProviderOption {
	return func(p *rateProvider) {
		p.now = now
	}
}

// NewRateProvider creates a rate provider with the provided options
func NewRateProvider(options ...RateProviderOption) portssvc.RateProvider {
	p := &rateProvider{
		cache:             NewRateCache(),
		fallback:          DefaultFallbackUSDRate,
		reportingCurrency: "UZS",
		attemptTimeout:    defaultExternalRateTimeout,
		now:               time.Now,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

var _ portssvc.RateProvider = (*rateProvider)(nil)

// GetCurrentRate returns the cached rate while it is fresh and otherwise
// resolves external, then manual, then fallback. Concurrent callers that miss
// the cache share a single resolution.
func (p *rateProvider) GetCurrentRate(ctx context.Context) domain.ExchangeRate {
	if rate, ok := p.cache.Get(p.now()); ok {
		return rate
	}

	// The shared resolution must outlive any single caller's request.
	resolveCtx := context.WithoutCancel(ctx)
	v, _, _ := p.flight.Do(rateFlightKey, func() (any, error) {
		if rate, ok := p.cache.Get(p.now()); ok {
			return rate, nil
		}
		rate := p.resolve(resolveCtx)
		p.cache.Store(rate)
		return rate, nil
	})
	return v.(domain.ExchangeRate)
}

// Invalidate drops a cached manual or fallback rate. A live quote stays cached.
func (p *rateProvider) Invalidate() {
	p.cache.clearIf(func(rate domain.ExchangeRate) bool {
		return rate.Source != domain.RateSourceExternal
	})
	p.flight.Forget(rateFlightKey)
}

func (p *rateProvider) resolve(ctx context.Context) domain.ExchangeRate {
	externalFailed := false
	if p.external != nil && p.external.IsConfigured() {
		rate, err := p.fetchExternal(ctx)
		if err == nil {
			return p.stamp(rate, domain.RateSourceExternal, AuthoritativeRateTTL)
		}
		p.LogError(ctx, err, "External exchange rate unavailable, falling back",
			slog.String("currency", p.reportingCurrency))
		externalFailed = true
	}

	if rate, ok := p.manualRate(ctx); ok {
		ttl := AuthoritativeRateTTL
		if externalFailed {
			ttl = ProvisionalRateTTL
		}
		return p.stamp(rate, domain.RateSourceManual, ttl)
	}

	p.LogWarn(ctx, "Using hardcoded fallback exchange rate",
		slog.String("rate", p.fallback.String()),
		slog.String("currency", p.reportingCurrency))
	return p.stamp(p.fallback, domain.RateSourceFallback, ProvisionalRateTTL)
}

func (p *rateProvider) fetchExternal(ctx context.Context) (decimal.Decimal, error) {
	var lastErr error
	for attempt := 1; attempt <= externalRateAttempts; attempt++ {
		rate, err := p.fetchOnce(ctx)
		if err == nil {
			p.LogDebug(ctx, "Fetched external exchange rate",
				slog.String("rate", rate.String()),
				slog.Int("attempt", attempt))
			return rate, nil
		}
		lastErr = err
		p.LogWarn(ctx, "External exchange rate attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
	}
	return decimal.Zero, fmt.Errorf("external rate failed after %d attempts: %w", externalRateAttempts, lastErr)
}

func (p *rateProvider) fetchOnce(ctx context.Context) (decimal.Decimal, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, p.attemptTimeout)
	defer cancel()

	rate, err := p.external.FetchUSDRate(attemptCtx, p.reportingCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", errNonPositiveRate, rate)
	}
	return rate, nil
}

// manualRate reads the operator override. Read errors and unusable values
// count as "no value".
func (p *rateProvider) manualRate(ctx context.Context) (decimal.Decimal, bool) {
	if p.manual == nil {
		return decimal.Zero, false
	}
	setting, err := p.manual.GetManualExchangeRate(ctx)
	if err != nil {
		p.LogError(ctx, err, "Failed to read manual exchange rate")
		return decimal.Zero, false
	}
	if setting == nil {
		return decimal.Zero, false
	}
	if !setting.Rate.IsPositive() {
		p.LogWarn(ctx, "Ignoring non-positive manual exchange rate",
			slog.String("rate", setting.Rate.String()))
		return decimal.Zero, false
	}
	return setting.Rate, true
}

func (p *rateProvider) stamp(rate decimal.Decimal, source domain.RateSource, ttl time.Duration) domain.ExchangeRate {
	now := p.now()
	return domain.ExchangeRate{
		Rate:       rate,
		Source:     source,
		ResolvedAt: now,
		ExpiresAt:  now.Add(ttl),
	}
}
