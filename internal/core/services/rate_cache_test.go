package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/SscSPs/business_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateCache_States(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	cache := services.NewRateCache()

	assert.Equal(t, services.RateCacheEmpty, cache.State(now))
	_, ok := cache.Get(now)
	assert.False(t, ok)

	stored := domain.ExchangeRate{
		Rate:       decimal.NewFromInt(12600),
		Source:     domain.RateSourceManual,
		ResolvedAt: now,
		ExpiresAt:  now.Add(45 * time.Second),
	}
	cache.Store(stored)

	assert.Equal(t, services.RateCacheFresh, cache.State(now.Add(44*time.Second)))
	got, ok := cache.Get(now.Add(44 * time.Second))
	assert.True(t, ok)
	assert.Equal(t, stored, got)

	assert.Equal(t, services.RateCacheStale, cache.State(now.Add(45*time.Second)))
	_, ok = cache.Get(now.Add(45 * time.Second))
	assert.False(t, ok, "an entry is not served at its expiry instant")

	cache.Clear()
	assert.Equal(t, services.RateCacheEmpty, cache.State(now))
	assert.Equal(t, "EMPTY", cache.State(now).String())
}
