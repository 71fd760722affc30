package services

import (
	"sync"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
)

// RateCacheState is the lazily evaluated state of a RateCache.
type RateCacheState int

const (
	RateCacheEmpty RateCacheState = iota
	RateCacheFresh
	RateCacheStale
)

func (s RateCacheState) String() string {
	switch s {
	case RateCacheFresh:
		return "FRESH"
	case RateCacheStale:
		return "STALE"
	default:
		return "EMPTY"
	}
}

// RateCache holds at most one resolved exchange rate. Expiry is checked on
// read; nothing evicts the entry in the background.
type RateCache struct {
	mu    sync.RWMutex
	entry *domain.ExchangeRate
}

// NewRateCache returns an empty cache.
func NewRateCache() *RateCache {
	return &RateCache{}
}

// Get returns the cached rate only while it is fresh at now.
func (c *RateCache) Get(now time.Time) (domain.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil || !c.entry.IsFresh(now) {
		return domain.ExchangeRate{}, false
	}
	return *c.entry, true
}

// Store replaces the cached rate.
func (c *RateCache) Store(rate domain.ExchangeRate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &rate
}

// State reports EMPTY, FRESH or STALE at now.
func (c *RateCache) State(now time.Time) RateCacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.entry == nil:
		return RateCacheEmpty
	case c.entry.IsFresh(now):
		return RateCacheFresh
	default:
		return RateCacheStale
	}
}

// Clear empties the cache.
func (c *RateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}

// clearIf empties the cache when the current entry matches pred.
func (c *RateCache) clearIf(pred func(domain.ExchangeRate) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entry != nil && pred(*c.entry) {
		c.entry = nil
	}
}
