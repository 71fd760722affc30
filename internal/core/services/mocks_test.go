package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExternalRateSource ---
type MockExternalRateSource struct {
	mock.Mock
}

func (m *MockExternalRateSource) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockExternalRateSource) FetchUSDRate(ctx context.Context, targetCurrency string) (decimal.Decimal, error) {
	args := m.Called(ctx, targetCurrency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetManualExchangeRate(ctx context.Context) (*domain.ManualRateSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualRateSetting), args.Error(1)
}

func (m *MockSettingsRepository) SaveManualExchangeRate(ctx context.Context, setting domain.ManualRateSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteManualExchangeRate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock entity readers ---
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockProjectReader struct {
	mock.Mock
}

func (m *MockProjectReader) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

type MockInvoiceReader struct {
	mock.Mock
}

func (m *MockInvoiceReader) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

type MockTimeEntryReader struct {
	mock.Mock
}

func (m *MockTimeEntryReader) TotalLoggedMinutes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetCurrentRate(ctx context.Context) domain.ExchangeRate {
	args := m.Called(ctx)
	return args.Get(0).(domain.ExchangeRate)
}

func (m *MockRateProvider) Invalidate() {
	m.Called()
}

// fakeClock is a settable clock for TTL tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
