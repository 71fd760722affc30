package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/SscSPs/business_dashboard/internal/handlers"
	"github.com/SscSPs/business_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---
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

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetManualRate(ctx context.Context) (*domain.ManualRateSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualRateSetting), args.Error(1)
}

func (m *MockSettingsService) SetManualRate(ctx context.Context, req dto.SetManualRateRequest, userID string) (*domain.ManualRateSetting, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualRateSetting), args.Error(1)
}

func (m *MockSettingsService) ClearManualRate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FinancialReport(ctx context.Context) (*domain.FinancialReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
	userID    string
	rates     *MockRateProvider
	settings  *MockSettingsService
	reporting *MockReportingService
	dashboard *MockDashboardService
}

func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.rates = new(MockRateProvider)
	suite.settings = new(MockSettingsService)
	suite.reporting = new(MockReportingService)
	suite.dashboard = new(MockDashboardService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		IsProduction:      true,
		RateLimit:         "1000-M",
		ReportingCurrency: "UZS",
	}
	services := &portssvc.ServiceContainer{
		ExchangeRate: suite.rates,
		Settings:     suite.settings,
		Reporting:    suite.reporting,
		Dashboard:    suite.dashboard,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services))
}

func (suite *HandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rate", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.rates.AssertNotCalled(suite.T(), "GetCurrentRate", mock.Anything)
}

func (suite *HandlersTestSuite) TestGetCurrentRate() {
	resolved := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	suite.rates.On("GetCurrentRate", mock.Anything).Return(domain.ExchangeRate{
		Rate:       decimal.NewFromInt(12500),
		Source:     domain.RateSourceFallback,
		ResolvedAt: resolved,
		ExpiresAt:  resolved.Add(45 * time.Second),
	}).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rate", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.BaseCurrency)
	suite.Equal("UZS", resp.TargetCurrency)
	suite.Equal(domain.RateSourceFallback, resp.Source)
	suite.False(resp.Authoritative)
	suite.True(decimal.NewFromInt(12500).Equal(resp.Rate))
}

func (suite *HandlersTestSuite) TestGetManualRate_NotSetReturnsNull() {
	suite.settings.On("GetManualRate", mock.Anything).Return(nil, apperrors.NewNotFoundError("manual exchange rate not set")).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings/exchange-rate", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"rate":null}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestSetManualRate_Success() {
	rate := decimal.NewFromInt(12800)
	suite.settings.On("SetManualRate", mock.Anything, mock.MatchedBy(func(req dto.SetManualRateRequest) bool {
		return req.Rate != nil && req.Rate.Equal(rate)
	}), suite.userID).Return(&domain.ManualRateSetting{
		Rate:          rate,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: suite.userID,
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/settings/exchange-rate", `{"rate": 12800}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ManualRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Rate)
	suite.True(rate.Equal(*resp.Rate))
	suite.Equal(suite.userID, resp.LastUpdatedBy)
	suite.settings.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestSetManualRate_BadRequests() {
	w := suite.do(http.MethodPut, "/api/v1/settings/exchange-rate", `{}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/settings/exchange-rate", `{"rate": "twelve"}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.settings.On("SetManualRate", mock.Anything, mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationError("rate must be greater than zero")).Once()
	w = suite.do(http.MethodPut, "/api/v1/settings/exchange-rate", `{"rate": -1}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"rate must be greater than zero"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestClearManualRate() {
	suite.settings.On("ClearManualRate", mock.Anything, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/settings/exchange-rate", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.settings.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestFinancialReport() {
	suite.reporting.On("FinancialReport", mock.Anything).Return(&domain.FinancialReport{
		ByMonth: []domain.MonthlyBucket{
			{Month: "2026-10", Revenue: decimal.RequireFromString("1200000.456"), Expense: decimal.NewFromInt(50000)},
		},
		ByClient: []domain.ClientRevenue{
			{ClientID: "c1", ClientName: "Acme", Revenue: decimal.NewFromInt(1200000)},
		},
		ByProject: []domain.ProjectFinancials{
			{ProjectID: "p1", ProjectName: "Portal", Income: decimal.Zero, Expense: decimal.Zero, Profit: decimal.Zero},
		},
		Rate: domain.ExchangeRate{Rate: decimal.NewFromInt(12000), Source: domain.RateSourceManual},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/financial", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.ByMonth, 1)
	suite.True(decimal.RequireFromString("1200000.46").Equal(resp.ByMonth[0].Revenue))
	suite.Equal("c1", resp.ByClient[0].ClientID)
	suite.Equal("p1", resp.ByProject[0].ProjectID)
	suite.Equal(domain.RateSourceManual, resp.CurrencyRateSource)
	suite.NotNil(resp.FlaggedPeriods)
}

func (suite *HandlersTestSuite) TestFinancialReport_Errors() {
	tests := []struct {
		name string
		err  error
	}{
		{name: "store failure", err: errors.New("connection refused")},
		{name: "corrupt amount", err: fmt.Errorf("failed to build financial report: %w", apperrors.ErrInvalidAmount)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.reporting.On("FinancialReport", mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/reports/financial", "")

			suite.Equal(http.StatusInternalServerError, w.Code)
			suite.JSONEq(`{"error":"Failed to generate financial report"}`, w.Body.String())
		})
	}
}

func (suite *HandlersTestSuite) TestDashboardStats() {
	suite.dashboard.On("Stats", mock.Anything).Return(&domain.DashboardStats{
		TotalProjects:        3,
		ActiveProjects:       2,
		TotalRevenue:         decimal.NewFromInt(1000),
		TotalHours:           decimal.RequireFromString("2.1"),
		AverageHourlyRevenue: decimal.NewFromInt(476),
		MonthlyStats:         []domain.MonthlyBucket{{Month: "2026-10", Revenue: decimal.Zero, Expense: decimal.Zero}},
		DeadlineRiskCount:    1,
		CurrencyRateSource:   domain.RateSourceExternal,
		ExchangeRate:         decimal.NewFromInt(12650),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard/stats", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardStatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.ActiveProjects)
	suite.Equal(1, resp.DeadlineRiskCount)
	suite.True(decimal.RequireFromString("2.1").Equal(resp.TotalHours))
	suite.Equal(domain.RateSourceExternal, resp.CurrencyRateSource)
	suite.Len(resp.MonthlyStats, 1)
}

// --- Run Test Suite ---
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
