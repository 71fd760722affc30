package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/core/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	repo    *MockSettingsRepository
	rates   *MockRateProvider
	service portssvc.SettingsSvcFacade
	now     time.Time
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.repo = new(MockSettingsRepository)
	suite.rates = new(MockRateProvider)
	suite.now = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewSettingsService(suite.repo, suite.rates,
		services.WithSettingsClock(func() time.Time { return suite.now }))
}

func (suite *SettingsServiceTestSuite) TestSetManualRate_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	rate := decimal.RequireFromString("12780.25")
	expected := domain.ManualRateSetting{Rate: rate, LastUpdatedAt: suite.now, LastUpdatedBy: userID}

	suite.repo.On("SaveManualExchangeRate", ctx, expected).Return(nil).Once()
	suite.rates.On("Invalidate").Return().Once()

	setting, err := suite.service.SetManualRate(ctx, dto.SetManualRateRequest{Rate: &rate}, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, *setting)
	suite.repo.AssertExpectations(suite.T())
	suite.rates.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSetManualRate_Validation() {
	zero := decimal.Zero
	negative := decimal.NewFromInt(-3)
	tests := []struct {
		name string
		req  dto.SetManualRateRequest
	}{
		{name: "missing", req: dto.SetManualRateRequest{}},
		{name: "zero", req: dto.SetManualRateRequest{Rate: &zero}},
		{name: "negative", req: dto.SetManualRateRequest{Rate: &negative}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			setting, err := suite.service.SetManualRate(context.Background(), tt.req, "user-1")
			suite.Nil(setting)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.repo.AssertNotCalled(suite.T(), "SaveManualExchangeRate", mock.Anything, mock.Anything)
	suite.rates.AssertNotCalled(suite.T(), "Invalidate")
}

func (suite *SettingsServiceTestSuite) TestSetManualRate_RepoError() {
	rate := decimal.NewFromInt(12000)
	dbErr := errors.New("write failed")
	suite.repo.On("SaveManualExchangeRate", mock.Anything, mock.Anything).Return(dbErr).Once()

	setting, err := suite.service.SetManualRate(context.Background(), dto.SetManualRateRequest{Rate: &rate}, "user-1")

	suite.Nil(setting)
	suite.ErrorIs(err, dbErr)
	suite.rates.AssertNotCalled(suite.T(), "Invalidate")
}

func (suite *SettingsServiceTestSuite) TestGetManualRate() {
	ctx := context.Background()
	stored := &domain.ManualRateSetting{Rate: decimal.NewFromInt(12600), LastUpdatedAt: suite.now, LastUpdatedBy: "ops"}
	suite.repo.On("GetManualExchangeRate", ctx).Return(stored, nil).Once()

	setting, err := suite.service.GetManualRate(ctx)

	suite.Require().NoError(err)
	suite.Equal(stored, setting)
}

func (suite *SettingsServiceTestSuite) TestGetManualRate_NotSet() {
	ctx := context.Background()
	suite.repo.On("GetManualExchangeRate", ctx).Return(nil, nil).Once()

	setting, err := suite.service.GetManualRate(ctx)

	suite.Nil(setting)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SettingsServiceTestSuite) TestClearManualRate() {
	ctx := context.Background()
	suite.repo.On("DeleteManualExchangeRate", ctx).Return(nil).Once()
	suite.rates.On("Invalidate").Return().Once()

	err := suite.service.ClearManualRate(ctx, "user-1")

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
	suite.rates.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
