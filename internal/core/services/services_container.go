package services

import (
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A single RateProvider, and so a single rate cache, is shared by every service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateSource portssvc.ExternalRateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRate = NewRateProvider(
		WithExternalRateSource(rateSource),
		WithManualRateReader(repos.SettingsRepo),
		WithFallbackRate(cfg.FallbackUSDRate),
		WithReportingCurrency(cfg.ReportingCurrency),
		WithExternalAttemptTimeout(cfg.ExchangeRateTimeout),
	)

	container.Settings = NewSettingsService(repos.SettingsRepo, container.ExchangeRate)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		repos.ProjectRepo,
		repos.ClientRepo,
		container.ExchangeRate,
	)
	container.Dashboard = NewDashboardService(
		repos.ProjectRepo,
		repos.TransactionRepo,
		repos.InvoiceRepo,
		repos.TimeEntryRepo,
		container.ExchangeRate,
	)

	return container
}
