package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var minutesPerHour = decimal.NewFromInt(60)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	BaseService
	projectRepo     portsrepo.ProjectReader
	transactionRepo portsrepo.TransactionReader
	invoiceRepo     portsrepo.InvoiceReader
	timeEntryRepo   portsrepo.TimeEntryReader
	rates           portssvc.RateProvider
	now             func() time.Time
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardClock replaces time.Now for month windows and deadline checks.
func WithDashboardClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(
	projectRepo portsrepo.ProjectReader,
	transactionRepo portsrepo.TransactionReader,
	invoiceRepo portsrepo.InvoiceReader,
	timeEntryRepo portsrepo.TimeEntryReader,
	rates portssvc.RateProvider,
	options ...DashboardServiceOption,
) portssvc.DashboardService {
	svc := &dashboardService{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		timeEntryRepo:   timeEntryRepo,
		rates:           rates,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// Stats reads every input concurrently and computes the dashboard figures.
func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		projects     []domain.Project
		transactions []domain.Transaction
		invoices     []domain.Invoice
		minutes      int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		minutes, err = s.timeEntryRepo.TotalLoggedMinutes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to read dashboard data")
		return nil, fmt.Errorf("failed to read dashboard data: %w", err)
	}

	rate := s.rates.GetCurrentRate(ctx)
	stats, err := BuildStats(projects, transactions, invoices, minutes, rate, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard stats")
		return nil, fmt.Errorf("failed to build dashboard stats: %w", err)
	}

	s.LogDebug(ctx, "Dashboard stats computed",
		slog.Int("project_count", len(projects)),
		slog.Int("transaction_count", len(transactions)),
		slog.String("rate_source", string(rate.Source)))
	return stats, nil
}

// BuildStats computes the dashboard headline figures. Revenue and expense
// totals cover the whole history; MonthlyStats covers the trailing twelve
// months ending at now.
func BuildStats(
	projects []domain.Project,
	transactions []domain.Transaction,
	invoices []domain.Invoice,
	totalLoggedMinutes int64,
	rate domain.ExchangeRate,
	now time.Time,
) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		TotalProjects:      len(projects),
		CurrencyRateSource: rate.Source,
		ExchangeRate:       rate.Rate,
	}

	totalBudget := decimal.Zero
	for _, p := range projects {
		switch p.Status {
		case domain.ProjectActive:
			stats.ActiveProjects++
		case domain.ProjectCompleted:
			stats.CompletedProjects++
		case domain.ProjectDelayed:
			stats.DelayedProjects++
		}
		if p.IsAtDeadlineRisk(now) {
			stats.DeadlineRiskCount++
		}

		// A project without a budget contributes nothing.
		if p.Budget == "" {
			continue
		}
		budget, err := accounting.ToReportingCurrency(p.BudgetRecord(), rate)
		if err != nil {
			return nil, fmt.Errorf("project %s budget: %w", p.ProjectID, err)
		}
		totalBudget = totalBudget.Add(budget)
	}
	stats.TotalBudget = totalBudget

	months := accounting.NewMonthBuckets(now, accounting.TrailingMonths)
	revenue, expenses := decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		amount, err := normalizeTransaction(txn, rate)
		if err != nil {
			return nil, err
		}
		switch txn.Type {
		case domain.Income:
			revenue = revenue.Add(amount)
		case domain.Expense:
			expenses = expenses.Add(amount)
		}
		months.Add(txn.Date, txn.Type, amount)
	}
	stats.TotalRevenue = revenue
	stats.TotalExpenses = expenses
	stats.NetProfit = revenue.Sub(expenses)
	stats.MonthlyStats = months.Window()

	outstanding := make([]domain.MonetaryRecord, 0, len(invoices))
	for _, inv := range invoices {
		if inv.IsOutstanding() {
			outstanding = append(outstanding, inv.MonetaryRecord())
		}
	}
	outstandingTotal, err := accounting.SumNormalized(outstanding, rate)
	if err != nil {
		return nil, fmt.Errorf("outstanding invoices: %w", err)
	}
	stats.OutstandingInvoices = outstandingTotal

	stats.TotalHours = decimal.NewFromInt(totalLoggedMinutes).Div(minutesPerHour).Round(1)
	stats.AverageHourlyRevenue = decimal.Zero
	if stats.TotalHours.IsPositive() {
		stats.AverageHourlyRevenue = stats.NetProfit.Div(stats.TotalHours).Round(0)
	}

	return stats, nil
}
