package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	projectRepo     portsrepo.ProjectReader
	clientRepo      portsrepo.ClientReader
	rates           portssvc.RateProvider
	now             func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock replaces time.Now for the report window.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	transactionRepo portsrepo.TransactionReader,
	projectRepo portsrepo.ProjectReader,
	clientRepo portsrepo.ClientReader,
	rates portssvc.RateProvider,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		clientRepo:      clientRepo,
		rates:           rates,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// FinancialReport reads transactions, projects and clients concurrently and
// aggregates them with the current rate. A failed read fails the report.
func (s *reportingService) FinancialReport(ctx context.Context) (*domain.FinancialReport, error) {
	var (
		transactions []domain.Transaction
		projects     []domain.Project
		clients      []domain.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.clientRepo.ListClients(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to read financial report data")
		return nil, fmt.Errorf("failed to read financial report data: %w", err)
	}

	rate := s.rates.GetCurrentRate(ctx)
	report, err := BuildReport(transactions, projects, clients, rate, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to build financial report")
		return nil, fmt.Errorf("failed to build financial report: %w", err)
	}

	if len(report.FlaggedPeriods) > 0 {
		s.LogWarn(ctx, "Transactions dated outside the report window",
			slog.String("periods", strings.Join(report.FlaggedPeriods, ",")))
	}

	s.LogInfo(ctx, "Financial report generated successfully",
		slog.Int("transaction_count", len(transactions)),
		slog.Int("project_count", len(projects)),
		slog.Int("client_count", len(clients)),
		slog.String("rate_source", string(rate.Source)))
	return report, nil
}

// BuildReport aggregates normalized transactions by month, client and project.
//
// byMonth holds the trailing twelve months ending at now plus a bucket for
// every other month a transaction falls in, sorted oldest first; the extra
// months are listed in FlaggedPeriods. byClient follows client order and
// holds only clients with positive revenue. byProject follows project order
// and holds every project. Any malformed amount fails the whole report.
func BuildReport(
	transactions []domain.Transaction,
	projects []domain.Project,
	clients []domain.Client,
	rate domain.ExchangeRate,
	now time.Time,
) (*domain.FinancialReport, error) {
	months := accounting.NewMonthBuckets(now, accounting.TrailingMonths)

	projectIdx := make(map[string]int, len(projects))
	byProject := make([]domain.ProjectFinancials, len(projects))
	for i, p := range projects {
		if _, seen := projectIdx[p.ProjectID]; !seen {
			projectIdx[p.ProjectID] = i
		}
		byProject[i] = domain.ProjectFinancials{
			ProjectID:   p.ProjectID,
			ProjectName: p.Name,
			Income:      decimal.Zero,
			Expense:     decimal.Zero,
		}
	}

	clientIdx := make(map[string]int, len(clients))
	clientRevenue := make([]decimal.Decimal, len(clients))
	for i, c := range clients {
		if _, seen := clientIdx[c.ClientID]; !seen {
			clientIdx[c.ClientID] = i
		}
		clientRevenue[i] = decimal.Zero
	}

	for _, txn := range transactions {
		amount, err := normalizeTransaction(txn, rate)
		if err != nil {
			return nil, err
		}
		months.Add(txn.Date, txn.Type, amount)

		if txn.ProjectID == nil {
			continue
		}
		pi, ok := projectIdx[*txn.ProjectID]
		if !ok {
			continue
		}

		switch txn.Type {
		case domain.Income:
			byProject[pi].Income = byProject[pi].Income.Add(amount)
			if clientID := projects[pi].ClientID; clientID != nil {
				if ci, ok := clientIdx[*clientID]; ok {
					clientRevenue[ci] = clientRevenue[ci].Add(amount)
				}
			}
		case domain.Expense:
			byProject[pi].Expense = byProject[pi].Expense.Add(amount)
		}
	}

	for i := range byProject {
		byProject[i].Profit = byProject[i].Income.Sub(byProject[i].Expense)
	}

	byClient := make([]domain.ClientRevenue, 0, len(clients))
	for i, c := range clients {
		if !clientRevenue[i].IsPositive() {
			continue
		}
		byClient = append(byClient, domain.ClientRevenue{
			ClientID:   c.ClientID,
			ClientName: c.Name,
			Revenue:    clientRevenue[i],
		})
	}

	return &domain.FinancialReport{
		ByMonth:        months.Sorted(),
		ByClient:       byClient,
		ByProject:      byProject,
		FlaggedPeriods: months.OutOfWindow(),
		Rate:           rate,
	}, nil
}

// normalizeTransaction converts a transaction amount into the reporting
// currency. A type other than income or expense is rejected so the amount
// is never silently left out of the totals.
func normalizeTransaction(txn domain.Transaction, rate domain.ExchangeRate) (decimal.Decimal, error) {
	if !txn.Type.IsValid() {
		return decimal.Zero, fmt.Errorf("transaction %s: %w: %q", txn.TransactionID, apperrors.ErrUnknownTransactionType, txn.Type)
	}
	amount, err := accounting.ToReportingCurrency(txn.MonetaryRecord(), rate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("transaction %s: %w", txn.TransactionID, err)
	}
	return amount, nil
}
