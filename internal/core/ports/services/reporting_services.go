package services

import (
	"context"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// FinancialReport builds the monthly, per-client and per-project report
	// over the full transaction history.
	FinancialReport(ctx context.Context) (*domain.FinancialReport, error)
}

// DashboardService defines operations for the dashboard headline figures
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
