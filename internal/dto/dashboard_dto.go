package dto

import (
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse represents the dashboard headline figures
type DashboardStatsResponse struct {
	TotalProjects        int                     `json:"totalProjects"`
	ActiveProjects       int                     `json:"activeProjects"`
	CompletedProjects    int                     `json:"completedProjects"`
	DelayedProjects      int                     `json:"delayedProjects"`
	TotalRevenue         decimal.Decimal         `json:"totalRevenue"`
	TotalExpenses        decimal.Decimal         `json:"totalExpenses"`
	NetProfit            decimal.Decimal         `json:"netProfit"`
	TotalHours           decimal.Decimal         `json:"totalHours"`
	AverageHourlyRevenue decimal.Decimal         `json:"averageHourlyRevenue"`
	TotalBudget          decimal.Decimal         `json:"totalBudget"`
	OutstandingInvoices  decimal.Decimal         `json:"outstandingInvoices"`
	MonthlyStats         []MonthlyBucketResponse `json:"monthlyStats"`
	DeadlineRiskCount    int                     `json:"deadlineRiskCount"`
	CurrencyRateSource   domain.RateSource       `json:"currencyRateSource"`
	ExchangeRate         decimal.Decimal         `json:"exchangeRate"`
}

// ToDashboardStatsResponse converts domain stats to the response DTO
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalProjects:        stats.TotalProjects,
		ActiveProjects:       stats.ActiveProjects,
		CompletedProjects:    stats.CompletedProjects,
		DelayedProjects:      stats.DelayedProjects,
		TotalRevenue:         round(stats.TotalRevenue),
		TotalExpenses:        round(stats.TotalExpenses),
		NetProfit:            round(stats.NetProfit),
		TotalHours:           stats.TotalHours,
		AverageHourlyRevenue: stats.AverageHourlyRevenue,
		TotalBudget:          round(stats.TotalBudget),
		OutstandingInvoices:  round(stats.OutstandingInvoices),
		MonthlyStats:         ToMonthlyBucketResponses(stats.MonthlyStats),
		DeadlineRiskCount:    stats.DeadlineRiskCount,
		CurrencyRateSource:   stats.CurrencyRateSource,
		ExchangeRate:         stats.ExchangeRate,
	}
}
