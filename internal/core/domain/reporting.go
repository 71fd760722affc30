package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyBucket accumulates revenue and expense for one YYYY-MM period.
type MonthlyBucket struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// ClientRevenue is the normalized income attributed to a client through its projects.
type ClientRevenue struct {
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ProjectFinancials is the income/expense summary of a single project.
type ProjectFinancials struct {
	ProjectID   string          `json:"projectID"`
	ProjectName string          `json:"projectName"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Profit      decimal.Decimal `json:"profit"`
}

// FinancialReport groups normalized transactions by month, client and project.
type FinancialReport struct {
	ByMonth   []MonthlyBucket     `json:"byMonth"`
	ByClient  []ClientRevenue     `json:"byClient"`
	ByProject []ProjectFinancials `json:"byProject"`
	// FlaggedPeriods lists month keys outside the trailing window that
	// received transactions; they are reported but worth reviewing.
	FlaggedPeriods []string     `json:"flaggedPeriods"`
	Rate           ExchangeRate `json:"rate"`
}

// DashboardStats holds the headline counters shown on the dashboard.
type DashboardStats struct {
	TotalProjects        int             `json:"totalProjects"`
	ActiveProjects       int             `json:"activeProjects"`
	CompletedProjects    int             `json:"completedProjects"`
	DelayedProjects      int             `json:"delayedProjects"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetProfit            decimal.Decimal `json:"netProfit"`
	TotalHours           decimal.Decimal `json:"totalHours"`
	AverageHourlyRevenue decimal.Decimal `json:"averageHourlyRevenue"`
	TotalBudget          decimal.Decimal `json:"totalBudget"`
	OutstandingInvoices  decimal.Decimal `json:"outstandingInvoices"`
	MonthlyStats         []MonthlyBucket `json:"monthlyStats"`
	DeadlineRiskCount    int             `json:"deadlineRiskCount"`
	CurrencyRateSource   RateSource      `json:"currencyRateSource"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate"`
}
