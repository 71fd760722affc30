package dto

import (
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// presentationPlaces is the number of decimal places amounts are rounded to in responses.
const presentationPlaces = 2

// MonthlyBucketResponse represents one month of revenue and expense
type MonthlyBucketResponse struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// ClientRevenueResponse represents the revenue attributed to a client
type ClientRevenueResponse struct {
	ClientID   string          `json:"clientId"`
	ClientName string          `json:"clientName"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ProjectFinancialsResponse represents the financial summary of a project
type ProjectFinancialsResponse struct {
	ProjectID   string          `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Profit      decimal.Decimal `json:"profit"`
}

// FinancialReportResponse represents the financial report response
type FinancialReportResponse struct {
	ByMonth            []MonthlyBucketResponse     `json:"byMonth"`
	ByClient           []ClientRevenueResponse     `json:"byClient"`
	ByProject          []ProjectFinancialsResponse `json:"byProject"`
	FlaggedPeriods     []string                    `json:"flaggedPeriods"`
	CurrencyRateSource domain.RateSource           `json:"currencyRateSource"`
	ExchangeRate       decimal.Decimal             `json:"exchangeRate"`
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(presentationPlaces)
}

// ToMonthlyBucketResponses converts domain month buckets to DTOs
func ToMonthlyBucketResponses(buckets []domain.MonthlyBucket) []MonthlyBucketResponse {
	out := make([]MonthlyBucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = MonthlyBucketResponse{
			Month:   b.Month,
			Revenue: round(b.Revenue),
			Expense: round(b.Expense),
		}
	}
	return out
}

// ToFinancialReportResponse converts a domain financial report to a DTO response
func ToFinancialReportResponse(report *domain.FinancialReport) FinancialReportResponse {
	response := FinancialReportResponse{
		ByMonth:            ToMonthlyBucketResponses(report.ByMonth),
		ByClient:           make([]ClientRevenueResponse, len(report.ByClient)),
		ByProject:          make([]ProjectFinancialsResponse, len(report.ByProject)),
		FlaggedPeriods:     report.FlaggedPeriods,
		CurrencyRateSource: report.Rate.Source,
		ExchangeRate:       report.Rate.Rate,
	}
	if response.FlaggedPeriods == nil {
		response.FlaggedPeriods = []string{}
	}

	for i, c := range report.ByClient {
		response.ByClient[i] = ClientRevenueResponse{
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
			Revenue:    round(c.Revenue),
		}
	}

	for i, p := range report.ByProject {
		response.ByProject[i] = ProjectFinancialsResponse{
			ProjectID:   p.ProjectID,
			ProjectName: p.ProjectName,
			Income:      round(p.Income),
			Expense:     round(p.Expense),
			Profit:      round(p.Profit),
		}
	}

	return response
}
