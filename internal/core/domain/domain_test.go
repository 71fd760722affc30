package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCurrencyTagFromCode(t *testing.T) {
	tests := []struct {
		code string
		want domain.CurrencyTag
	}{
		{code: "USD", want: domain.CurrencyUSD},
		{code: "usd", want: domain.CurrencyUSD},
		{code: " USD ", want: domain.CurrencyUSD},
		{code: "UZS", want: domain.CurrencyLocal},
		{code: "", want: domain.CurrencyLocal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CurrencyTagFromCode(tt.code))
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.Income.IsValid())
	assert.True(t, domain.Expense.IsValid())
	assert.False(t, domain.TransactionType("refund").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}

func TestTransaction_MonetaryRecord(t *testing.T) {
	txn := domain.Transaction{Amount: "100.50", CurrencyCode: "USD"}

	rec := txn.MonetaryRecord()

	assert.Equal(t, "100.50", rec.Amount)
	assert.Equal(t, domain.CurrencyUSD, rec.CurrencyTag)
}

func TestProject_IsAtDeadlineRisk(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		project domain.Project
		want    bool
	}{
		{
			name:    "active, overdue, unfinished",
			project: domain.Project{Status: domain.ProjectActive, DeadlineDate: timePtr(yesterday), Progress: 60},
			want:    true,
		},
		{
			name:    "active, overdue, finished",
			project: domain.Project{Status: domain.ProjectActive, DeadlineDate: timePtr(yesterday), Progress: 100},
			want:    false,
		},
		{
			name:    "active, deadline ahead",
			project: domain.Project{Status: domain.ProjectActive, DeadlineDate: timePtr(tomorrow), Progress: 10},
			want:    false,
		},
		{
			name:    "delayed status is not counted",
			project: domain.Project{Status: domain.ProjectDelayed, DeadlineDate: timePtr(yesterday), Progress: 10},
			want:    false,
		},
		{
			name:    "no deadline",
			project: domain.Project{Status: domain.ProjectActive, Progress: 10},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.IsAtDeadlineRisk(now))
		})
	}
}

func TestInvoice_IsOutstanding(t *testing.T) {
	assert.True(t, domain.Invoice{Status: domain.InvoiceSent}.IsOutstanding())
	assert.True(t, domain.Invoice{Status: domain.InvoiceOverdue}.IsOutstanding())
	assert.True(t, domain.Invoice{Status: domain.InvoiceDraft}.IsOutstanding())
	assert.False(t, domain.Invoice{Status: domain.InvoicePaid}.IsOutstanding())
	assert.False(t, domain.Invoice{Status: domain.InvoiceCancelled}.IsOutstanding())
}

func TestExchangeRate_IsFresh(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rate := domain.ExchangeRate{ExpiresAt: now.Add(time.Minute)}

	assert.True(t, rate.IsFresh(now))
	assert.False(t, rate.IsFresh(now.Add(time.Minute)))
	assert.True(t, domain.RateSourceExternal.IsAuthoritative())
	assert.False(t, domain.RateSourceFallback.IsAuthoritative())
}
