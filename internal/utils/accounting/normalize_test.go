package accounting_test

import (
	"testing"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/SscSPs/business_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackRate(v int64) domain.ExchangeRate {
	return domain.ExchangeRate{Rate: decimal.NewFromInt(v), Source: domain.RateSourceFallback}
}

func TestToReportingCurrency(t *testing.T) {
	tests := []struct {
		name   string
		record domain.MonetaryRecord
		rate   domain.ExchangeRate
		want   decimal.Decimal
	}{
		{
			name:   "USD is multiplied by the rate",
			record: domain.MonetaryRecord{Amount: "100", CurrencyTag: domain.CurrencyUSD},
			rate:   fallbackRate(12000),
			want:   decimal.NewFromInt(1_200_000),
		},
		{
			name:   "local amount is unchanged",
			record: domain.MonetaryRecord{Amount: "500000", CurrencyTag: domain.CurrencyLocal},
			rate:   fallbackRate(12000),
			want:   decimal.NewFromInt(500000),
		},
		{
			name:   "local amount ignores the rate",
			record: domain.MonetaryRecord{Amount: "500000", CurrencyTag: domain.CurrencyLocal},
			rate:   fallbackRate(1),
			want:   decimal.NewFromInt(500000),
		},
		{
			name:   "fractional USD keeps full precision",
			record: domain.MonetaryRecord{Amount: "0.10", CurrencyTag: domain.CurrencyUSD},
			rate:   domain.ExchangeRate{Rate: decimal.RequireFromString("12650.55")},
			want:   decimal.RequireFromString("1265.055"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.ToReportingCurrency(tt.record, tt.rate)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestToReportingCurrency_MalformedAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "12,5", "1e", "NaN"} {
		t.Run(amount, func(t *testing.T) {
			_, err := accounting.ToReportingCurrency(
				domain.MonetaryRecord{Amount: amount, CurrencyTag: domain.CurrencyLocal},
				fallbackRate(12000),
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		})
	}
}

func TestSumNormalized(t *testing.T) {
	records := []domain.MonetaryRecord{
		{Amount: "1", CurrencyTag: domain.CurrencyUSD},
		{Amount: "250", CurrencyTag: domain.CurrencyLocal},
	}

	total, err := accounting.SumNormalized(records, fallbackRate(1000))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1250).Equal(total))

	records = append(records, domain.MonetaryRecord{Amount: "oops"})
	_, err = accounting.SumNormalized(records, fallbackRate(1000))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
