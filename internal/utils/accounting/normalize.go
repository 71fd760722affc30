package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/SscSPs/business_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount parses exact decimal text. Empty or malformed text is an error
// wrapping apperrors.ErrInvalidAmount; it is never coerced to zero.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", apperrors.ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidAmount, text, err)
	}
	return amount, nil
}

// ToReportingCurrency converts a monetary record into the reporting currency.
// USD amounts are multiplied by the rate, everything else is returned as parsed.
// No rounding is applied.
func ToReportingCurrency(record domain.MonetaryRecord, rate domain.ExchangeRate) (decimal.Decimal, error) {
	amount, err := ParseAmount(record.Amount)
	if err != nil {
		return decimal.Zero, err
	}
	if record.CurrencyTag == domain.CurrencyUSD {
		return amount.Mul(rate.Rate), nil
	}
	return amount, nil
}

// SumNormalized normalizes and adds up a set of records.
func SumNormalized(records []domain.MonetaryRecord, rate domain.ExchangeRate) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range records {
		v, err := ToReportingCurrency(rec, rate)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}
