package domain

import "strings"

// CurrencyTag identifies the currency a stored amount is denominated in.
// Only two are meaningful to reporting: USD, and the local reporting currency.
type CurrencyTag string

const (
	CurrencyUSD   CurrencyTag = "USD"
	CurrencyLocal CurrencyTag = "LOCAL"
)

// CurrencyTagFromCode maps a stored ISO currency code onto a CurrencyTag.
// Anything other than USD is treated as already being in the reporting currency.
func CurrencyTagFromCode(code string) CurrencyTag {
	if strings.EqualFold(strings.TrimSpace(code), string(CurrencyUSD)) {
		return CurrencyUSD
	}
	return CurrencyLocal
}

// MonetaryRecord is a read-model view over any stored amount (transaction,
// invoice, project budget). Amount is kept as exact decimal text.
type MonetaryRecord struct {
	Amount      string      `json:"amount"`
	CurrencyTag CurrencyTag `json:"currencyTag"`
}
