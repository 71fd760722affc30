package domain

import "time"

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense entry, optionally tied to a project.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	ProjectID     *string         `json:"projectID"` // Nullable
	Type          TransactionType `json:"type"`
	Amount        string          `json:"amount"` // Exact decimal text as stored
	CurrencyCode  string          `json:"currencyCode"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	AuditFields
}

// MonetaryRecord returns the amount view used for currency normalization.
func (t Transaction) MonetaryRecord() MonetaryRecord {
	return MonetaryRecord{Amount: t.Amount, CurrencyTag: CurrencyTagFromCode(t.CurrencyCode)}
}
