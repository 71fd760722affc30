package domain

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a bill issued to a client.
type Invoice struct {
	InvoiceID     string        `json:"invoiceID"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ProjectID     *string       `json:"projectID"`
	ClientID      *string       `json:"clientID"`
	Amount        string        `json:"amount"`
	CurrencyCode  string        `json:"currencyCode"`
	Status        InvoiceStatus `json:"status"`
	AuditFields
}

// IsOutstanding reports whether the invoice still expects payment.
func (i Invoice) IsOutstanding() bool {
	return i.Status != InvoicePaid && i.Status != InvoiceCancelled
}

// MonetaryRecord returns the amount view used for currency normalization.
func (i Invoice) MonetaryRecord() MonetaryRecord {
	return MonetaryRecord{Amount: i.Amount, CurrencyTag: CurrencyTagFromCode(i.CurrencyCode)}
}
