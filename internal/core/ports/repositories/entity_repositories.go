package repositories

import (
	"context"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for income/expense transactions
type TransactionReader interface {
	// ListTransactions returns every transaction, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// ProjectReader defines read operations for projects
type ProjectReader interface {
	// ListProjects returns every project, most recently created first.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ClientReader defines read operations for clients
type ClientReader interface {
	// ListClients returns every client, most recently created first.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// TimeEntryReader defines read operations for logged task time
type TimeEntryReader interface {
	// TotalLoggedMinutes sums the minutes of every time entry.
	TotalLoggedMinutes(ctx context.Context) (int64, error)
}
