package pgsql

import (
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ProjectRepo:     newPgxProjectRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		TimeEntryRepo:   newPgxTimeEntryRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
	}
}
