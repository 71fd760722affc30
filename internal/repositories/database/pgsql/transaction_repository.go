package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements portsrepo.TransactionReader using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// ListTransactions returns every transaction. Amounts are read as text so
// their exact decimal representation is preserved.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, project_id, type, amount::text, currency, transaction_date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		ORDER BY transaction_date DESC, created_at DESC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		var txnType string
		if err := rows.Scan(
			&txn.TransactionID,
			&txn.ProjectID,
			&txnType,
			&txn.Amount,
			&txn.CurrencyCode,
			&txn.Date,
			&txn.Description,
			&txn.CreatedAt,
			&txn.CreatedBy,
			&txn.LastUpdatedAt,
			&txn.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txn.Type = domain.TransactionType(txnType)
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}
