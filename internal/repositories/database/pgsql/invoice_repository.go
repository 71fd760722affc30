package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository implements portsrepo.InvoiceReader using pgxpool.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceReader = (*PgxInvoiceRepository)(nil)

// ListInvoices returns every invoice, most recently created first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_number, project_id, client_id, amount::text, currency, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		ORDER BY created_at DESC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		var status string
		if err := rows.Scan(
			&inv.InvoiceID,
			&inv.InvoiceNumber,
			&inv.ProjectID,
			&inv.ClientID,
			&inv.Amount,
			&inv.CurrencyCode,
			&status,
			&inv.CreatedAt,
			&inv.CreatedBy,
			&inv.LastUpdatedAt,
			&inv.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}
