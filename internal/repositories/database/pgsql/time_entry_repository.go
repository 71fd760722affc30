package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTimeEntryRepository implements portsrepo.TimeEntryReader using pgxpool.
type PgxTimeEntryRepository struct {
	BaseRepository
}

func newPgxTimeEntryRepository(pool *pgxpool.Pool) *PgxTimeEntryRepository {
	return &PgxTimeEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TimeEntryReader = (*PgxTimeEntryRepository)(nil)

// TotalLoggedMinutes sums the minutes of every time entry.
func (r *PgxTimeEntryRepository) TotalLoggedMinutes(ctx context.Context) (int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(minutes), 0)::bigint FROM time_entries`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing logged minutes: %w", err)
	}
	return total, nil
}
