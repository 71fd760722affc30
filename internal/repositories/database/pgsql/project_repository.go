package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/business_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProjectRepository implements portsrepo.ProjectReader using pgxpool.
type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectReader = (*PgxProjectRepository)(nil)

// ListProjects returns every project, most recently created first.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT project_id, client_id, name, status, progress, deadline_date, budget::text, budget_currency,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		ORDER BY created_at DESC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		var status string
		if err := rows.Scan(
			&p.ProjectID,
			&p.ClientID,
			&p.Name,
			&status,
			&p.Progress,
			&p.DeadlineDate,
			&p.Budget,
			&p.BudgetCurrency,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		p.Status = domain.ProjectStatus(status)
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}
