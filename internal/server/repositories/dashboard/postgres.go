package dashboard

import (
	"context"
	"fmt"

	"github.com/akorchak/caseflow/internal/dbx"
	"github.com/akorchak/caseflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Stats collects the headline counters in one round trip.
func (r *PostgresRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM cases WHERE status != 'Closed' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM motions WHERE status IN ('Draft', 'Filed') AND deleted_at IS NULL),
			(SELECT COALESCE(SUM(duration), 0) FROM time_entries WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM risks WHERE impact = 'High' AND status = 'Identified' AND deleted_at IS NULL),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'Paid' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM workflow_tasks WHERE status NOT IN ('Done', 'Completed') AND deleted_at IS NULL)
	`

	s := &models.DashboardStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ActiveCases, &s.PendingMotions, &s.BillableHours, &s.HighRisks, &s.TotalRevenue, &s.OpenTasks)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) CasesByStatus(ctx context.Context) ([]models.ChartPoint, error) {
	query := `
		SELECT status::text AS name, COUNT(*) AS count
		FROM cases
		WHERE deleted_at IS NULL
		GROUP BY status
		ORDER BY count DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.ChartPoint
	for rows.Next() {
		var p models.ChartPoint
		if err := rows.Scan(&p.Name, &p.Count); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

// HighPriorityTasksDueSoon returns alert rows for high-priority open tasks
// ordered by due date. Due dates today and tomorrow are rendered as words.
func (r *PostgresRepository) HighPriorityTasksDueSoon(ctx context.Context, limit int) ([]models.Alert, error) {
	query := `
		SELECT
			id::text,
			title,
			description,
			CASE
				WHEN due_date::date = CURRENT_DATE THEN 'Today'
				WHEN due_date::date = CURRENT_DATE + 1 THEN 'Tomorrow'
				ELSE due_date::text
			END AS time_text,
			case_id::text
		FROM workflow_tasks
		WHERE priority = 'High'
			AND status NOT IN ('Done', 'Completed')
			AND deleted_at IS NULL
		ORDER BY due_date
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Alert
	for rows.Next() {
		var (
			a      models.Alert
			title  string
			detail *string
		)
		if err := rows.Scan(&a.ID, &title, &detail, &a.Time, &a.CaseID); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		a.Message = "High Priority Task: " + title
		if detail != nil {
			a.Detail = *detail
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
