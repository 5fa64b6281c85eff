package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/dbx"
	"github.com/akorchak/caseflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, title, status::text, assignee, assignee_id, due_date, priority, description,
	case_id, completion, created_at, updated_at, deleted_at`

func scanTask(row interface{ Scan(...any) error }) (*models.WorkflowTask, error) {
	w := &models.WorkflowTask{}
	err := row.Scan(&w.ID, &w.Title, &w.Status, &w.Assignee, &w.AssigneeID, &w.DueDate,
		&w.Priority, &w.Description, &w.CaseID, &w.Completion, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// List returns non-deleted tasks matching the filter, soonest due first.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]models.WorkflowTask, error) {
	q := dbx.NewListQuery(`SELECT ` + taskColumns + ` FROM workflow_tasks WHERE deleted_at IS NULL`)
	if filter.CaseID != nil {
		q.Equal("case_id", *filter.CaseID)
	}
	if filter.Status != "" {
		q.Equal("status::text", filter.Status)
	}
	if filter.AssigneeID != nil {
		q.Equal("assignee_id", *filter.AssigneeID)
	}
	query, args := q.OrderBy("due_date").Paginate(filter.Page, filter.PerPage).Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.WorkflowTask
	for rows.Next() {
		w, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.WorkflowTask, error) {
	query := `SELECT ` + taskColumns + ` FROM workflow_tasks WHERE id = $1 AND deleted_at IS NULL`

	w, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}
