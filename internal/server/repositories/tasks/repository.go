// Package tasks provides PostgreSQL-backed storage for workflow tasks.
package tasks

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

// ListFilter narrows and pages the task list. Nil/empty fields are skipped.
type ListFilter struct {
	CaseID     *uuid.UUID
	Status     string
	AssigneeID *uuid.UUID
	Page       int
	PerPage    int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.WorkflowTask, error)
	Get(ctx context.Context, id uuid.UUID) (*models.WorkflowTask, error)
}
