package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
	"github.com/akorchak/caseflow/internal/server/repositories/tasks"
)

// TaskService exposes read access to workflow tasks.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, filter tasks.ListFilter) ([]models.WorkflowTask, error) {
	return s.repomanager.Tasks(s.db).List(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*models.WorkflowTask, error) {
	return s.repomanager.Tasks(s.db).Get(ctx, id)
}
