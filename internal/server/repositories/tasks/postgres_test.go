package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func taskRow(w *models.WorkflowTask) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "status", "assignee", "assignee_id", "due_date", "priority", "description",
		"case_id", "completion", "created_at", "updated_at", "deleted_at",
	}).AddRow(w.ID, w.Title, w.Status, w.Assignee, w.AssigneeID, w.DueDate, w.Priority, w.Description,
		w.CaseID, w.Completion, w.CreatedAt, w.UpdatedAt, w.DeletedAt)
}

func sampleTask() *models.WorkflowTask {
	now := time.Now()
	return &models.WorkflowTask{
		ID:        uuid.New(),
		Title:     "File opposition brief",
		Status:    models.TaskStatusPending,
		Assignee:  "J. Doe",
		DueDate:   now.Add(48 * time.Hour),
		Priority:  "High",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestList_AllFilters(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	w := sampleTask()
	caseID := uuid.New()
	assigneeID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM workflow_tasks WHERE deleted_at IS NULL AND case_id = \$1 AND status::text = \$2 AND assignee_id = \$3 ORDER BY due_date LIMIT \$4 OFFSET \$5`).
		WithArgs(caseID, "Pending", assigneeID, 20, 0).
		WillReturnRows(taskRow(w))

	got, err := repo.List(context.Background(), ListFilter{CaseID: &caseID, Status: "Pending", AssigneeID: &assigneeID})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "File opposition brief" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_NoFilters(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM workflow_tasks WHERE deleted_at IS NULL ORDER BY due_date LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(taskRow(sampleTask()))

	got, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM workflow_tasks WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
