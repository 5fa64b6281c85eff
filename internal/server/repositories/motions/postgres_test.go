package motions

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

func motionRow(m *models.Motion) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "case_id", "title", "type", "status", "outcome", "filing_date", "hearing_date",
		"created_at", "updated_at", "deleted_at",
	}).AddRow(m.ID, m.CaseID, m.Title, m.MotionType, m.Status, m.Outcome, m.FilingDate, m.HearingDate,
		m.CreatedAt, m.UpdatedAt, m.DeletedAt)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	m := &models.Motion{
		ID:         uuid.New(),
		CaseID:     uuid.New(),
		Title:      "Motion to Dismiss",
		MotionType: models.MotionTypeDismiss,
		Status:     models.MotionStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+motions`).
		WillReturnRows(motionRow(m))

	got, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Title != "Motion to Dismiss" || got.Status != models.MotionStatusDraft {
		t.Fatalf("unexpected motion: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM motions WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestSoftDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`UPDATE motions SET deleted_at = now\(\)`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), id)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
