package documents

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

func documentRow(d *models.Document) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "case_id", "title", "type", "content", "upload_date", "last_modified", "tags",
		"storage_key", "author_id", "created_at", "updated_at", "version", "deleted_at",
	}).AddRow(d.ID, d.CaseID, d.Title, d.DocType, d.Content, d.UploadDate, d.LastModified,
		[]byte(`[]`), d.StorageKey, d.AuthorID, d.CreatedAt, d.UpdatedAt, d.Version, d.DeletedAt)
}

func sampleDocument() *models.Document {
	now := time.Now()
	return &models.Document{
		ID:           uuid.New(),
		CaseID:       uuid.New(),
		Title:        "Settlement agreement",
		DocType:      "Contract",
		UploadDate:   now,
		LastModified: now,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

func TestList_CaseFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d := sampleDocument()
	mock.ExpectQuery(`SELECT .* FROM documents WHERE deleted_at IS NULL AND case_id = \$1 ORDER BY upload_date DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(d.CaseID, 20, 0).
		WillReturnRows(documentRow(d))

	got, err := repo.List(context.Background(), ListFilter{CaseID: &d.CaseID})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Settlement agreement" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSetStorageKey_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`UPDATE documents SET storage_key = \$2`).
		WithArgs(id, "documents/abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStorageKey(context.Background(), id, "documents/abc")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestSoftDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`UPDATE documents SET deleted_at = now\(\)`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDelete(context.Background(), id); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
}
