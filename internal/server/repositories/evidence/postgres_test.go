package evidence

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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	item := &models.EvidenceItem{
		ID:             uuid.New(),
		CaseID:         uuid.New(),
		Title:          "Server logs",
		EvidenceType:   models.EvidenceTypeDigital,
		Description:    "Access logs for March",
		CollectionDate: now,
		CollectedBy:    "J. Doe",
		Custodian:      "IT dept",
		Location:       "Vault 3",
		Admissibility:  models.AdmissibilityPending,
		Tags:           models.Tags{"logs"},
		TrackingUUID:   uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	rows := sqlmock.NewRows([]string{
		"id", "case_id", "title", "type", "description", "collection_date", "collected_by",
		"custodian", "location", "admissibility", "tags", "tracking_uuid", "created_at", "updated_at",
	}).AddRow(item.ID, item.CaseID, item.Title, item.EvidenceType, item.Description, item.CollectionDate,
		item.CollectedBy, item.Custodian, item.Location, item.Admissibility, []byte(`["logs"]`),
		item.TrackingUUID, item.CreatedAt, item.UpdatedAt)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+evidence_items`).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Admissibility != models.AdmissibilityPending || len(got.Tags) != 1 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM evidence_items WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), id)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM evidence_items WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
