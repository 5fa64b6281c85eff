package evidence

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

const evidenceColumns = `id, case_id, title, type::text, description, collection_date, collected_by,
	custodian, location, admissibility::text, tags, tracking_uuid, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*models.EvidenceItem, error) {
	e := &models.EvidenceItem{}
	err := row.Scan(&e.ID, &e.CaseID, &e.Title, &e.EvidenceType, &e.Description, &e.CollectionDate,
		&e.CollectedBy, &e.Custodian, &e.Location, &e.Admissibility, &e.Tags, &e.TrackingUUID,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.EvidenceItem, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_items WHERE case_id = $1 ORDER BY collection_date DESC`

	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.EvidenceItem
	for rows.Next() {
		e, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.EvidenceItem, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_items WHERE id = $1`

	e, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	query := `
		INSERT INTO evidence_items (case_id, title, type, description, collection_date, collected_by,
			custodian, location, admissibility, tags, tracking_uuid)
		VALUES ($1, $2, $3::evidence_type, $4, $5, $6, $7, $8, $9::admissibility_status, $10, $11)
		RETURNING ` + evidenceColumns

	row := r.db.QueryRowContext(ctx, query,
		e.CaseID, e.Title, e.EvidenceType, e.Description, e.CollectionDate, e.CollectedBy,
		e.Custodian, e.Location, e.Admissibility, e.Tags, e.TrackingUUID)
	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	query := `
		UPDATE evidence_items
		SET title = $2, type = $3::evidence_type, description = $4, collection_date = $5,
			collected_by = $6, custodian = $7, location = $8, admissibility = $9::admissibility_status,
			tags = $10, updated_at = now()
		WHERE id = $1
		RETURNING ` + evidenceColumns

	row := r.db.QueryRowContext(ctx, query,
		e.ID, e.Title, e.EvidenceType, e.Description, e.CollectionDate,
		e.CollectedBy, e.Custodian, e.Location, e.Admissibility, e.Tags)
	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// Delete removes the row. Evidence items are hard-deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM evidence_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
