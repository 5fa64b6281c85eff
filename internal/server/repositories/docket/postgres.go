package docket

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

const docketColumns = `id, case_id, sequence_number, date, type::text, title, description, filed_by, is_sealed,
	created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (*models.DocketEntry, error) {
	e := &models.DocketEntry{}
	err := row.Scan(&e.ID, &e.CaseID, &e.SequenceNumber, &e.Date, &e.EntryType, &e.Title,
		&e.Description, &e.FiledBy, &e.IsSealed, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByCase returns the docket newest first, ties broken by sequence number.
func (r *PostgresRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.DocketEntry, error) {
	query := `SELECT ` + docketColumns + ` FROM docket_entries WHERE case_id = $1 ORDER BY date DESC, sequence_number DESC`

	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.DocketEntry
	for rows.Next() {
		e, err := scanEntry(rows)
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

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.DocketEntry, error) {
	query := `SELECT ` + docketColumns + ` FROM docket_entries WHERE id = $1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// Create assigns the next sequence number for the case.
func (r *PostgresRepository) Create(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error) {
	query := `
		INSERT INTO docket_entries (case_id, sequence_number, date, type, title, description, filed_by, is_sealed)
		VALUES ($1,
			(SELECT COALESCE(MAX(sequence_number), 0) + 1 FROM docket_entries WHERE case_id = $1),
			$2, $3::docket_entry_type, $4, $5, $6, $7)
		RETURNING ` + docketColumns

	row := r.db.QueryRowContext(ctx, query,
		e.CaseID, e.Date, e.EntryType, e.Title, e.Description, e.FiledBy, e.IsSealed)
	created, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error) {
	query := `
		UPDATE docket_entries
		SET date = $2, type = $3::docket_entry_type, title = $4, description = $5,
			filed_by = $6, is_sealed = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + docketColumns

	row := r.db.QueryRowContext(ctx, query,
		e.ID, e.Date, e.EntryType, e.Title, e.Description, e.FiledBy, e.IsSealed)
	updated, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// Delete removes the row. Docket entries are hard-deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM docket_entries WHERE id = $1`, id)
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
