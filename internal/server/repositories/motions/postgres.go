package motions

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

const motionColumns = `id, case_id, title, type::text, status::text, outcome::text, filing_date, hearing_date,
	created_at, updated_at, deleted_at`

func scanMotion(row interface{ Scan(...any) error }) (*models.Motion, error) {
	m := &models.Motion{}
	err := row.Scan(&m.ID, &m.CaseID, &m.Title, &m.MotionType, &m.Status, &m.Outcome,
		&m.FilingDate, &m.HearingDate, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Motion, error) {
	query := `SELECT ` + motionColumns + ` FROM motions WHERE case_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Motion
	for rows.Next() {
		m, err := scanMotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.Motion, error) {
	query := `SELECT ` + motionColumns + ` FROM motions WHERE id = $1 AND deleted_at IS NULL`

	m, err := scanMotion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Motion) (*models.Motion, error) {
	query := `
		INSERT INTO motions (case_id, title, type, status, outcome, filing_date, hearing_date)
		VALUES ($1, $2, $3::motion_type, $4::motion_status, $5::motion_outcome, $6, $7)
		RETURNING ` + motionColumns

	row := r.db.QueryRowContext(ctx, query,
		m.CaseID, m.Title, m.MotionType, m.Status, m.Outcome, m.FilingDate, m.HearingDate)
	created, err := scanMotion(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Motion) (*models.Motion, error) {
	query := `
		UPDATE motions
		SET title = $2, status = $3::motion_status, outcome = $4::motion_outcome,
			filing_date = $5, hearing_date = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + motionColumns

	row := r.db.QueryRowContext(ctx, query,
		m.ID, m.Title, m.Status, m.Outcome, m.FilingDate, m.HearingDate)
	updated, err := scanMotion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE motions SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
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
