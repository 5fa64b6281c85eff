package cases

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

// PostgresRepository implements case storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const caseColumns = `id, title, client, client_id, matter_type, matter_sub_type, status::text, filing_date,
	description, value, jurisdiction, court, judge, magistrate_judge, opposing_counsel,
	billing_model, created_at, updated_at, version, deleted_at`

func scanCase(row interface{ Scan(...any) error }) (*models.Case, error) {
	c := &models.Case{}
	err := row.Scan(&c.ID, &c.Title, &c.Client, &c.ClientID, &c.MatterType, &c.MatterSubType,
		&c.Status, &c.FilingDate, &c.Description, &c.Value, &c.Jurisdiction, &c.Court,
		&c.Judge, &c.MagistrateJudge, &c.OpposingCounsel, &c.BillingModel,
		&c.CreatedAt, &c.UpdatedAt, &c.Version, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns non-deleted cases matching the filter, newest first.
// Status matches exactly; Search matches title or client as a substring.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]models.Case, error) {
	q := dbx.NewListQuery(`SELECT ` + caseColumns + ` FROM cases WHERE deleted_at IS NULL`)
	if filter.Status != "" {
		q.Equal("status::text", filter.Status)
	}
	if filter.Search != "" {
		q.Search("title", "client", filter.Search)
	}
	query, args := q.OrderBy("created_at DESC").Paginate(filter.Page, filter.PerPage).Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanCase(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	query := `
		INSERT INTO cases (title, client, client_id, matter_type, matter_sub_type, status, filing_date,
			description, value, jurisdiction, court, judge, billing_model)
		VALUES ($1, $2, $3, $4::matter_type, $5, $6::case_status, $7, $8, $9, $10, $11, $12, $13::billing_model)
		RETURNING ` + caseColumns

	row := r.db.QueryRowContext(ctx, query,
		c.Title, c.Client, c.ClientID, c.MatterType, c.MatterSubType, c.Status, c.FilingDate,
		c.Description, c.Value, c.Jurisdiction, c.Court, c.Judge, c.BillingModel)
	created, err := scanCase(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// Update overwrites the mutable fields and bumps version.
func (r *PostgresRepository) Update(ctx context.Context, c *models.Case) (*models.Case, error) {
	query := `
		UPDATE cases
		SET title = $2, status = $3::case_status, description = $4, value = $5, jurisdiction = $6,
			court = $7, judge = $8, magistrate_judge = $9, opposing_counsel = $10,
			billing_model = $11::billing_model, version = version + 1, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + caseColumns

	row := r.db.QueryRowContext(ctx, query,
		c.ID, c.Title, c.Status, c.Description, c.Value, c.Jurisdiction,
		c.Court, c.Judge, c.MagistrateJudge, c.OpposingCounsel, c.BillingModel)
	updated, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// SoftDelete stamps deleted_at; the row stays for audit and aggregates.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE cases SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

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
