package documents

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

const documentColumns = `id, case_id, title, type, content, upload_date, last_modified, tags,
	storage_key, author_id, created_at, updated_at, version, deleted_at`

func scanDocument(row interface{ Scan(...any) error }) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(&d.ID, &d.CaseID, &d.Title, &d.DocType, &d.Content, &d.UploadDate,
		&d.LastModified, &d.Tags, &d.StorageKey, &d.AuthorID, &d.CreatedAt, &d.UpdatedAt,
		&d.Version, &d.DeletedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]models.Document, error) {
	q := dbx.NewListQuery(`SELECT ` + documentColumns + ` FROM documents WHERE deleted_at IS NULL`)
	if filter.CaseID != nil {
		q.Equal("case_id", *filter.CaseID)
	}
	query, args := q.OrderBy("upload_date DESC").Paginate(filter.Page, filter.PerPage).Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND deleted_at IS NULL`

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	query := `
		INSERT INTO documents (case_id, title, type, content, tags, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	row := r.db.QueryRowContext(ctx, query,
		d.CaseID, d.Title, d.DocType, d.Content, d.Tags, d.AuthorID)
	created, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// Update overwrites the editable fields, bumps version and last_modified.
func (r *PostgresRepository) Update(ctx context.Context, d *models.Document) (*models.Document, error) {
	query := `
		UPDATE documents
		SET title = $2, type = $3, content = $4, tags = $5,
			version = version + 1, last_modified = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + documentColumns

	row := r.db.QueryRowContext(ctx, query, d.ID, d.Title, d.DocType, d.Content, d.Tags)
	updated, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// SetStorageKey records the object-storage key after an upload URL is issued.
func (r *PostgresRepository) SetStorageKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE documents SET storage_key = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id, key)
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

func (r *PostgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE documents SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

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
