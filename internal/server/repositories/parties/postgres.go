package parties

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

const partyColumns = `id, case_id, name, role, type, contact, counsel, address, phone, email,
	created_at, updated_at, deleted_at`

func scanParty(row interface{ Scan(...any) error }) (*models.Party, error) {
	p := &models.Party{}
	err := row.Scan(&p.ID, &p.CaseID, &p.Name, &p.Role, &p.PartyType, &p.Contact, &p.Counsel,
		&p.Address, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE case_id = $1 AND deleted_at IS NULL ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanParty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Party) (*models.Party, error) {
	query := `
		INSERT INTO parties (case_id, name, role, type, contact, counsel, address, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + partyColumns

	row := r.db.QueryRowContext(ctx, query,
		p.CaseID, p.Name, p.Role, p.PartyType, p.Contact, p.Counsel, p.Address, p.Phone, p.Email)
	created, err := scanParty(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Party) (*models.Party, error) {
	query := `
		UPDATE parties
		SET name = $2, role = $3, type = $4, contact = $5, counsel = $6, address = $7,
			phone = $8, email = $9, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + partyColumns

	row := r.db.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Role, p.PartyType, p.Contact, p.Counsel, p.Address, p.Phone, p.Email)
	updated, err := scanParty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE parties SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

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
