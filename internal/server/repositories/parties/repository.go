// Package parties provides PostgreSQL-backed storage for case parties.
package parties

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

type Repository interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Party, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Party, error)
	Create(ctx context.Context, p *models.Party) (*models.Party, error)
	Update(ctx context.Context, p *models.Party) (*models.Party, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
