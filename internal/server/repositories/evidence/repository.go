// Package evidence provides PostgreSQL-backed storage for evidence items.
package evidence

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

type Repository interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.EvidenceItem, error)
	Get(ctx context.Context, id uuid.UUID) (*models.EvidenceItem, error)
	Create(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error)
	Update(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
