// Package motions provides PostgreSQL-backed storage for case motions.
package motions

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

type Repository interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Motion, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Motion, error)
	Create(ctx context.Context, m *models.Motion) (*models.Motion, error)
	Update(ctx context.Context, m *models.Motion) (*models.Motion, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
