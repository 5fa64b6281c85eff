// Package docket provides PostgreSQL-backed storage for docket entries.
package docket

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

type Repository interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.DocketEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*models.DocketEntry, error)
	Create(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error)
	Update(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
