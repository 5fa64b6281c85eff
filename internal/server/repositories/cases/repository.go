// Package cases provides PostgreSQL-backed storage for legal cases.
package cases

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

// ListFilter narrows and pages the case list. Zero values mean "no filter".
type ListFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Case, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Case, error)
	Create(ctx context.Context, c *models.Case) (*models.Case, error)
	Update(ctx context.Context, c *models.Case) (*models.Case, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
