// Package documents provides PostgreSQL-backed storage for case documents.
package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/server/models"
)

// ListFilter narrows and pages the document list.
type ListFilter struct {
	CaseID  *uuid.UUID
	Page    int
	PerPage int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Create(ctx context.Context, d *models.Document) (*models.Document, error)
	Update(ctx context.Context, d *models.Document) (*models.Document, error)
	SetStorageKey(ctx context.Context, id uuid.UUID, key string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
