// Package dashboard provides the aggregate queries behind the dashboard
// endpoints.
package dashboard

import (
	"context"

	"github.com/akorchak/caseflow/internal/server/models"
)

type Repository interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	CasesByStatus(ctx context.Context) ([]models.ChartPoint, error)
	HighPriorityTasksDueSoon(ctx context.Context, limit int) ([]models.Alert, error)
}
