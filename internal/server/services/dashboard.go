package services

import (
	"context"
	"database/sql"

	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// alertLimit caps the number of alerts on the dashboard.
const alertLimit = 5

// DashboardService aggregates cross-entity numbers for the dashboard.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repomanager.Dashboard(s.db).Stats(ctx)
}

func (s *DashboardService) Chart(ctx context.Context) ([]models.ChartPoint, error) {
	return s.repomanager.Dashboard(s.db).CasesByStatus(ctx)
}

func (s *DashboardService) Alerts(ctx context.Context) ([]models.Alert, error) {
	return s.repomanager.Dashboard(s.db).HighPriorityTasksDueSoon(ctx, alertLimit)
}
