package services

import (
	"database/sql"

	"github.com/akorchak/caseflow/internal/server/config"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// Services bundles every service sharing one pool and repository manager.
type Services struct {
	Users     *UserService
	Cases     *CaseService
	Motions   *MotionService
	Docket    *DocketService
	Evidence  *EvidenceService
	Documents *DocumentService
	Tasks     *TaskService
	Dashboard *DashboardService
}

func NewServices(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *Services {
	return &Services{
		Users:     NewUserService(db, m, cfg),
		Cases:     NewCaseService(db, m),
		Motions:   NewMotionService(db, m),
		Docket:    NewDocketService(db, m),
		Evidence:  NewEvidenceService(db, m),
		Documents: NewDocumentService(db, m, cfg),
		Tasks:     NewTaskService(db, m),
		Dashboard: NewDashboardService(db, m),
	}
}
