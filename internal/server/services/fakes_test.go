package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/dbx"
	"github.com/akorchak/caseflow/internal/server/models"
	casesrepo "github.com/akorchak/caseflow/internal/server/repositories/cases"
	dashboardrepo "github.com/akorchak/caseflow/internal/server/repositories/dashboard"
	docketrepo "github.com/akorchak/caseflow/internal/server/repositories/docket"
	documentsrepo "github.com/akorchak/caseflow/internal/server/repositories/documents"
	evidencerepo "github.com/akorchak/caseflow/internal/server/repositories/evidence"
	motionsrepo "github.com/akorchak/caseflow/internal/server/repositories/motions"
	partiesrepo "github.com/akorchak/caseflow/internal/server/repositories/parties"
	tasksrepo "github.com/akorchak/caseflow/internal/server/repositories/tasks"
	usersrepo "github.com/akorchak/caseflow/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	exists    bool
	existsErr error

	listOut []models.User
	listErr error

	updateOut *models.User
	updateErr error

	deleteErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeUsersRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeUsersRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return f.exists, f.existsErr
}
func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return f.listOut, f.listErr
}
func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return u, nil
}
func (f *fakeUsersRepo) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }

type fakeCasesRepo struct {
	listOut []models.Case
	listErr error

	getOut *models.Case
	getErr error

	createOut *models.Case
	createErr error

	updateOut *models.Case
	updateErr error

	deleteErr error
}

func (f *fakeCasesRepo) List(ctx context.Context, filter casesrepo.ListFilter) ([]models.Case, error) {
	return f.listOut, f.listErr
}
func (f *fakeCasesRepo) Get(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeCasesRepo) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return c, nil
}
func (f *fakeCasesRepo) Update(ctx context.Context, c *models.Case) (*models.Case, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return c, nil
}
func (f *fakeCasesRepo) SoftDelete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }

type fakePartiesRepo struct {
	listOut []models.Party
	listErr error

	createOut *models.Party
	createErr error
}

func (f *fakePartiesRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Party, error) {
	return f.listOut, f.listErr
}
func (f *fakePartiesRepo) Get(ctx context.Context, id uuid.UUID) (*models.Party, error) {
	return nil, nil
}
func (f *fakePartiesRepo) Create(ctx context.Context, p *models.Party) (*models.Party, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return p, nil
}
func (f *fakePartiesRepo) Update(ctx context.Context, p *models.Party) (*models.Party, error) {
	return p, nil
}
func (f *fakePartiesRepo) SoftDelete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeDocumentsRepo struct {
	listOut []models.Document
	listErr error

	getOut *models.Document
	getErr error

	createOut *models.Document
	createErr error

	setKeyErr error
	setKeys   []string

	deleteErr error
}

func (f *fakeDocumentsRepo) List(ctx context.Context, filter documentsrepo.ListFilter) ([]models.Document, error) {
	return f.listOut, f.listErr
}
func (f *fakeDocumentsRepo) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeDocumentsRepo) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return d, nil
}
func (f *fakeDocumentsRepo) Update(ctx context.Context, d *models.Document) (*models.Document, error) {
	return d, nil
}
func (f *fakeDocumentsRepo) SetStorageKey(ctx context.Context, id uuid.UUID, key string) error {
	f.setKeys = append(f.setKeys, key)
	return f.setKeyErr
}
func (f *fakeDocumentsRepo) SoftDelete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }

type fakeEvidenceRepo struct {
	listOut []models.EvidenceItem
	listErr error

	getOut *models.EvidenceItem
	getErr error

	createOut *models.EvidenceItem
	createErr error

	deleteErr error
}

func (f *fakeEvidenceRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.EvidenceItem, error) {
	return f.listOut, f.listErr
}
func (f *fakeEvidenceRepo) Get(ctx context.Context, id uuid.UUID) (*models.EvidenceItem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeEvidenceRepo) Create(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return e, nil
}
func (f *fakeEvidenceRepo) Update(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	return e, nil
}
func (f *fakeEvidenceRepo) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }

type fakeTasksRepo struct {
	listOut []models.WorkflowTask
	listErr error

	getOut *models.WorkflowTask
	getErr error
}

func (f *fakeTasksRepo) List(ctx context.Context, filter tasksrepo.ListFilter) ([]models.WorkflowTask, error) {
	return f.listOut, f.listErr
}
func (f *fakeTasksRepo) Get(ctx context.Context, id uuid.UUID) (*models.WorkflowTask, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeDashboardRepo struct {
	statsOut *models.DashboardStats
	statsErr error

	chartOut []models.ChartPoint
	chartErr error

	alertsOut []models.Alert
	alertsErr error
}

func (f *fakeDashboardRepo) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return f.statsOut, f.statsErr
}
func (f *fakeDashboardRepo) CasesByStatus(ctx context.Context) ([]models.ChartPoint, error) {
	return f.chartOut, f.chartErr
}
func (f *fakeDashboardRepo) HighPriorityTasksDueSoon(ctx context.Context, limit int) ([]models.Alert, error) {
	return f.alertsOut, f.alertsErr
}

// --- fake manager ---

type fakeRepoManager struct {
	users     *fakeUsersRepo
	cases     *fakeCasesRepo
	parties   *fakePartiesRepo
	evidence  *fakeEvidenceRepo
	documents *fakeDocumentsRepo
	tasks     *fakeTasksRepo
	dashboard *fakeDashboardRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.users }
func (m *fakeRepoManager) Cases(db dbx.DBTX) casesrepo.Repository       { return m.cases }
func (m *fakeRepoManager) Parties(db dbx.DBTX) partiesrepo.Repository   { return m.parties }
func (m *fakeRepoManager) Motions(db dbx.DBTX) motionsrepo.Repository   { return nil }
func (m *fakeRepoManager) Docket(db dbx.DBTX) docketrepo.Repository     { return nil }
func (m *fakeRepoManager) Evidence(db dbx.DBTX) evidencerepo.Repository { return m.evidence }
func (m *fakeRepoManager) Documents(db dbx.DBTX) documentsrepo.Repository {
	return m.documents
}
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository { return m.tasks }
func (m *fakeRepoManager) Dashboard(db dbx.DBTX) dashboardrepo.Repository {
	return m.dashboard
}
