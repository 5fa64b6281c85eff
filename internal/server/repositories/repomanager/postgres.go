package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/akorchak/caseflow/internal/dbx"
	"github.com/akorchak/caseflow/internal/server/migrations"
	"github.com/akorchak/caseflow/internal/server/repositories/cases"
	"github.com/akorchak/caseflow/internal/server/repositories/dashboard"
	"github.com/akorchak/caseflow/internal/server/repositories/docket"
	"github.com/akorchak/caseflow/internal/server/repositories/documents"
	"github.com/akorchak/caseflow/internal/server/repositories/evidence"
	"github.com/akorchak/caseflow/internal/server/repositories/motions"
	"github.com/akorchak/caseflow/internal/server/repositories/parties"
	"github.com/akorchak/caseflow/internal/server/repositories/tasks"
	"github.com/akorchak/caseflow/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Cases(db dbx.DBTX) cases.Repository {
	return cases.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Parties(db dbx.DBTX) parties.Repository {
	return parties.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Motions(db dbx.DBTX) motions.Repository {
	return motions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Docket(db dbx.DBTX) docket.Repository {
	return docket.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Evidence(db dbx.DBTX) evidence.Repository {
	return evidence.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Dashboard(db dbx.DBTX) dashboard.Repository {
	return dashboard.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
