// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/akorchak/caseflow/internal/dbx"
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

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cases(db dbx.DBTX) cases.Repository
	Parties(db dbx.DBTX) parties.Repository
	Motions(db dbx.DBTX) motions.Repository
	Docket(db dbx.DBTX) docket.Repository
	Evidence(db dbx.DBTX) evidence.Repository
	Documents(db dbx.DBTX) documents.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Dashboard(db dbx.DBTX) dashboard.Repository
}
