// Package server initializes and runs the application server. It opens the
// database pool, runs migrations, wires repositories, services, and the HTTP
// transport, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/auth"
	"github.com/akorchak/caseflow/internal/server/config"
	"github.com/akorchak/caseflow/internal/server/httpapi"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
	"github.com/akorchak/caseflow/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.HTTPServer
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	svcs := services.NewServices(db, m, cfg)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	handlers := httpapi.NewHandlers(svcs, logger)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		httpServer: httpapi.NewHTTPServer(cfg.HTTPAddr, tokens, handlers, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
