package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/auth"
	"github.com/akorchak/caseflow/internal/server/services"
)

// Handlers bundles the per-entity handlers the server mounts.
type Handlers struct {
	Users     *UserHandler
	Cases     *CaseHandler
	Motions   *MotionHandler
	Docket    *DocketHandler
	Evidence  *EvidenceHandler
	Documents *DocumentHandler
	Tasks     *TaskHandler
	Dashboard *DashboardHandler
}

// NewHandlers wires handlers from the service layer with per-module loggers.
func NewHandlers(s *services.Services, logger logging.Logger) *Handlers {
	return &Handlers{
		Users:     NewUserHandler(s.Users, logger),
		Cases:     NewCaseHandler(s.Cases, logger),
		Motions:   NewMotionHandler(s.Motions, logger),
		Docket:    NewDocketHandler(s.Docket, logger),
		Evidence:  NewEvidenceHandler(s.Evidence, logger),
		Documents: NewDocumentHandler(s.Documents, logger),
		Tasks:     NewTaskHandler(s.Tasks, logger),
		Dashboard: NewDashboardHandler(s.Dashboard, logger),
	}
}

type HTTPServer struct {
	address string
	echo    *echo.Echo
	logger  logging.Logger
}

func NewHTTPServer(address string, tokens *auth.TokenService, h *Handlers, logger logging.Logger) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	registerRoutes(e, NewAuthMiddleware(tokens, logger), h)

	return &HTTPServer{
		address: address,
		echo:    e,
		logger:  logger.With("module", "http_server"),
	}
}

func registerRoutes(e *echo.Echo, authMW *AuthMiddleware, h *Handlers) {
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")
	api.POST("/users", h.Users.Register)
	api.POST("/auth/login", h.Users.Login)

	protected := api.Group("", authMW.RequireAuth)

	protected.GET("/users/me", h.Users.Me)
	protected.GET("/users", h.Users.List)
	protected.GET("/users/:id", h.Users.Get)
	protected.PUT("/users/:id", h.Users.Update)
	protected.DELETE("/users/:id", h.Users.Delete)

	protected.GET("/cases", h.Cases.List)
	protected.POST("/cases", h.Cases.Create)
	protected.GET("/cases/:id", h.Cases.Get)
	protected.PUT("/cases/:id", h.Cases.Update)
	protected.DELETE("/cases/:id", h.Cases.Delete)
	protected.GET("/cases/:id/parties", h.Cases.ListParties)
	protected.POST("/cases/:id/parties", h.Cases.AddParty)

	protected.GET("/motions", h.Motions.List)
	protected.POST("/motions", h.Motions.Create)
	protected.GET("/motions/:id", h.Motions.Get)
	protected.PUT("/motions/:id", h.Motions.Update)
	protected.DELETE("/motions/:id", h.Motions.Delete)

	protected.GET("/docket-entries", h.Docket.List)
	protected.POST("/docket-entries", h.Docket.Create)
	protected.GET("/docket-entries/:id", h.Docket.Get)
	protected.PUT("/docket-entries/:id", h.Docket.Update)
	protected.DELETE("/docket-entries/:id", h.Docket.Delete)

	protected.GET("/evidence", h.Evidence.List)
	protected.POST("/evidence", h.Evidence.Create)
	protected.GET("/evidence/:id", h.Evidence.Get)
	protected.PUT("/evidence/:id", h.Evidence.Update)
	protected.DELETE("/evidence/:id", h.Evidence.Delete)

	protected.GET("/documents", h.Documents.List)
	protected.POST("/documents", h.Documents.Create)
	protected.GET("/documents/:id", h.Documents.Get)
	protected.PUT("/documents/:id", h.Documents.Update)
	protected.DELETE("/documents/:id", h.Documents.Delete)
	protected.POST("/documents/:id/upload-url", h.Documents.UploadURL)
	protected.GET("/documents/:id/download-url", h.Documents.DownloadURL)

	protected.GET("/tasks", h.Tasks.List)
	protected.GET("/tasks/:id", h.Tasks.Get)

	protected.GET("/dashboard/stats", h.Dashboard.Stats)
	protected.GET("/dashboard/chart", h.Dashboard.Chart)
	protected.GET("/dashboard/alerts", h.Dashboard.Alerts)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
