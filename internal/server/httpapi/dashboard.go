package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/services"
)

type DashboardHandler struct {
	svc    *services.DashboardService
	logger logging.Logger
}

func NewDashboardHandler(svc *services.DashboardService, logger logging.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger.With("module", "dashboard")}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Chart(c echo.Context) error {
	ctx := c.Request().Context()

	points, err := h.svc.Chart(ctx)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) Alerts(c echo.Context) error {
	ctx := c.Request().Context()

	alerts, err := h.svc.Alerts(ctx)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, alerts)
}
