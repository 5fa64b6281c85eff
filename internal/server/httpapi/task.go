package httpapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/repositories/tasks"
	"github.com/akorchak/caseflow/internal/server/services"
)

type TaskHandler struct {
	svc    *services.TaskService
	logger logging.Logger
}

func NewTaskHandler(svc *services.TaskService, logger logging.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger.With("module", "tasks")}
}

func (h *TaskHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := tasks.ListFilter{Status: c.QueryParam("status")}
	if raw := c.QueryParam("case_id"); raw != "" {
		caseID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
		}
		filter.CaseID = &caseID
	}
	if raw := c.QueryParam("assignee_id"); raw != "" {
		assigneeID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid assignee_id")
		}
		filter.AssigneeID = &assigneeID
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.svc.List(ctx, filter)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	task, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, task)
}
