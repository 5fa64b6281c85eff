package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/services"
)

type MotionHandler struct {
	svc    *services.MotionService
	logger logging.Logger
}

func NewMotionHandler(svc *services.MotionService, logger logging.Logger) *MotionHandler {
	return &MotionHandler{svc: svc, logger: logger.With("module", "motions")}
}

type motionRequest struct {
	CaseID      uuid.UUID  `json:"case_id"`
	Title       string     `json:"title"`
	MotionType  string     `json:"type"`
	Status      string     `json:"status"`
	Outcome     *string    `json:"outcome"`
	FilingDate  *time.Time `json:"filing_date"`
	HearingDate *time.Time `json:"hearing_date"`
}

func (h *MotionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	caseID, err := uuid.Parse(c.QueryParam("case_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
	}

	motions, err := h.svc.ListByCase(ctx, caseID)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, motions)
}

func (h *MotionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	m, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MotionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req motionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.Create(ctx, &models.Motion{
		CaseID:      req.CaseID,
		Title:       req.Title,
		MotionType:  req.MotionType,
		Status:      req.Status,
		Outcome:     req.Outcome,
		FilingDate:  req.FilingDate,
		HearingDate: req.HearingDate,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *MotionHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req motionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Update(ctx, &models.Motion{
		ID:          id,
		Title:       req.Title,
		MotionType:  req.MotionType,
		Status:      req.Status,
		Outcome:     req.Outcome,
		FilingDate:  req.FilingDate,
		HearingDate: req.HearingDate,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *MotionHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
