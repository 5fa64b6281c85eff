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

type DocketHandler struct {
	svc    *services.DocketService
	logger logging.Logger
}

func NewDocketHandler(svc *services.DocketService, logger logging.Logger) *DocketHandler {
	return &DocketHandler{svc: svc, logger: logger.With("module", "docket")}
}

type docketEntryRequest struct {
	CaseID      uuid.UUID `json:"case_id"`
	Date        time.Time `json:"date"`
	EntryType   string    `json:"type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	FiledBy     *string   `json:"filed_by"`
	IsSealed    bool      `json:"is_sealed"`
}

func (h *DocketHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	caseID, err := uuid.Parse(c.QueryParam("case_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
	}

	entries, err := h.svc.ListByCase(ctx, caseID)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *DocketHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	e, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *DocketHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req docketEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.Create(ctx, &models.DocketEntry{
		CaseID:      req.CaseID,
		Date:        req.Date,
		EntryType:   req.EntryType,
		Title:       req.Title,
		Description: req.Description,
		FiledBy:     req.FiledBy,
		IsSealed:    req.IsSealed,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *DocketHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req docketEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Update(ctx, &models.DocketEntry{
		ID:          id,
		Date:        req.Date,
		EntryType:   req.EntryType,
		Title:       req.Title,
		Description: req.Description,
		FiledBy:     req.FiledBy,
		IsSealed:    req.IsSealed,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *DocketHandler) Delete(c echo.Context) error {
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
