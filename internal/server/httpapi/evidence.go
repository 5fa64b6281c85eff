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

type EvidenceHandler struct {
	svc    *services.EvidenceService
	logger logging.Logger
}

func NewEvidenceHandler(svc *services.EvidenceService, logger logging.Logger) *EvidenceHandler {
	return &EvidenceHandler{svc: svc, logger: logger.With("module", "evidence")}
}

type evidenceRequest struct {
	CaseID         uuid.UUID   `json:"case_id"`
	Title          string      `json:"title"`
	EvidenceType   string      `json:"type"`
	Description    string      `json:"description"`
	CollectionDate time.Time   `json:"collection_date"`
	CollectedBy    string      `json:"collected_by"`
	Custodian      string      `json:"custodian"`
	Location       string      `json:"location"`
	Admissibility  string      `json:"admissibility"`
	Tags           models.Tags `json:"tags"`
}

func (h *EvidenceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	caseID, err := uuid.Parse(c.QueryParam("case_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
	}

	items, err := h.svc.ListByCase(ctx, caseID)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *EvidenceHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *EvidenceHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req evidenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.Create(ctx, &models.EvidenceItem{
		CaseID:         req.CaseID,
		Title:          req.Title,
		EvidenceType:   req.EvidenceType,
		Description:    req.Description,
		CollectionDate: req.CollectionDate,
		CollectedBy:    req.CollectedBy,
		Custodian:      req.Custodian,
		Location:       req.Location,
		Admissibility:  req.Admissibility,
		Tags:           req.Tags,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EvidenceHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req evidenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Update(ctx, &models.EvidenceItem{
		ID:             id,
		Title:          req.Title,
		EvidenceType:   req.EvidenceType,
		Description:    req.Description,
		CollectionDate: req.CollectionDate,
		CollectedBy:    req.CollectedBy,
		Custodian:      req.Custodian,
		Location:       req.Location,
		Admissibility:  req.Admissibility,
		Tags:           req.Tags,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *EvidenceHandler) Delete(c echo.Context) error {
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
