package httpapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/documents"
	"github.com/akorchak/caseflow/internal/server/services"
)

type DocumentHandler struct {
	svc    *services.DocumentService
	logger logging.Logger
}

func NewDocumentHandler(svc *services.DocumentService, logger logging.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, logger: logger.With("module", "documents")}
}

type documentRequest struct {
	CaseID   uuid.UUID   `json:"case_id"`
	Title    string      `json:"title"`
	DocType  string      `json:"type"`
	Content  *string     `json:"content"`
	Tags     models.Tags `json:"tags"`
	AuthorID *uuid.UUID  `json:"author_id"`
}

func (h *DocumentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := documents.ListFilter{}
	if raw := c.QueryParam("case_id"); raw != "" {
		caseID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
		}
		filter.CaseID = &caseID
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))

	docs, err := h.svc.List(ctx, filter)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	doc, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.Create(ctx, &models.Document{
		CaseID:   req.CaseID,
		Title:    req.Title,
		DocType:  req.DocType,
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *DocumentHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Update(ctx, &models.Document{
		ID:      id,
		Title:   req.Title,
		DocType: req.DocType,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
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

// UploadURL returns a presigned PUT URL for the document's attachment.
func (h *DocumentHandler) UploadURL(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	u, err := h.svc.UploadURL(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DownloadURL returns a presigned GET URL for the document's attachment.
func (h *DocumentHandler) DownloadURL(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	u, err := h.svc.DownloadURL(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, u)
}
