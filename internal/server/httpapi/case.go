package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/cases"
	"github.com/akorchak/caseflow/internal/server/services"
)

type CaseHandler struct {
	svc    *services.CaseService
	logger logging.Logger
}

func NewCaseHandler(svc *services.CaseService, logger logging.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, logger: logger.With("module", "cases")}
}

type createCaseRequest struct {
	Title         string     `json:"title"`
	Client        string     `json:"client"`
	ClientID      *uuid.UUID `json:"client_id"`
	MatterType    string     `json:"matter_type"`
	MatterSubType *string    `json:"matter_sub_type"`
	Status        string     `json:"status"`
	FilingDate    time.Time  `json:"filing_date"`
	Description   *string    `json:"description"`
	Value         *float64   `json:"value"`
	Jurisdiction  *string    `json:"jurisdiction"`
	Court         *string    `json:"court"`
	Judge         *string    `json:"judge"`
	BillingModel  *string    `json:"billing_model"`
}

type updateCaseRequest struct {
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Description     *string  `json:"description"`
	Value           *float64 `json:"value"`
	Jurisdiction    *string  `json:"jurisdiction"`
	Court           *string  `json:"court"`
	Judge           *string  `json:"judge"`
	MagistrateJudge *string  `json:"magistrate_judge"`
	OpposingCounsel *string  `json:"opposing_counsel"`
	BillingModel    *string  `json:"billing_model"`
}

func (h *CaseHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	filter := cases.ListFilter{
		Status:  c.QueryParam("status"),
		Search:  c.QueryParam("search"),
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.svc.List(ctx, filter)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	result, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CaseHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.Create(ctx, &models.Case{
		Title:         req.Title,
		Client:        req.Client,
		ClientID:      req.ClientID,
		MatterType:    req.MatterType,
		MatterSubType: req.MatterSubType,
		Status:        req.Status,
		FilingDate:    req.FilingDate,
		Description:   req.Description,
		Value:         req.Value,
		Jurisdiction:  req.Jurisdiction,
		Court:         req.Court,
		Judge:         req.Judge,
		BillingModel:  req.BillingModel,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}

	h.logger.Info(ctx, "case created", "case_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *CaseHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.Update(ctx, &models.Case{
		ID:              id,
		Title:           req.Title,
		Status:          req.Status,
		Description:     req.Description,
		Value:           req.Value,
		Jurisdiction:    req.Jurisdiction,
		Court:           req.Court,
		Judge:           req.Judge,
		MagistrateJudge: req.MagistrateJudge,
		OpposingCounsel: req.OpposingCounsel,
		BillingModel:    req.BillingModel,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CaseHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		return httpError(ctx, h.logger, err)
	}
	h.logger.Info(ctx, "case deleted", "case_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CaseHandler) ListParties(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	parties, err := h.svc.ListParties(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, parties)
}

type createPartyRequest struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	PartyType string  `json:"type"`
	Contact   *string `json:"contact"`
	Counsel   *string `json:"counsel"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

func (h *CaseHandler) AddParty(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req createPartyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.AddParty(ctx, &models.Party{
		CaseID:    id,
		Name:      req.Name,
		Role:      req.Role,
		PartyType: req.PartyType,
		Contact:   req.Contact,
		Counsel:   req.Counsel,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}
