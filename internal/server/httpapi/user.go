package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/services"
)

type UserHandler struct {
	svc    *services.UserService
	logger logging.Logger
}

func NewUserHandler(svc *services.UserService, logger logging.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger.With("module", "users")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	IsActive *bool   `json:"is_active"`
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}

	h.logger.Info(ctx, "user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": user})
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	claims := ClaimsFromContext(ctx)
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.svc.Get(ctx, id)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.svc.List(ctx)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Update changes a profile. Users may only modify their own account.
func (h *UserHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if claims := ClaimsFromContext(ctx); claims == nil || claims.Subject != id.String() {
		return echo.NewHTTPError(http.StatusForbidden, "cannot modify another user")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Update(ctx, id, req.Email, req.Username, req.IsActive)
	if err != nil {
		return httpError(ctx, h.logger, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account. Users may only delete their own account.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if claims := ClaimsFromContext(ctx); claims == nil || claims.Subject != id.String() {
		return echo.NewHTTPError(http.StatusForbidden, "cannot delete another user")
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		return httpError(ctx, h.logger, err)
	}
	h.logger.Info(ctx, "user deleted", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}
