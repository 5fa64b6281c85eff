package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/logging"
)

// httpError maps service errors onto HTTP status codes. Auth failures stay
// generic; unexpected errors keep their detail in the log only.
func httpError(ctx context.Context, logger logging.Logger, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrInvalidAuthHeader):
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	default:
		logger.Error(ctx, "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
