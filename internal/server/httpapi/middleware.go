// Package httpapi implements the HTTP transport: routes, handlers, and the
// authorization middleware.
package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akorchak/caseflow/internal/logging"
	"github.com/akorchak/caseflow/internal/server/auth"
)

type claimsCtxKey struct{}

// ClaimsFromContext returns the authenticated identity injected by the
// middleware, or nil on unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsCtxKey{}).(*auth.Claims)
	return claims
}

// AuthMiddleware guards protected routes. Any failure (missing header, bad
// scheme, invalid or expired token) yields the same generic 401 and the
// wrapped handler never runs. It never returns 403.
type AuthMiddleware struct {
	tokens *auth.TokenService
	logger logging.Logger
}

func NewAuthMiddleware(tokens *auth.TokenService, logger logging.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger.With("module", "authmw")}
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token, err := auth.ExtractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			m.logger.Warn(ctx, "rejected request", "reason", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			m.logger.Warn(ctx, "rejected request", "reason", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		ctx = context.WithValue(ctx, claimsCtxKey{}, claims)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
