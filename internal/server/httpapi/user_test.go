package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchak/caseflow/internal/server/auth"
)

func contextWithClaims(req *http.Request, subject string) *http.Request {
	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
	ctx := context.WithValue(req.Context(), claimsCtxKey{}, claims)
	return req.WithContext(ctx)
}

func TestUserUpdate_AnotherAccountForbidden(t *testing.T) {
	h := NewUserHandler(nil, discardLogger())

	targetID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"username":"new"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = contextWithClaims(req, uuid.New().String())
	rec := httptest.NewRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	err := h.Update(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestUserDelete_AnotherAccountForbidden(t *testing.T) {
	h := NewUserHandler(nil, discardLogger())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req = contextWithClaims(req, uuid.New().String())
	rec := httptest.NewRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Delete(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestUserGet_InvalidID(t *testing.T) {
	h := NewUserHandler(nil, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserRegister_MalformedBody(t *testing.T) {
	h := NewUserHandler(nil, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
