package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// actingSession returns the session the Session middleware attached and
// fails fast when there is none, before any service call.
func actingSession(c echo.Context) (*domain.Session, error) {
	s := domain.SessionFromContext(c.Request().Context())
	if !s.LoggedIn() {
		return nil, domain.ErrUnauthenticated
	}
	return s, nil
}

// validated binds the request into req and runs the validator. Bind failures
// are 400; validation failures are 422.
func validated(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
