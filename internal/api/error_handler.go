package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain sentinels to HTTP codes. Order matters: the first
// match wins.
var statusFor = []struct {
	target error
	code   int
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidOTP, http.StatusUnauthorized},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotCurrentActor, http.StatusConflict},
	{domain.ErrDuplicateSubmission, http.StatusConflict},
	{domain.ErrLocationRequired, http.StatusUnprocessableEntity},
	{domain.ErrCategoryRequired, http.StatusUnprocessableEntity},
	{domain.ErrNoWorkerSelected, http.StatusUnprocessableEntity},
	{domain.ErrWorkerBusy, http.StatusUnprocessableEntity},
	{domain.ErrInvalidRole, http.StatusUnprocessableEntity},
	{domain.ErrEmptyUpdate, http.StatusUnprocessableEntity},
	{domain.ErrProofRequired, http.StatusUnprocessableEntity},
	{domain.ErrInvalidAction, http.StatusUnprocessableEntity},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUpstream, http.StatusBadGateway},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Passes grievance API 4xx answers through with the server's message.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A client error from the grievance API keeps its status and detail.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Status >= 400 && ue.Status < 500 {
		msg := ue.Message
		if msg == "" {
			msg = http.StatusText(ue.Status)
		}
		return ue.Status, msg
	}

	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			if m.code == http.StatusBadGateway {
				log.Warn().Err(err).Str("path", c.Path()).Msg("grievance api failure")
			}
			return m.code, m.target.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
