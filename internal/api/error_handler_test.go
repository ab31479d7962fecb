package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), 400, "invalid payload"},
		{"credentials", domain.ErrInvalidCredentials, 401, "invalid credentials"},
		{"not logged in", fmt.Errorf("resolve: %w", domain.ErrUnauthenticated), 401, "not logged in"},
		{"forbidden", domain.ErrForbidden, 403, "access forbidden"},
		{"not current actor", fmt.Errorf("act: %w", domain.ErrNotCurrentActor), 409, "complaint is not awaiting this role"},
		{"duplicate", domain.ErrDuplicateSubmission, 409, "submission already received"},
		{"location", domain.ErrLocationRequired, 422, "location must be captured before submitting"},
		{"busy worker", domain.ErrWorkerBusy, 422, "worker already has active tasks"},
		{"unknown worker", fmt.Errorf("worker w9: %w", domain.ErrNotFound), 404, "resource not found"},
		{"upstream 400", &domain.UpstreamError{Status: 400, Message: "Complaint already assigned"}, 400, "Complaint already assigned"},
		{"upstream 409 without detail", &domain.UpstreamError{Status: 409}, 409, "Conflict"},
		{"upstream 503", fmt.Errorf("list: %w", &domain.UpstreamError{Status: 503}), 502, "grievance api unavailable"},
		{"network", fmt.Errorf("get: %w: dial tcp", domain.ErrUpstream), 502, "grievance api unavailable"},
		{"unexpected", errors.New("boom"), 500, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected committed 202 to stand, got %d", rec.Code)
	}
}
