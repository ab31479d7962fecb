package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrUnauthenticated    = errors.New("not logged in")
)

// Authorization.
var (
	ErrForbidden       = errors.New("access forbidden")
	ErrNotCurrentActor = errors.New("complaint is not awaiting this role")
)

// Preconditions that disable a submission control rather than fail a request.
var (
	ErrLocationRequired = errors.New("location must be captured before submitting")
	ErrCategoryRequired = errors.New("complaint category is required")
	ErrNoWorkerSelected = errors.New("a worker must be selected")
	ErrWorkerBusy       = errors.New("worker already has active tasks")
	ErrInvalidRole      = errors.New("role is not a staff role")
	ErrEmptyUpdate      = errors.New("update changes nothing")
	ErrProofRequired    = errors.New("at least one proof file is required")
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateSubmission = errors.New("submission already received")
	ErrUpstream            = errors.New("grievance api unavailable")
	ErrInvalidAction       = errors.New("action not allowed at this stage")
)

// UpstreamError is a non-2xx answer from the grievance API. It unwraps to
// the sentinel matching its status so callers can use errors.Is.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("grievance api: status %d", e.Status)
	}
	return fmt.Sprintf("grievance api: status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= http.StatusInternalServerError:
		return ErrUpstream
	default:
		return nil
	}
}
