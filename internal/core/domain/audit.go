package domain

import (
	"errors"
	"time"
)

// AuditOutcome of a forwarded mutation.
type AuditOutcome string

const (
	OutcomeSucceeded AuditOutcome = "succeeded"
	OutcomeFailed    AuditOutcome = "failed"
	OutcomeRefused   AuditOutcome = "refused"
)

// AuditEntry records one mutation the gateway forwarded (or refused to
// forward) on behalf of a session.
type AuditEntry struct {
	ID         string
	Action     string
	Resource   string
	ResourceID string
	SessionID  string
	Role       Role
	Outcome    AuditOutcome
	Error      string
	At         time.Time
}

var refusals = []error{
	ErrForbidden, ErrNotCurrentActor, ErrInvalidAction,
	ErrLocationRequired, ErrCategoryRequired, ErrNoWorkerSelected,
	ErrWorkerBusy, ErrDuplicateSubmission, ErrInvalidRole, ErrEmptyUpdate, ErrProofRequired,
}

// OutcomeOf classifies the result of a mutation. Refusals are the gateway's
// own precondition and authorization errors; any other failure came back
// from upstream.
func OutcomeOf(err error) AuditOutcome {
	if err == nil {
		return OutcomeSucceeded
	}
	for _, target := range refusals {
		if errors.Is(err, target) {
			return OutcomeRefused
		}
	}
	return OutcomeFailed
}
