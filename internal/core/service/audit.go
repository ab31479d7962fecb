package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

type nopRecorder struct{}

func (nopRecorder) Record(domain.AuditEntry) {}

func recorderOrNop(r ports.AuditRecorder) ports.AuditRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// audit records the outcome of a mutation for the session on ctx.
func audit(ctx context.Context, rec ports.AuditRecorder, action, resource, resourceID string, err error) {
	e := domain.AuditEntry{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    domain.OutcomeOf(err),
		At:         time.Now().UTC(),
	}
	if s := domain.SessionFromContext(ctx); s != nil {
		e.SessionID = s.ID
		e.Role = s.Role()
	}
	if err != nil {
		e.Error = err.Error()
	}
	rec.Record(e)
}

// sessionKey is the cache partition for ctx. Anonymous callers share none.
func sessionKey(ctx context.Context) (string, error) {
	s := domain.SessionFromContext(ctx)
	if !s.LoggedIn() {
		return "", domain.ErrUnauthenticated
	}
	return s.ID, nil
}

func actingRole(ctx context.Context) domain.Role {
	return domain.SessionFromContext(ctx).Role()
}
