package ports

import (
	"context"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEntry) error
	ListByResource(ctx context.Context, resource, resourceID string, limit int) ([]domain.AuditEntry, error)
}

// AuditRecorder accepts entries for asynchronous persistence. Record never
// blocks the request path on storage.
type AuditRecorder interface {
	Record(e domain.AuditEntry)
}
