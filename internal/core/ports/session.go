package ports

import (
	"context"
	"time"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// SessionStore persists browser sessions between requests.
type SessionStore interface {
	// Save writes s and (re)starts its idle TTL.
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Get returns the session with id and refreshes its TTL. A missing or
	// expired session yields domain.ErrUnauthenticated.
	Get(ctx context.Context, id string, ttl time.Duration) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// SubmissionGuard rejects repeated client submissions carrying the same key.
type SubmissionGuard interface {
	// Claim reports whether key was seen for the first time.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets key so the client may retry after a failed forward.
	Release(ctx context.Context, key string) error
}
