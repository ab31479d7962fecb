package ports

import "context"

// Cached resource names. Mutations invalidate exactly the resources they
// change.
const (
	ResourceComplaints = "complaints"
	ResourceWorkers    = "workers"
	ResourceUsers      = "users"
)

// QueryCache memoises per-session reads of upstream resources.
type QueryCache interface {
	// Fetch returns the cached value for (sessionID, resource) or calls load
	// and caches its result. Errors are never cached.
	Fetch(ctx context.Context, sessionID, resource string, load func(context.Context) (any, error)) (any, error)
	Invalidate(sessionID, resource string)
}
