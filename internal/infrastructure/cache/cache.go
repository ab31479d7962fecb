package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultTTL = 30 * time.Second

type entry struct {
	value     any
	expiresAt time.Time
}

// ticket marks the load currently allowed to store under a key.
type ticket struct{ _ byte }

// QueryCache memoises upstream reads per (session, resource). Concurrent
// misses on the same key share one load.
type QueryCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
	// inflight holds a ticket per key while its load runs. Invalidation
	// removes the ticket, so a load that started before it is not stored.
	inflight  map[string]*ticket
	nextSweep time.Time
}

func New(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &QueryCache{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]entry),
		inflight: make(map[string]*ticket),
	}
}

func key(sessionID, resource string) string {
	return sessionID + "\x00" + resource
}

func (c *QueryCache) Fetch(ctx context.Context, sessionID, resource string, load func(context.Context) (any, error)) (any, error) {
	k := key(sessionID, resource)

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiresAt) {
		return e.value, nil
	}

	v, err, _ := c.group.Do(k, func() (any, error) {
		t := &ticket{}
		c.mu.Lock()
		c.inflight[k] = t
		c.mu.Unlock()

		// The load is shared by every caller waiting on k.
		v, err := load(context.WithoutCancel(ctx))

		c.mu.Lock()
		defer c.mu.Unlock()
		current := c.inflight[k] == t
		if current {
			delete(c.inflight, k)
		}
		if err != nil {
			return nil, err
		}
		if current {
			now := c.now()
			c.sweep(now)
			c.entries[k] = entry{value: v, expiresAt: now.Add(c.ttl)}
		}
		return v, nil
	})
	return v, err
}

// sweep drops expired entries at most once per ttl. Callers hold c.mu.
func (c *QueryCache) sweep(now time.Time) {
	if now.Before(c.nextSweep) {
		return
	}
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.nextSweep = now.Add(c.ttl)
}

// Invalidate drops exactly one entry.
func (c *QueryCache) Invalidate(sessionID, resource string) {
	k := key(sessionID, resource)
	c.mu.Lock()
	delete(c.entries, k)
	delete(c.inflight, k)
	c.mu.Unlock()
	c.group.Forget(k)
}

// Purge drops every entry of a session, used at logout.
func (c *QueryCache) Purge(sessionID string) {
	prefix := sessionID + "\x00"
	var dropped []string
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	for k := range c.inflight {
		if strings.HasPrefix(k, prefix) {
			delete(c.inflight, k)
			dropped = append(dropped, k)
		}
	}
	c.mu.Unlock()
	for _, k := range dropped {
		c.group.Forget(k)
	}
}

// Len reports the number of entries held, including expired ones not yet
// swept.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
