package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Hooks observe the dispatcher; nil fields are ignored.
type Hooks struct {
	Dropped func()
	Failed  func()
	Depth   func(n int)
}

// Dispatcher persists audit entries off the request path. Entries are routed
// to a fixed set of workers by resource id, so the entries of one complaint
// are written in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
	hooks   Hooks
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger, hooks Hooks) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
		hooks:   hooks,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers write out what is still
// queued and stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record enqueues an entry without blocking. A full shard drops the entry;
// the audit trail never slows a request down.
func (d *Dispatcher) Record(e domain.AuditEntry) {
	select {
	case d.workers[d.shardIndex(e.ResourceID)] <- e:
		if d.hooks.Depth != nil {
			d.hooks.Depth(d.Pending())
		}
	default:
		if d.hooks.Dropped != nil {
			d.hooks.Dropped()
		}
		d.log.Warn().Str("action", e.Action).Str("resource_id", e.ResourceID).Msg("audit queue full, entry dropped")
	}
}

// Pending is the number of entries waiting across all shards.
func (d *Dispatcher) Pending() int {
	n := 0
	for _, ch := range d.workers {
		n += len(ch)
	}
	return n
}

// shardIndex maps a resource id deterministically to a worker index.
func (d *Dispatcher) shardIndex(resourceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resourceID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			d.drain(ctx, id, ch)
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			d.write(ctx, id, e)
		}
	}
}

// drain writes whatever is still queued on ch once the worker is told to stop.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return
			}
			d.write(ctx, id, e)
		default:
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, e domain.AuditEntry) {
	// Writes outlive the request that recorded them.
	if err := d.repo.Insert(context.WithoutCancel(ctx), &e); err != nil {
		if d.hooks.Failed != nil {
			d.hooks.Failed()
		}
		d.log.Error().Err(err).
			Str("action", e.Action).
			Str("resource_id", e.ResourceID).
			Int("worker_id", id).
			Msg("audit write failed")
	}
	if d.hooks.Depth != nil {
		d.hooks.Depth(d.Pending())
	}
}
