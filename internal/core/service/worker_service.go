package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

const defaultWorkerRole = "Worker"

type WorkerService struct {
	api    ports.WorkerAPI
	cache  ports.QueryCache
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewWorkerService(api ports.WorkerAPI, cache ports.QueryCache, audit ports.AuditRecorder, logger zerolog.Logger) *WorkerService {
	return &WorkerService{api: api, cache: cache, audit: recorderOrNop(audit), logger: logger}
}

// Roster returns the worker selection control. Busy workers are listed but
// never selectable or selected by default.
func (s *WorkerService) Roster(ctx context.Context) (*ports.WorkerRoster, error) {
	sid, err := sessionKey(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.cache.Fetch(ctx, sid, ports.ResourceWorkers, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	opts, def := domain.WorkerOptions(v.([]domain.Worker))
	return &ports.WorkerRoster{Options: opts, DefaultID: def}, nil
}

func (s *WorkerService) Create(ctx context.Context, fullName, role string) (*domain.Worker, error) {
	if strings.TrimSpace(role) == "" {
		role = defaultWorkerRole
	}
	w, err := s.api.Create(ctx, strings.TrimSpace(fullName), role)
	if err != nil {
		audit(ctx, s.audit, "create", ports.ResourceWorkers, "", err)
		return nil, err
	}
	if sid, err := sessionKey(ctx); err == nil {
		s.cache.Invalidate(sid, ports.ResourceWorkers)
	}
	s.logger.Info().Str("worker_id", w.ID).Msg("worker created")
	audit(ctx, s.audit, "create", ports.ResourceWorkers, w.ID, nil)
	return w, nil
}
