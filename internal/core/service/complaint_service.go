package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// ComplaintService forwards complaint reads and mutations to the grievance
// API. It checks preconditions and the acting role before anything is sent,
// and never computes a complaint's next state itself.
type ComplaintService struct {
	complaints ports.ComplaintAPI
	workers    ports.WorkerAPI
	cache      ports.QueryCache
	guard      ports.SubmissionGuard
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewComplaintService(
	complaints ports.ComplaintAPI,
	workers ports.WorkerAPI,
	cache ports.QueryCache,
	guard ports.SubmissionGuard,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		workers:    workers,
		cache:      cache,
		guard:      guard,
		audit:      recorderOrNop(audit),
		logger:     logger,
	}
}

func (s *ComplaintService) Categories() []string {
	out := make([]string, len(domain.ComplaintCategories))
	copy(out, domain.ComplaintCategories)
	return out
}

// Submit sends a citizen complaint. A repeated idempotency key is refused
// until the first submission fails.
func (s *ComplaintService) Submit(ctx context.Context, draft domain.ComplaintDraft, idempotencyKey string) (*domain.Complaint, error) {
	ready, err := draft.Ready()
	if err != nil {
		audit(ctx, s.audit, "submit", ports.ResourceComplaints, "", err)
		return nil, err
	}

	key := strings.TrimSpace(idempotencyKey)
	if key != "" && s.guard != nil {
		fresh, err := s.guard.Claim(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("claim submission: %w", err)
		}
		if !fresh {
			s.logger.Info().Str("idempotency_key", key).Msg("duplicate submission refused")
			audit(ctx, s.audit, "submit", ports.ResourceComplaints, "", domain.ErrDuplicateSubmission)
			return nil, domain.ErrDuplicateSubmission
		}
	}

	created, err := s.complaints.Create(ctx, ready)
	if err != nil {
		if key != "" && s.guard != nil {
			if rerr := s.guard.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("release submission key")
			}
		}
		s.logger.Error().Err(err).Msg("complaint submission failed")
		audit(ctx, s.audit, "submit", ports.ResourceComplaints, "", err)
		return nil, err
	}

	if sid, err := sessionKey(ctx); err == nil {
		s.cache.Invalidate(sid, ports.ResourceComplaints)
	}
	s.logger.Info().Str("complaint_id", created.ID).Str("category", ready.Category).Msg("complaint submitted")
	audit(ctx, s.audit, "submit", ports.ResourceComplaints, created.ID, nil)
	return created, nil
}

// List returns the complaints visible to the session, cached per session.
func (s *ComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	sid, err := sessionKey(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.cache.Fetch(ctx, sid, ports.ResourceComplaints, func(ctx context.Context) (any, error) {
		return s.complaints.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Complaint), nil
}

// Get returns a complaint rendered for the acting role.
func (s *ComplaintService) Get(ctx context.Context, id string) (*ports.ComplaintView, error) {
	c, err := s.complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c), nil
}

// Assign assigns a worker. The roster is fetched fresh so a worker that
// became busy since the selection was rendered is refused.
func (s *ComplaintService) Assign(ctx context.Context, id string, req domain.AssignmentRequest) (*ports.ComplaintView, error) {
	if strings.TrimSpace(req.WorkerID) == "" {
		audit(ctx, s.audit, string(domain.ActionAssign), ports.ResourceComplaints, id, domain.ErrNoWorkerSelected)
		return nil, domain.ErrNoWorkerSelected
	}

	c, err := s.complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actingRole(ctx), c, domain.ActionAssign); err != nil {
		audit(ctx, s.audit, string(domain.ActionAssign), ports.ResourceComplaints, id, err)
		return nil, err
	}

	roster, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := domain.SelectWorker(roster, req.WorkerID); err != nil {
		audit(ctx, s.audit, string(domain.ActionAssign), ports.ResourceComplaints, id, err)
		return nil, err
	}

	updated, err := s.complaints.Assign(ctx, id, req.WithDefaults(c))
	if err != nil {
		s.logger.Error().Err(err).Str("complaint_id", id).Msg("assignment failed")
		audit(ctx, s.audit, string(domain.ActionAssign), ports.ResourceComplaints, id, err)
		return nil, err
	}

	if sid, err := sessionKey(ctx); err == nil {
		s.cache.Invalidate(sid, ports.ResourceComplaints)
		s.cache.Invalidate(sid, ports.ResourceWorkers)
	}
	s.logger.Info().Str("complaint_id", id).Str("worker_id", req.WorkerID).Msg("complaint assigned")
	audit(ctx, s.audit, string(domain.ActionAssign), ports.ResourceComplaints, id, nil)
	return s.view(ctx, updated), nil
}

// Act forwards a workflow action other than assignment.
func (s *ComplaintService) Act(ctx context.Context, id string, cmd domain.WorkflowCommand) (*ports.ComplaintView, error) {
	if cmd.Action == domain.ActionAssign {
		return nil, domain.ErrInvalidAction
	}

	if cmd.Action == domain.ActionSubmitProof && len(cmd.Uploads) == 0 {
		return nil, domain.ErrProofRequired
	}

	c, err := s.complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	actor := actingRole(ctx)
	if err := domain.Authorize(actor, c, cmd.Action); err != nil {
		audit(ctx, s.audit, string(cmd.Action), ports.ResourceComplaints, id, err)
		return nil, err
	}

	var updated *domain.Complaint
	if cmd.Action == domain.ActionEscalate {
		updated, err = s.complaints.Escalate(ctx, id, cmd.Note)
	} else {
		cmd.Stage = actor
		updated, err = s.complaints.Act(ctx, id, cmd)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("complaint_id", id).Str("action", string(cmd.Action)).Msg("workflow action failed")
		audit(ctx, s.audit, string(cmd.Action), ports.ResourceComplaints, id, err)
		return nil, err
	}

	if sid, err := sessionKey(ctx); err == nil {
		s.cache.Invalidate(sid, ports.ResourceComplaints)
	}
	s.logger.Info().Str("complaint_id", id).Str("action", string(cmd.Action)).Str("role", actor.String()).Msg("workflow action forwarded")
	audit(ctx, s.audit, string(cmd.Action), ports.ResourceComplaints, id, nil)
	return s.view(ctx, updated), nil
}

func (s *ComplaintService) view(ctx context.Context, c *domain.Complaint) *ports.ComplaintView {
	actor := actingRole(ctx)
	return &ports.ComplaintView{
		Complaint: *c,
		Stage:     domain.StageLabel(c.Status),
		Workflow:  domain.BuildWorkflow(c),
		Actions:   domain.AvailableActions(actor, c),
	}
}
