package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// stageOrder is the display order of dashboard counters.
var stageOrder = []domain.ComplaintStatus{
	domain.StatusPending, domain.StatusValidated, domain.StatusAssigned,
	domain.StatusInProgress, domain.StatusVerifiedByJE, domain.StatusReviewedBySDO,
	domain.StatusEscalated, domain.StatusRejected, domain.StatusClosed,
}

type DashboardService struct {
	complaints ports.ComplaintService
	workers    ports.WorkerService
	users      ports.UserService
	logger     zerolog.Logger
}

func NewDashboardService(complaints ports.ComplaintService, workers ports.WorkerService, users ports.UserService, logger zerolog.Logger) *DashboardService {
	return &DashboardService{complaints: complaints, workers: workers, users: users, logger: logger}
}

// Summary counts complaints per stage for the acting role. Roster and user
// counts are fetched concurrently, only for roles that manage them.
func (s *DashboardService) Summary(ctx context.Context) (*ports.Dashboard, error) {
	role := actingRole(ctx)
	if role == domain.RoleUnknown {
		return nil, domain.ErrUnauthenticated
	}

	var (
		complaints []domain.Complaint
		roster     *ports.WorkerRoster
		users      []domain.UserProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complaints, err = s.complaints.List(gctx)
		return err
	})
	if role == domain.RoleCM {
		g.Go(func() error {
			var err error
			roster, err = s.workers.Roster(gctx)
			return err
		})
	}
	if role == domain.RoleGM || role == domain.RoleAM {
		g.Go(func() error {
			var err error
			users, err = s.users.List(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("role", role.String()).Msg("dashboard fetch failed")
		return nil, err
	}

	d := &ports.Dashboard{
		Role:        role.Info(),
		Permissions: role.Permissions(),
		Home:        role.HomePage(),
		Total:       len(complaints),
		Users:       len(users),
	}

	counts := make(map[string]int)
	for i := range complaints {
		c := &complaints[i]
		counts[domain.StageLabel(c.Status)]++
		if c.Status.Open() {
			d.Open++
		}
		if actor, ok := domain.CurrentActor(c); ok && actor == role {
			d.AwaitingMe++
		}
	}
	seen := make(map[string]bool)
	for _, st := range stageOrder {
		label := domain.StageLabel(st)
		if seen[label] {
			continue
		}
		seen[label] = true
		d.Stages = append(d.Stages, ports.StageCount{Stage: label, Count: counts[label]})
	}
	if n := counts["Unknown"]; n > 0 {
		d.Stages = append(d.Stages, ports.StageCount{Stage: "Unknown", Count: n})
	}

	if roster != nil {
		d.Workers = len(roster.Options)
		for _, o := range roster.Options {
			if o.Disabled {
				d.BusyWorkers++
			}
		}
	}
	return d, nil
}
