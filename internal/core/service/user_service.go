package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

type UserService struct {
	api    ports.UserAPI
	auth   ports.AuthAPI
	cache  ports.QueryCache
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(api ports.UserAPI, auth ports.AuthAPI, cache ports.QueryCache, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{api: api, auth: auth, cache: cache, audit: recorderOrNop(audit), logger: logger}
}

// Me returns the profile stored with the session, fetching it when the
// login-time fetch failed.
func (s *UserService) Me(ctx context.Context) (*domain.UserProfile, error) {
	sess := domain.SessionFromContext(ctx)
	if !sess.LoggedIn() {
		return nil, domain.ErrUnauthenticated
	}
	if sess.Profile != nil {
		p := *sess.Profile
		return &p, nil
	}
	return s.auth.Me(ctx)
}

func (s *UserService) List(ctx context.Context) ([]domain.UserProfile, error) {
	sid, err := sessionKey(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.cache.Fetch(ctx, sid, ports.ResourceUsers, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.UserProfile), nil
}

func (s *UserService) Create(ctx context.Context, u domain.NewStaffUser) (*domain.UserProfile, error) {
	u.Role = domain.ParseRole(string(u.Role))
	if !u.Role.Staff() {
		audit(ctx, s.audit, "create", ports.ResourceUsers, "", domain.ErrInvalidRole)
		return nil, domain.ErrInvalidRole
	}
	created, err := s.api.Create(ctx, u)
	return s.finish(ctx, "create", idOf(created), created, err)
}

func (s *UserService) Update(ctx context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error) {
	if p.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	if p.Role != nil {
		r := domain.ParseRole(string(*p.Role))
		if !r.Staff() {
			audit(ctx, s.audit, "update", ports.ResourceUsers, id, domain.ErrInvalidRole)
			return nil, domain.ErrInvalidRole
		}
		p.Role = &r
	}
	updated, err := s.api.Update(ctx, id, p)
	return s.finish(ctx, "update", id, updated, err)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	_, err := s.finish(ctx, "delete", id, nil, s.api.Delete(ctx, id))
	return err
}

// finish invalidates the users entry after a successful mutation and audits
// the outcome either way.
func (s *UserService) finish(ctx context.Context, action, id string, u *domain.UserProfile, err error) (*domain.UserProfile, error) {
	audit(ctx, s.audit, action, ports.ResourceUsers, id, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Str("action", action).Msg("user mutation failed")
		return nil, err
	}
	if sid, serr := sessionKey(ctx); serr == nil {
		s.cache.Invalidate(sid, ports.ResourceUsers)
	}
	s.logger.Info().Str("user_id", id).Str("action", action).Msg("user mutation forwarded")
	return u, nil
}

func idOf(u *domain.UserProfile) string {
	if u == nil {
		return ""
	}
	return u.ID
}
