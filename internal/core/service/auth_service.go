package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

const defaultSessionTTL = 8 * time.Hour

// AuthService starts, resolves and clears browser sessions. The upstream
// token never leaves the gateway: the browser holds a signed token that
// names the session id only.
type AuthService struct {
	api        ports.AuthAPI
	store      ports.SessionStore
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, store ports.SessionStore, secret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		api:        api,
		store:      store,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Login exchanges staff credentials for a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	creds, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.begin(ctx, creds)
}

func (s *AuthService) SendOTP(ctx context.Context, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return domain.ErrInvalidOTP
	}
	return s.api.SendOTP(ctx, phone)
}

// VerifyOTP exchanges a citizen's one-time password for a session.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, otp string) (*ports.LoginResult, error) {
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(otp) == "" {
		return nil, domain.ErrInvalidOTP
	}
	creds, err := s.api.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return nil, err
	}
	return s.begin(ctx, creds)
}

func (s *AuthService) begin(ctx context.Context, creds *domain.Credentials) (*ports.LoginResult, error) {
	if creds == nil || creds.AccessToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	// The profile is display data; losing it never blocks a login.
	probe := &domain.Session{Token: creds.AccessToken, RoleValue: domain.ParseRole(creds.Role)}
	profile, err := s.api.Me(domain.ContextWithSession(ctx, probe))
	if err != nil {
		s.logger.Warn().Err(err).Msg("profile fetch failed after login")
		profile = nil
	}

	sess, err := s.Start(ctx, creds.AccessToken, creds.Role, profile)
	if err != nil {
		return nil, err
	}
	signed, err := s.issue(sess)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("session_id", sess.ID).Str("role", sess.Role().String()).Msg("session started")
	return &ports.LoginResult{Session: sess, Token: signed, Home: sess.Role().HomePage()}, nil
}

// Start records a new session for an upstream token. The role comes from the
// token response; a profile role that disagrees is ignored.
func (s *AuthService) Start(ctx context.Context, token, role string, profile *domain.UserProfile) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	now := s.now().UTC()
	sess := &domain.Session{
		ID:         uuid.NewString(),
		Token:      token,
		RoleValue:  domain.ParseRole(role),
		Profile:    profile,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.store.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Resolve verifies a browser token and loads the session it names.
func (s *AuthService) Resolve(ctx context.Context, signed string) (*domain.Session, error) {
	if signed == "" {
		return nil, domain.ErrUnauthenticated
	}
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrUnauthenticated
	}

	sess, err := s.store.Get(ctx, sid, s.sessionTTL)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// Clear ends a session. Clearing an unknown session is not an error.
func (s *AuthService) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info().Str("session_id", id).Msg("session cleared")
	return nil
}

func (s *AuthService) issue(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": sess.ID,
		"iat": sess.CreatedAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
