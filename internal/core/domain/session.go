package domain

import (
	"context"
	"time"
)

// UserProfile is the /users/me record. It is display data only; the
// session's Role is the single source of truth for gating.
type UserProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Division string `json:"division,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Credentials is what the grievance API hands back on login or OTP verification.
type Credentials struct {
	AccessToken string
	TokenType   string
	Role        string
}

// Session is the acting browser session.
type Session struct {
	ID         string       `json:"id"`
	Token      string       `json:"-"`
	RoleValue  Role         `json:"role"`
	Profile    *UserProfile `json:"profile,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	LastSeenAt time.Time    `json:"last_seen_at"`
}

// LoggedIn reports whether the session carries a token. The token itself is
// opaque and never inspected.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// Role returns the normalized role, or RoleUnknown for a nil or anonymous session.
func (s *Session) Role() Role {
	if !s.LoggedIn() {
		return RoleUnknown
	}
	return ParseRole(string(s.RoleValue))
}

type sessionKey struct{}

// ContextWithSession attaches s to ctx. The API client reads it back to
// inject the bearer token.
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session attached to ctx, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
