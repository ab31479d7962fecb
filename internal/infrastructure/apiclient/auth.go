package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// Auth wraps the /auth and /users/me endpoints.
type Auth struct{ c *Client }

func NewAuth(c *Client) *Auth { return &Auth{c: c} }

// Login posts an OAuth2 password grant, form-encoded.
func (a *Auth) Login(ctx context.Context, username, password string) (*domain.Credentials, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	var out tokenDTO
	if err := a.c.PostForm(ctx, "/auth/login", form, &out); err != nil {
		return nil, rejectAs(err, domain.ErrInvalidCredentials)
	}
	return &domain.Credentials{AccessToken: out.AccessToken, TokenType: out.TokenType, Role: out.Role}, nil
}

func (a *Auth) SendOTP(ctx context.Context, phone string) error {
	return a.c.PostJSON(ctx, "/auth/citizen/send-otp", map[string]string{"phone": phone}, nil)
}

func (a *Auth) VerifyOTP(ctx context.Context, phone, otp string) (*domain.Credentials, error) {
	var out tokenDTO
	err := a.c.PostJSON(ctx, "/auth/citizen/verify-otp", map[string]string{"phone": phone, "otp": otp}, &out)
	if err != nil {
		return nil, rejectAs(err, domain.ErrInvalidOTP)
	}
	return &domain.Credentials{AccessToken: out.AccessToken, TokenType: out.TokenType, Role: out.Role}, nil
}

func (a *Auth) Me(ctx context.Context) (*domain.UserProfile, error) {
	var out userDTO
	if err := a.c.Get(ctx, "/users/me", &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// rejectAs maps a 400 or 401 from a credential exchange onto sentinel.
func rejectAs(err error, sentinel error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && (ue.Status == http.StatusBadRequest || ue.Status == http.StatusUnauthorized) {
		return sentinel
	}
	return err
}
