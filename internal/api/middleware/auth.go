package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/pkg/logger"
)

// SessionCookie holds the gateway-signed session token. It carries no
// expiry so it ends with the browser session.
const SessionCookie = "portal_session"

// SessionResolver maps a signed session token to its live session.
type SessionResolver interface {
	Resolve(ctx context.Context, signed string) (*domain.Session, error)
}

// Session attaches the caller's session, if any, to the request context
// together with a request-scoped logger. Anonymous requests pass through;
// RequireRoles decides whether they may continue.
func Session(resolver SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			reqLog := log.With().Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Logger()

			signed, err := sessionToken(req)
			if err != nil {
				return err
			}
			if signed != "" {
				sess, err := resolver.Resolve(ctx, signed)
				switch {
				case err == nil:
					ctx = domain.ContextWithSession(ctx, sess)
					reqLog = reqLog.With().Str("session_id", sess.ID).Str("role", sess.Role().String()).Logger()
				case errors.Is(err, domain.ErrUnauthenticated):
					ClearSessionCookie(c)
				default:
					return err
				}
			}

			c.SetRequest(req.WithContext(logger.WithContext(ctx, reqLog)))
			return next(c)
		}
	}
}

// sessionToken reads the bearer header first, then the session cookie.
func sessionToken(req *http.Request) (string, error) {
	if authHeader := req.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}
	if ck, err := req.Cookie(SessionCookie); err == nil {
		return ck.Value, nil
	}
	return "", nil
}

// SetSessionCookie writes the signed token as an HttpOnly session cookie.
func SetSessionCookie(c echo.Context, signed string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the browser.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
