package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/api/metrics"
	"github.com/grievance-portal/gateway/internal/core/domain"
)

// RequireRoles gates an API route with the route guard. No roles means any
// authenticated session. A login decision becomes 401, an unauthorized one 403.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	req := domain.RequireAny(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := domain.Guard(domain.SessionFromContext(c.Request().Context()), req)
			metrics.GuardDecisionsTotal.WithLabelValues("api", d.String()).Inc()

			switch d {
			case domain.RedirectLogin:
				return domain.ErrUnauthenticated
			case domain.RedirectUnauthorized:
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
