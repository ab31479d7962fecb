package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/api/metrics"
	"github.com/grievance-portal/gateway/internal/api/pages"
	"github.com/grievance-portal/gateway/internal/core/domain"
)

// PageHandler runs the route guard for browser navigation under a mount
// prefix such as /app.
type PageHandler struct {
	table  *pages.Table
	prefix string
}

func NewPageHandler(table *pages.Table, prefix string) *PageHandler {
	return &PageHandler{table: table, prefix: strings.TrimSuffix(prefix, "/")}
}

type pageResponse struct {
	Name     string            `json:"name"`
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	Params   map[string]string `json:"params,omitempty"`
	LoggedIn bool              `json:"logged_in"`
	Role     *roleResponse     `json:"role,omitempty"`
}

// Resolve handles GET /app/*. It renders a page descriptor, or redirects to
// the login page (with the requested path in next) or the unauthorized page.
//
// @Summary      Resolve a browser page
// @Tags         pages
// @Produce      json
// @Param        path  path      string  true  "Page path"
// @Success      200   {object}  pageResponse
// @Success      302
// @Failure      404   {object}  pageResponse
// @Router       /app/{path} [get]
func (h *PageHandler) Resolve(c echo.Context) error {
	path := "/" + strings.TrimPrefix(c.Param("*"), "/")
	sess := domain.SessionFromContext(c.Request().Context())

	page, params, ok := h.table.Match(path)
	d := domain.Guard(sess, page.Requirement())
	metrics.GuardDecisionsTotal.WithLabelValues("page", d.String()).Inc()

	switch d {
	case domain.RedirectLogin:
		return c.Redirect(http.StatusFound, h.prefix+"/login?next="+url.QueryEscape(path))
	case domain.RedirectUnauthorized:
		return c.Redirect(http.StatusFound, h.prefix+"/unauthorized")
	}

	resp := pageResponse{
		Name:     page.Name,
		Path:     path,
		Title:    page.Title,
		Params:   params,
		LoggedIn: sess.LoggedIn(),
	}
	if role := sess.Role(); role != domain.RoleUnknown {
		r := toRoleResponse(role)
		resp.Role = &r
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}
	return c.JSON(status, resp)
}
