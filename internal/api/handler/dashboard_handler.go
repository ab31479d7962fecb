package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// DashboardHandler serves landing page summaries and the role registry.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard.
//
// @Summary      Dashboard summary for the acting role
// @Tags         dashboard
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	d, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(d))
}

// Roles handles GET /api/v1/roles.
//
// @Summary      Role registry
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  roleResponse
// @Router       /api/v1/roles [get]
func (h *DashboardHandler) Roles(c echo.Context) error {
	roles := domain.Roles()
	resp := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, toRoleResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}
