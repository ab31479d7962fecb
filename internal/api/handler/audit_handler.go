package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/ports"
)

// AuditHandler exposes the gateway's own record of forwarded mutations.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// Complaint handles GET /api/v1/complaints/:id/audit, newest first.
//
// @Summary      Gateway audit trail of a complaint
// @Tags         audit
// @Produce      json
// @Security     SessionCookie
// @Param        id     path      string  true   "Complaint id"
// @Param        limit  query     int     false  "Maximum entries (default 50)"
// @Success      200    {array}   auditResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/v1/complaints/{id}/audit [get]
func (h *AuditHandler) Complaint(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	entries, err := h.repo.ListByResource(c.Request().Context(), ports.ResourceComplaints, c.Param("id"), limit)
	if err != nil {
		return err
	}

	resp := make([]auditResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toAuditResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}
