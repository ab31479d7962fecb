package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/ports"
)

// WorkerHandler serves the worker roster used by the assignment control.
type WorkerHandler struct {
	service ports.WorkerService
}

func NewWorkerHandler(service ports.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: service}
}

// Roster handles GET /api/v1/workers. Busy workers are listed but disabled;
// default_id is the first idle worker.
//
// @Summary      Worker selection options
// @Tags         workers
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  rosterResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/workers [get]
func (h *WorkerHandler) Roster(c echo.Context) error {
	roster, err := h.service.Roster(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRosterResponse(roster))
}

// Create handles POST /api/v1/workers.
//
// @Summary      Add a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createWorkerRequest  true  "Worker"
// @Success      201   {object}  workerResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/workers [post]
func (h *WorkerHandler) Create(c echo.Context) error {
	var req createWorkerRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	w, err := h.service.Create(c.Request().Context(), req.FullName, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toWorkerResponse(*w))
}
