package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// UserHandler manages staff accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/v1/users/me.
//
// @Summary      Current profile
// @Tags         users
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	p, err := h.service.Me(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /api/v1/users.
//
// @Summary      List staff accounts
// @Tags         users
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   domain.UserProfile
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.UserProfile{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createUserRequest  true  "Account"
// @Success      201   {object}  domain.UserProfile
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), domain.NewStaffUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.ParseRole(req.Role),
		Division: req.Division,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/users/:id.
//
// @Summary      Update a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Changed fields"
// @Success      200   {object}  domain.UserProfile
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/users/:id.
//
// @Summary      Delete a staff account
// @Tags         users
// @Security     SessionCookie
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
