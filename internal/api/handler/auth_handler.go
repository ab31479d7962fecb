package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/api/middleware"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// SessionPurger drops everything cached for a session.
type SessionPurger interface {
	Purge(sessionID string)
}

type AuthHandler struct {
	authService  ports.AuthService
	purger       SessionPurger
	cookieSecure bool
}

func NewAuthHandler(authService ports.AuthService, purger SessionPurger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, purger: purger, cookieSecure: cookieSecure}
}

// Login authenticates staff against the grievance API and starts a session.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return h.started(c, res)
}

// SendOTP asks the grievance API to text a one-time code to a citizen.
//
// @Summary      Send citizen OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      sendOTPRequest  true  "Phone number"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	if err := h.authService.SendOTP(c.Request().Context(), req.Phone); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: "otp sent"})
}

// VerifyOTP exchanges a one-time code for a citizen session.
//
// @Summary      Verify citizen OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Phone number and code"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	res, err := h.authService.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		return err
	}
	return h.started(c, res)
}

// Session reports the role of the current session.
//
// @Summary      Current session role
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	s, err := actingSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(s.Role()))
}

// Logout ends the session. It succeeds for anonymous callers too.
//
// @Summary      Logout
// @Tags         auth
// @Security     SessionCookie
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if s, err := actingSession(c); err == nil {
		if err := h.authService.Clear(ctx, s.ID); err != nil {
			return err
		}
		h.purger.Purge(s.ID)
		zerolog.Ctx(ctx).Info().Msg("session ended")
	}
	middleware.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// started replaces any session the browser already held with res.
func (h *AuthHandler) started(c echo.Context, res *ports.LoginResult) error {
	ctx := c.Request().Context()
	if prev, err := actingSession(c); err == nil && (res.Session == nil || prev.ID != res.Session.ID) {
		if err := h.authService.Clear(ctx, prev.ID); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("previous_session", prev.ID).Msg("previous session not cleared")
		}
		h.purger.Purge(prev.ID)
	}
	middleware.SetSessionCookie(c, res.Token, h.cookieSecure)
	return c.JSON(http.StatusOK, toSessionResponse(res))
}
