package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/api/middleware"
	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

func loginResult(role domain.Role) *ports.LoginResult {
	return &ports.LoginResult{
		Session: &domain.Session{ID: "sess-1", Token: "upstream", RoleValue: role},
		Token:   "signed-token",
		Home:    role.HomePage(),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "cm.user" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return loginResult(domain.RoleCM), nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, true)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", `{"username":"cm.user","password":"secret"}`, nil)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["home"] != "/complaint/manager" || resp["token"] != "signed-token" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	role, ok := resp["role"].(map[string]any)
	if !ok || role["code"] != "CM" || role["label"] != "Complaint Manager" {
		t.Fatalf("unexpected role: %+v", resp["role"])
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=signed-token") || !strings.Contains(cookie, "HttpOnly") || !strings.Contains(cookie, "Secure") {
		t.Fatalf("unexpected cookie: %q", cookie)
	}
	if strings.Contains(cookie, "Expires") || strings.Contains(cookie, "Max-Age") {
		t.Fatalf("session cookie must not carry an expiry: %q", cookie)
	}
}

func TestAuthHandler_Login_Form(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "je.user" {
				t.Fatalf("unexpected username %q", username)
			}
			return loginResult(domain.RoleJE), nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	form := url.Values{"username": {"je.user"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", "not-json", nil)
	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", `{"username":"bob"}`, nil)
	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password is required") {
		t.Fatalf("expected field message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", `{"username":"bob","password":"wrong"}`, nil)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Header().Get("Set-Cookie") != "" {
		t.Fatalf("no cookie expected on failure")
	}
}

func TestAuthHandler_SendOTP(t *testing.T) {
	e := newEcho()
	var got string
	stub := &stubAuthService{
		sendOTPFn: func(ctx context.Context, phone string) error {
			got = phone
			return nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/otp/send", `{"phone":"9876543210"}`, nil)
	if err := handler.SendOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted || got != "9876543210" {
		t.Fatalf("expected 202 for 9876543210, got %d %q", rec.Code, got)
	}
}

func TestAuthHandler_SendOTP_ShortPhone(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/otp/send", `{"phone":"12345"}`, nil)
	if err := handler.SendOTP(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_VerifyOTP_CitizenSession(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		verifyOTPFn: func(ctx context.Context, phone, otp string) (*ports.LoginResult, error) {
			if otp != "123456" {
				t.Fatalf("unexpected otp %q", otp)
			}
			return loginResult(domain.RoleCitizen), nil
		},
	}
	handler := NewAuthHandler(stub, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/otp/verify", `{"phone":"9876543210","otp":"123456"}`, nil)
	if err := handler.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"home":"/dashboard"`) {
		t.Fatalf("expected citizen home, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ReplacesPreviousSession(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return loginResult(domain.RoleCM), nil
		},
	}
	purger := &stubPurger{}
	handler := NewAuthHandler(auth, purger, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/login", `{"username":"cm.user","password":"secret"}`, sessionAs(domain.RoleJE))
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(auth.cleared) != 1 || auth.cleared[0] != "sess-JE" {
		t.Fatalf("expected the previous session cleared, got %v", auth.cleared)
	}
	if len(purger.purged) != 1 || purger.purged[0] != "sess-JE" {
		t.Fatalf("expected the previous cache purged, got %v", purger.purged)
	}

	auth.cleared, purger.purged = nil, nil
	c, _ = jsonContext(e, http.MethodPost, "/auth/login", `{"username":"cm.user","password":"secret"}`, nil)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(auth.cleared) != 0 || len(purger.purged) != 0 {
		t.Fatalf("anonymous login has nothing to clear, got %v %v", auth.cleared, purger.purged)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodGet, "/auth/session", "", sessionAs("sdo"))
	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"code":"SDO"`) {
		t.Fatalf("expected SDO role, got %s", rec.Body.String())
	}

	c, _ = jsonContext(e, http.MethodGet, "/auth/session", "", nil)
	if err := handler.Session(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{}
	purger := &stubPurger{}
	handler := NewAuthHandler(auth, purger, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/logout", "", sessionAs(domain.RoleGM))
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(auth.cleared) != 1 || auth.cleared[0] != "sess-GM" {
		t.Fatalf("expected session cleared, got %v", auth.cleared)
	}
	if len(purger.purged) != 1 || purger.purged[0] != "sess-GM" {
		t.Fatalf("expected cache purged, got %v", purger.purged)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected cookie cleared")
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{}
	handler := NewAuthHandler(auth, &stubPurger{}, false)

	c, rec := jsonContext(e, http.MethodPost, "/auth/logout", "", nil)
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || len(auth.cleared) != 0 {
		t.Fatalf("expected 204 and nothing cleared, got %d %v", rec.Code, auth.cleared)
	}
}
