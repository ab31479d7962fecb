package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sess != nil {
		req = req.WithContext(domain.ContextWithSession(req.Context(), sess))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionAs(role domain.Role) *domain.Session {
	return &domain.Session{ID: "sess-" + string(role), Token: "upstream-token", RoleValue: role}
}

// --- auth ---

type stubAuthService struct {
	loginFn     func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	sendOTPFn   func(ctx context.Context, phone string) error
	verifyOTPFn func(ctx context.Context, phone, otp string) (*ports.LoginResult, error)
	cleared     []string
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) SendOTP(ctx context.Context, phone string) error {
	return s.sendOTPFn(ctx, phone)
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, phone, otp string) (*ports.LoginResult, error) {
	return s.verifyOTPFn(ctx, phone, otp)
}

func (s *stubAuthService) Resolve(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuthService) Clear(_ context.Context, id string) error {
	s.cleared = append(s.cleared, id)
	return nil
}

type stubPurger struct {
	purged []string
}

func (p *stubPurger) Purge(id string) { p.purged = append(p.purged, id) }

// --- complaints ---

type stubComplaintService struct {
	submitFn func(ctx context.Context, d domain.ComplaintDraft, key string) (*domain.Complaint, error)
	listFn   func(ctx context.Context) ([]domain.Complaint, error)
	getFn    func(ctx context.Context, id string) (*ports.ComplaintView, error)
	assignFn func(ctx context.Context, id string, req domain.AssignmentRequest) (*ports.ComplaintView, error)
	actFn    func(ctx context.Context, id string, cmd domain.WorkflowCommand) (*ports.ComplaintView, error)
}

func (s *stubComplaintService) Submit(ctx context.Context, d domain.ComplaintDraft, key string) (*domain.Complaint, error) {
	return s.submitFn(ctx, d, key)
}

func (s *stubComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.listFn(ctx)
}

func (s *stubComplaintService) Get(ctx context.Context, id string) (*ports.ComplaintView, error) {
	return s.getFn(ctx, id)
}

func (s *stubComplaintService) Assign(ctx context.Context, id string, req domain.AssignmentRequest) (*ports.ComplaintView, error) {
	return s.assignFn(ctx, id, req)
}

func (s *stubComplaintService) Act(ctx context.Context, id string, cmd domain.WorkflowCommand) (*ports.ComplaintView, error) {
	return s.actFn(ctx, id, cmd)
}

func (s *stubComplaintService) Categories() []string { return domain.ComplaintCategories }

func viewOf(c domain.Complaint, actor domain.Role) *ports.ComplaintView {
	return &ports.ComplaintView{
		Complaint: c,
		Stage:     domain.StageLabel(c.Status),
		Workflow:  domain.BuildWorkflow(&c),
		Actions:   domain.AvailableActions(actor, &c),
	}
}

// --- workers ---

type stubWorkerService struct {
	roster  *ports.WorkerRoster
	created []string
}

func (s *stubWorkerService) Roster(context.Context) (*ports.WorkerRoster, error) {
	return s.roster, nil
}

func (s *stubWorkerService) Create(_ context.Context, fullName, role string) (*domain.Worker, error) {
	s.created = append(s.created, fullName)
	return &domain.Worker{ID: "w-new", FullName: fullName, Role: role}, nil
}

// --- users ---

type stubUserService struct {
	patch   domain.UserPatch
	created domain.NewStaffUser
	err     error
}

func (s *stubUserService) Me(context.Context) (*domain.UserProfile, error) {
	return &domain.UserProfile{ID: "u1", Name: "Asha", Role: "GM"}, s.err
}

func (s *stubUserService) List(context.Context) ([]domain.UserProfile, error) {
	return nil, s.err
}

func (s *stubUserService) Create(_ context.Context, u domain.NewStaffUser) (*domain.UserProfile, error) {
	s.created = u
	if s.err != nil {
		return nil, s.err
	}
	return &domain.UserProfile{ID: "u2", Name: u.Name, Email: u.Email, Role: string(u.Role)}, nil
}

func (s *stubUserService) Update(_ context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error) {
	s.patch = p
	if s.err != nil {
		return nil, s.err
	}
	return &domain.UserProfile{ID: id}, nil
}

func (s *stubUserService) Delete(context.Context, string) error { return s.err }

// --- audit ---

type stubAuditRepo struct {
	entries []domain.AuditEntry
	limit   int
}

func (r *stubAuditRepo) Insert(context.Context, *domain.AuditEntry) error { return nil }

func (r *stubAuditRepo) ListByResource(_ context.Context, resource, id string, limit int) ([]domain.AuditEntry, error) {
	r.limit = limit
	var out []domain.AuditEntry
	for _, e := range r.entries {
		if e.Resource == resource && e.ResourceID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
