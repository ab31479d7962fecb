package ports

import (
	"context"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// LoginResult is a started session plus the signed token the browser keeps.
type LoginResult struct {
	Session *domain.Session
	Token   string
	Home    string
}

// AuthService owns the browser session lifecycle.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (*LoginResult, error)
	// Resolve maps a signed browser token back to its live session.
	Resolve(ctx context.Context, signed string) (*domain.Session, error)
	Clear(ctx context.Context, id string) error
}

// ComplaintView is a complaint as rendered for the acting role.
type ComplaintView struct {
	Complaint domain.Complaint
	Stage     string
	Workflow  []domain.WorkflowStep
	Actions   []domain.Action
}

// ComplaintService covers submission, listing and the approval workflow.
type ComplaintService interface {
	Submit(ctx context.Context, draft domain.ComplaintDraft, idempotencyKey string) (*domain.Complaint, error)
	List(ctx context.Context) ([]domain.Complaint, error)
	Get(ctx context.Context, id string) (*ComplaintView, error)
	Assign(ctx context.Context, id string, req domain.AssignmentRequest) (*ComplaintView, error)
	Act(ctx context.Context, id string, cmd domain.WorkflowCommand) (*ComplaintView, error)
	Categories() []string
}

// WorkerRoster is the worker selection control for an assignment.
type WorkerRoster struct {
	Options   []domain.WorkerOption
	DefaultID string
}

// WorkerService reads and extends the worker roster.
type WorkerService interface {
	Roster(ctx context.Context) (*WorkerRoster, error)
	Create(ctx context.Context, fullName, role string) (*domain.Worker, error)
}

// UserService manages staff accounts.
type UserService interface {
	Me(ctx context.Context) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
	Create(ctx context.Context, u domain.NewStaffUser) (*domain.UserProfile, error)
	Update(ctx context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error)
	Delete(ctx context.Context, id string) error
}

// StageCount is the number of complaints in one lifecycle stage.
type StageCount struct {
	Stage string
	Count int
}

// Dashboard is the summary shown on a role's landing page.
type Dashboard struct {
	Role        domain.RoleInfo
	Permissions []domain.Capability
	Home        string
	Total       int
	Open        int
	AwaitingMe  int
	Stages      []StageCount
	Workers     int
	BusyWorkers int
	Users       int
}

// DashboardService assembles dashboard view models.
type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
}
