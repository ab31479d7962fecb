package ports

import (
	"context"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// The interfaces below describe the external grievance API. Every call
// authenticates with the session carried on ctx, when there is one.

// AuthAPI issues upstream access tokens.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.Credentials, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (*domain.Credentials, error)
	Me(ctx context.Context) (*domain.UserProfile, error)
}

// ComplaintAPI reads and mutates complaints.
type ComplaintAPI interface {
	List(ctx context.Context) ([]domain.Complaint, error)
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	Create(ctx context.Context, draft domain.ComplaintDraft) (*domain.Complaint, error)
	Assign(ctx context.Context, id string, req domain.AssignmentRequest) (*domain.Complaint, error)
	Act(ctx context.Context, id string, cmd domain.WorkflowCommand) (*domain.Complaint, error)
	Escalate(ctx context.Context, id, reason string) (*domain.Complaint, error)
}

// WorkerAPI manages the field worker roster.
type WorkerAPI interface {
	List(ctx context.Context) ([]domain.Worker, error)
	Create(ctx context.Context, fullName, role string) (*domain.Worker, error)
}

// UserAPI manages staff accounts.
type UserAPI interface {
	List(ctx context.Context) ([]domain.UserProfile, error)
	Create(ctx context.Context, u domain.NewStaffUser) (*domain.UserProfile, error)
	Update(ctx context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error)
	Delete(ctx context.Context, id string) error
}

// Probe checks that the grievance API answers.
type Probe interface {
	Ping(ctx context.Context) error
}
