package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Grievance API stubs
// ---------------------------------------------------------------------------

type stubAuthAPI struct {
	loginFn     func(username, password string) (*domain.Credentials, error)
	sendOTPFn   func(phone string) error
	verifyOTPFn func(phone, otp string) (*domain.Credentials, error)
	meFn        func(ctx context.Context) (*domain.UserProfile, error)
}

func (a *stubAuthAPI) Login(_ context.Context, username, password string) (*domain.Credentials, error) {
	return a.loginFn(username, password)
}

func (a *stubAuthAPI) SendOTP(_ context.Context, phone string) error {
	if a.sendOTPFn == nil {
		return nil
	}
	return a.sendOTPFn(phone)
}

func (a *stubAuthAPI) VerifyOTP(_ context.Context, phone, otp string) (*domain.Credentials, error) {
	return a.verifyOTPFn(phone, otp)
}

func (a *stubAuthAPI) Me(ctx context.Context) (*domain.UserProfile, error) {
	if a.meFn == nil {
		return &domain.UserProfile{ID: "u1", Name: "Profile"}, nil
	}
	return a.meFn(ctx)
}

// stubComplaintAPI keeps complaints in memory and counts mutations.
type stubComplaintAPI struct {
	mu         sync.Mutex
	byID       map[string]*domain.Complaint
	created    []domain.ComplaintDraft
	assigned   []domain.AssignmentRequest
	acted      []domain.WorkflowCommand
	escalated  []string
	listCalls  int
	mutateErr  error
	onAssign   func(id string, req domain.AssignmentRequest)
	nextStatus domain.ComplaintStatus
}

func newStubComplaintAPI(cs ...domain.Complaint) *stubComplaintAPI {
	api := &stubComplaintAPI{byID: make(map[string]*domain.Complaint)}
	for i := range cs {
		c := cs[i]
		api.byID[c.ID] = &c
	}
	return api
}

func (a *stubComplaintAPI) List(_ context.Context) ([]domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listCalls++
	out := make([]domain.Complaint, 0, len(a.byID))
	for _, c := range a.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (a *stubComplaintAPI) Get(_ context.Context, id string) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (a *stubComplaintAPI) Create(_ context.Context, d domain.ComplaintDraft) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mutateErr != nil {
		return nil, a.mutateErr
	}
	a.created = append(a.created, d)
	c := &domain.Complaint{ID: "new-1", Category: d.Category, Status: domain.StatusPending, CreatedAt: time.Now()}
	a.byID[c.ID] = c
	clone := *c
	return &clone, nil
}

func (a *stubComplaintAPI) Assign(_ context.Context, id string, req domain.AssignmentRequest) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mutateErr != nil {
		return nil, a.mutateErr
	}
	a.assigned = append(a.assigned, req)
	c := a.byID[id]
	c.Status = domain.StatusAssigned
	c.Assignments = append(c.Assignments, domain.Assignment{Group: req.Group, WorkerID: req.WorkerID, Remarks: req.Remarks})
	if a.onAssign != nil {
		a.onAssign(id, req)
	}
	clone := *c
	return &clone, nil
}

func (a *stubComplaintAPI) Act(_ context.Context, id string, cmd domain.WorkflowCommand) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mutateErr != nil {
		return nil, a.mutateErr
	}
	a.acted = append(a.acted, cmd)
	c := a.byID[id]
	if a.nextStatus != "" {
		c.Status = a.nextStatus
	}
	clone := *c
	return &clone, nil
}

func (a *stubComplaintAPI) Escalate(_ context.Context, id, reason string) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mutateErr != nil {
		return nil, a.mutateErr
	}
	a.escalated = append(a.escalated, reason)
	c := a.byID[id]
	c.Status = domain.StatusEscalated
	clone := *c
	return &clone, nil
}

type stubWorkerAPI struct {
	mu        sync.Mutex
	workers   []domain.Worker
	listCalls int
	createErr error
}

func (a *stubWorkerAPI) List(_ context.Context) ([]domain.Worker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listCalls++
	out := make([]domain.Worker, len(a.workers))
	copy(out, a.workers)
	return out, nil
}

func (a *stubWorkerAPI) Create(_ context.Context, fullName, role string) (*domain.Worker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.createErr != nil {
		return nil, a.createErr
	}
	w := domain.Worker{ID: "w-" + fullName, FullName: fullName, Role: role, Available: true}
	a.workers = append(a.workers, w)
	return &w, nil
}

func (a *stubWorkerAPI) busy(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.workers {
		if a.workers[i].ID == id {
			a.workers[i].ActiveTasks++
			a.workers[i].Available = false
		}
	}
}

type stubUserAPI struct {
	users     []domain.UserProfile
	created   []domain.NewStaffUser
	updated   []domain.UserPatch
	deleted   []string
	listCalls int
	err       error
}

func (a *stubUserAPI) List(_ context.Context) ([]domain.UserProfile, error) {
	a.listCalls++
	return a.users, a.err
}

func (a *stubUserAPI) Create(_ context.Context, u domain.NewStaffUser) (*domain.UserProfile, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.created = append(a.created, u)
	return &domain.UserProfile{ID: "u-new", Name: u.Name, Role: string(u.Role)}, nil
}

func (a *stubUserAPI) Update(_ context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.updated = append(a.updated, p)
	return &domain.UserProfile{ID: id}, nil
}

func (a *stubUserAPI) Delete(_ context.Context, id string) error {
	if a.err != nil {
		return a.err
	}
	a.deleted = append(a.deleted, id)
	return nil
}

// ---------------------------------------------------------------------------
// Infrastructure stubs
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string, _ time.Duration) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type stubGuard struct {
	seen     map[string]bool
	released []string
}

func newStubGuard() *stubGuard { return &stubGuard{seen: make(map[string]bool)} }

func (g *stubGuard) Claim(_ context.Context, key string) (bool, error) {
	if g.seen[key] {
		return false, nil
	}
	g.seen[key] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, key string) error {
	delete(g.seen, key)
	g.released = append(g.released, key)
	return nil
}

// mapCache is a QueryCache without expiry.
type mapCache struct {
	mu          sync.Mutex
	entries     map[string]any
	invalidated []string
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string]any)} }

func (c *mapCache) Fetch(ctx context.Context, sessionID, resource string, load func(context.Context) (any, error)) (any, error) {
	key := sessionID + "/" + resource
	c.mu.Lock()
	v, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v, nil
}

func (c *mapCache) Invalidate(sessionID, resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := sessionID + "/" + resource
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
}

type stubRecorder struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *stubRecorder) Record(e domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *stubRecorder) last() domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return domain.AuditEntry{}
	}
	return r.entries[len(r.entries)-1]
}

// asRole returns a context carrying a logged-in session for role.
func asRole(role domain.Role) context.Context {
	return domain.ContextWithSession(context.Background(), &domain.Session{
		ID:        "sess-" + string(role),
		Token:     "upstream-token",
		RoleValue: role,
	})
}
