package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// Complaints wraps the /complaint endpoints.
type Complaints struct{ c *Client }

func NewComplaints(c *Client) *Complaints { return &Complaints{c: c} }

func complaintPath(id, suffix string) string {
	return "/complaint/" + url.PathEscape(id) + suffix
}

func (a *Complaints) List(ctx context.Context) ([]domain.Complaint, error) {
	var out []complaintDTO
	if err := a.c.Get(ctx, "/complaint/", &out); err != nil {
		return nil, err
	}
	cs := make([]domain.Complaint, 0, len(out))
	for _, c := range out {
		cs = append(cs, c.toDomain())
	}
	return cs, nil
}

func (a *Complaints) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	var out complaintDTO
	if err := a.c.Get(ctx, complaintPath(id, ""), &out); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

// Create submits a complaint with its evidence references in one request.
func (a *Complaints) Create(ctx context.Context, d domain.ComplaintDraft) (*domain.Complaint, error) {
	var out complaintDTO
	if err := a.c.PostJSON(ctx, "/complaint/", createFromDraft(d), &out); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

func (a *Complaints) Assign(ctx context.Context, id string, req domain.AssignmentRequest) (*domain.Complaint, error) {
	in := assignDTO{
		Group:        req.Group,
		WorkerUserID: req.WorkerID,
		Remarks:      req.Remarks,
		SLAMinutes:   req.SLAMinutes,
	}
	var out assignResponseDTO
	if err := a.c.PostJSON(ctx, complaintPath(id, "/assign"), in, &out); err != nil {
		return nil, err
	}
	c := out.Complaint.toDomain()
	return &c, nil
}

// Act routes a stage action to the endpoint owned by the acting stage.
func (a *Complaints) Act(ctx context.Context, id string, cmd domain.WorkflowCommand) (*domain.Complaint, error) {
	var out complaintDTO
	var err error
	switch {
	case cmd.Action == domain.ActionSubmitProof:
		err = a.c.PostFiles(ctx, complaintPath(id, "/je-submit-proof"), "files", cmd.Uploads, &out)
	case cmd.Stage == domain.RoleJE:
		err = a.c.PostJSON(ctx, complaintPath(id, "/verify"), verdictDTO{Action: string(cmd.Action), Note: cmd.Note}, &out)
	case cmd.Stage == domain.RoleSDO:
		err = a.c.PostJSON(ctx, complaintPath(id, "/review"), verdictDTO{Action: string(cmd.Action), Note: cmd.Note}, &out)
	case cmd.Stage == domain.RoleGM && cmd.Action == domain.ActionApprove:
		err = a.c.PostJSON(ctx, complaintPath(id, "/manager-approve"), noteDTO{Note: cmd.Note}, &out)
	default:
		return nil, fmt.Errorf("%s at stage %s: %w", cmd.Action, cmd.Stage, domain.ErrInvalidAction)
	}
	if err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

func (a *Complaints) Escalate(ctx context.Context, id, reason string) (*domain.Complaint, error) {
	var out complaintDTO
	if err := a.c.PostJSON(ctx, complaintPath(id, "/escalate"), escalateDTO{Reason: reason}, &out); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}
