package handler

import (
	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// --- Request → domain ---

func toDraft(req submitComplaintRequest) domain.ComplaintDraft {
	d := domain.ComplaintDraft{
		Citizen: domain.Citizen{
			FullName:     req.FullName,
			MobileNumber: req.MobileNumber,
			Email:        req.Email,
		},
		Category:      req.Category,
		OtherCategory: req.OtherCategory,
		Subject:       req.Subject,
		Description:   req.Description,
		Address:       req.Address,
		EvidenceFiles: make([]domain.FileRef, 0, len(req.EvidenceFiles)),
	}
	if req.Location != nil {
		d.Location = &domain.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	for _, f := range req.EvidenceFiles {
		d.EvidenceFiles = append(d.EvidenceFiles, domain.FileRef(f))
	}
	return d
}

func toAssignment(req assignRequest) domain.AssignmentRequest {
	out := domain.AssignmentRequest{
		Group:      req.Group,
		WorkerID:   req.WorkerID,
		Remarks:    req.Remarks,
		SLAMinutes: req.SLAMinutes,
	}
	if out.WorkerID == "" {
		out.WorkerID = req.WorkerIDAlias
	}
	if out.SLAMinutes == 0 {
		out.SLAMinutes = req.SLAMinutesAlias
	}
	return out
}

func toPatch(req updateUserRequest) domain.UserPatch {
	p := domain.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Division: req.Division,
		Status:   req.Status,
	}
	if req.Role != nil {
		r := domain.ParseRole(*req.Role)
		p.Role = &r
	}
	return p
}

// --- Domain → response ---

func toRoleResponse(r domain.Role) roleResponse {
	return roleResponse{
		RoleInfo:    r.Info(),
		Permissions: r.Permissions(),
		Home:        r.HomePage(),
	}
}

func toSessionResponse(res *ports.LoginResult) sessionResponse {
	return sessionResponse{
		Token: res.Token,
		Home:  res.Home,
		Role:  toRoleResponse(res.Session.Role()),
	}
}

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	resp := complaintResponse{
		ID:                c.ID,
		Group:             c.Group,
		Subject:           c.Subject,
		Description:       c.Description,
		Category:          c.Category,
		Priority:          c.Priority,
		Citizen:           c.Citizen,
		Location:          c.Location,
		Address:           c.Address,
		Status:            string(c.Status),
		Stage:             domain.StageLabel(c.Status),
		CreatedAt:         c.CreatedAt,
		EvidenceFiles:     c.EvidenceFiles,
		Assignments:       c.Assignments,
		CurrentAssignment: c.CurrentAssignment,
	}
	if c.Status == domain.StatusRejected && c.RejectedBy != domain.RoleUnknown {
		resp.RejectedBy = string(c.RejectedBy)
	}
	if resp.EvidenceFiles == nil {
		resp.EvidenceFiles = []domain.FileRef{}
	}
	if resp.Assignments == nil {
		resp.Assignments = []domain.Assignment{}
	}
	return resp
}

func toViewResponse(v *ports.ComplaintView) complaintResponse {
	resp := toComplaintResponse(&v.Complaint)
	resp.Stage = v.Stage
	resp.Workflow = v.Workflow
	resp.Actions = v.Actions
	return resp
}

func toWorkerResponse(w domain.Worker) workerResponse {
	return workerResponse{
		ID:             w.ID,
		FullName:       w.FullName,
		Role:           w.Role,
		ActiveTasks:    w.ActiveTasks,
		Selectable:     w.Selectable(),
		LastAssignedAt: w.LastAssignedAt,
		CreatedAt:      w.CreatedAt,
	}
}

func toRosterResponse(r *ports.WorkerRoster) rosterResponse {
	resp := rosterResponse{
		Options:   make([]workerOptionResponse, 0, len(r.Options)),
		DefaultID: r.DefaultID,
	}
	for _, o := range r.Options {
		resp.Options = append(resp.Options, workerOptionResponse{
			Worker:   toWorkerResponse(o.Worker),
			Label:    o.Label,
			Disabled: o.Disabled,
		})
	}
	return resp
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Role: roleResponse{
			RoleInfo:    d.Role,
			Permissions: d.Permissions,
			Home:        d.Home,
		},
		Total:       d.Total,
		Open:        d.Open,
		AwaitingMe:  d.AwaitingMe,
		Stages:      make([]stageCountResponse, 0, len(d.Stages)),
		Workers:     d.Workers,
		BusyWorkers: d.BusyWorkers,
		Users:       d.Users,
	}
	for _, s := range d.Stages {
		resp.Stages = append(resp.Stages, stageCountResponse(s))
	}
	return resp
}

func toAuditResponse(e domain.AuditEntry) auditResponse {
	resp := auditResponse{
		ID:         e.ID,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		SessionID:  e.SessionID,
		Outcome:    string(e.Outcome),
		Error:      e.Error,
		At:         e.At,
	}
	if e.Role != domain.RoleUnknown {
		resp.Role = string(e.Role)
	}
	return resp
}
