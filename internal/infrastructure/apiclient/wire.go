package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// wireTime accepts the timestamp layouts the grievance API emits, with or
// without a zone. Zone-less values are UTC.
type wireTime struct{ time.Time }

var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range wireLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t *wireTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

type tokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

type userDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Division string `json:"division"`
	Status   string `json:"status"`
}

func (u userDTO) toDomain() domain.UserProfile {
	return domain.UserProfile(u)
}

type fileDTO struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
}

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type assignmentDTO struct {
	Group          string    `json:"group"`
	AssignedBy     string    `json:"assigned_by"`
	WorkerID       string    `json:"worker_id"`
	Remarks        string    `json:"remarks"`
	Status         string    `json:"status"`
	AssignedAt     *wireTime `json:"assigned_at"`
	SLADeadline    *wireTime `json:"sla_deadline"`
	Retries        int       `json:"retries"`
	ProofFiles     []fileDTO `json:"proof_files"`
	VerifiedBy     string    `json:"verified_by"`
	SubmittedAt    *wireTime `json:"submitted_at"`
	VerifiedAt     *wireTime `json:"verified_at"`
	EscalateReason string    `json:"escalate_reason"`
	FinalNote      string    `json:"final_note"`
}

func (a assignmentDTO) toDomain() domain.Assignment {
	return domain.Assignment{
		Group:          a.Group,
		AssignedBy:     a.AssignedBy,
		WorkerID:       a.WorkerID,
		Remarks:        a.Remarks,
		Status:         a.Status,
		AssignedAt:     a.AssignedAt.ptr(),
		SLADeadline:    a.SLADeadline.ptr(),
		Retries:        a.Retries,
		ProofFiles:     filesToDomain(a.ProofFiles),
		VerifiedBy:     a.VerifiedBy,
		SubmittedAt:    a.SubmittedAt.ptr(),
		VerifiedAt:     a.VerifiedAt.ptr(),
		EscalateReason: a.EscalateReason,
		FinalNote:      a.FinalNote,
	}
}

type complaintDTO struct {
	ID                  string          `json:"id"`
	Group               string          `json:"group"`
	FullName            string          `json:"full_name"`
	MobileNumber        string          `json:"mobile_number"`
	Email               string          `json:"email"`
	ComplaintCategory   string          `json:"complaint_category"`
	ComplaintSubject    string          `json:"complaint_subject"`
	DetailedDescription string          `json:"detailed_description"`
	Priority            string          `json:"priority"`
	Location            *locationDTO    `json:"location"`
	CompleteAddress     string          `json:"complete_address"`
	EvidenceFiles       []fileDTO       `json:"evidence_files"`
	Status              string          `json:"status"`
	RejectedBy          string          `json:"rejected_by"`
	UserID              string          `json:"user_id"`
	CreatedAt           wireTime        `json:"created_at"`
	Assignments         []assignmentDTO `json:"assignments"`
	CurrentAssignment   *assignmentDTO  `json:"current_assignment"`
}

func (c complaintDTO) toDomain() domain.Complaint {
	out := domain.Complaint{
		ID:          c.ID,
		Group:       c.Group,
		Subject:     c.ComplaintSubject,
		Description: c.DetailedDescription,
		Category:    c.ComplaintCategory,
		Priority:    domain.Priority(c.Priority),
		Citizen: domain.Citizen{
			FullName:     c.FullName,
			MobileNumber: c.MobileNumber,
			Email:        c.Email,
		},
		Address:       c.CompleteAddress,
		Status:        domain.ComplaintStatus(c.Status),
		RejectedBy:    domain.ParseRole(c.RejectedBy),
		UserID:        c.UserID,
		CreatedAt:     c.CreatedAt.Time,
		EvidenceFiles: filesToDomain(c.EvidenceFiles),
		Assignments:   make([]domain.Assignment, 0, len(c.Assignments)),
	}
	if out.Priority == "" {
		out.Priority = domain.PriorityMedium
	}
	if c.Location != nil {
		out.Location = &domain.Location{Lat: c.Location.Lat, Lng: c.Location.Lng}
	}
	for _, a := range c.Assignments {
		out.Assignments = append(out.Assignments, a.toDomain())
	}
	if c.CurrentAssignment != nil {
		cur := c.CurrentAssignment.toDomain()
		out.CurrentAssignment = &cur
	}
	return out
}

type complaintCreateDTO struct {
	FullName            string       `json:"full_name"`
	MobileNumber        string       `json:"mobile_number"`
	Email               string       `json:"email,omitempty"`
	ComplaintCategory   string       `json:"complaint_category"`
	ComplaintSubject    string       `json:"complaint_subject"`
	DetailedDescription string       `json:"detailed_description"`
	CompleteAddress     string       `json:"complete_address"`
	Location            *locationDTO `json:"location"`
	EvidenceFiles       []fileDTO    `json:"evidence_files"`
}

func createFromDraft(d domain.ComplaintDraft) complaintCreateDTO {
	out := complaintCreateDTO{
		FullName:            d.Citizen.FullName,
		MobileNumber:        d.Citizen.MobileNumber,
		Email:               d.Citizen.Email,
		ComplaintCategory:   d.Category,
		ComplaintSubject:    d.Subject,
		DetailedDescription: d.Description,
		CompleteAddress:     d.Address,
		EvidenceFiles:       make([]fileDTO, 0, len(d.EvidenceFiles)),
	}
	if d.Location != nil {
		out.Location = &locationDTO{Lat: d.Location.Lat, Lng: d.Location.Lng}
	}
	for _, f := range d.EvidenceFiles {
		out.EvidenceFiles = append(out.EvidenceFiles, fileDTO(f))
	}
	return out
}

type assignDTO struct {
	Group        string `json:"group"`
	WorkerUserID string `json:"worker_user_id"`
	Remarks      string `json:"remarks"`
	SLAMinutes   int    `json:"sla_minutes"`
}

type assignResponseDTO struct {
	Message   string       `json:"message"`
	Complaint complaintDTO `json:"complaint"`
}

type verdictDTO struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

type noteDTO struct {
	Note string `json:"note,omitempty"`
}

type escalateDTO struct {
	Reason string `json:"reason"`
}

type workerDTO struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	Available      bool      `json:"available"`
	ActiveTasks    int       `json:"active_tasks"`
	LastAssignedAt *wireTime `json:"last_assigned_at"`
	CreatedAt      wireTime  `json:"created_at"`
}

func (w workerDTO) toDomain() domain.Worker {
	return domain.Worker{
		ID:             w.ID,
		FullName:       w.FullName,
		Role:           w.Role,
		ActiveTasks:    w.ActiveTasks,
		Available:      w.Available,
		LastAssignedAt: w.LastAssignedAt.ptr(),
		CreatedAt:      w.CreatedAt.Time,
	}
}

type workerCreateDTO struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type userCreateDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Division string `json:"division,omitempty"`
}

type userUpdateDTO struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Division *string `json:"division,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func filesToDomain(in []fileDTO) []domain.FileRef {
	out := make([]domain.FileRef, 0, len(in))
	for _, f := range in {
		out = append(out, domain.FileRef(f))
	}
	return out
}
