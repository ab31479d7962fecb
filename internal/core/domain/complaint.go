package domain

import "time"

// ComplaintStatus is the lifecycle state reported by the grievance API.
type ComplaintStatus string

const (
	StatusPending       ComplaintStatus = "pending"
	StatusValidated     ComplaintStatus = "validated"
	StatusAssigned      ComplaintStatus = "assigned"
	StatusInProgress    ComplaintStatus = "in_progress"
	StatusSubmittedByCM ComplaintStatus = "submitted_by_cm"
	StatusVerifiedByJE  ComplaintStatus = "verified_by_je"
	StatusReviewedBySDO ComplaintStatus = "reviewed_by_sdo"
	StatusEscalated     ComplaintStatus = "escalated"
	StatusClosed        ComplaintStatus = "closed"
	StatusRejected      ComplaintStatus = "rejected"
)

// Open reports whether the complaint still awaits action.
func (s ComplaintStatus) Open() bool {
	return s != StatusClosed
}

// Priority of a complaint.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Location is a captured coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FileRef is an evidence or proof attachment: metadata plus a reference to
// retrieve the content.
type FileRef struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
}

// Citizen identifies the complainant.
type Citizen struct {
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email,omitempty"`
}

// Assignment is one entry of a complaint's assignment history.
type Assignment struct {
	Group          string     `json:"group,omitempty"`
	AssignedBy     string     `json:"assigned_by,omitempty"`
	WorkerID       string     `json:"worker_id,omitempty"`
	Remarks        string     `json:"remarks,omitempty"`
	Status         string     `json:"status"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	SLADeadline    *time.Time `json:"sla_deadline,omitempty"`
	Retries        int        `json:"retries"`
	ProofFiles     []FileRef  `json:"proof_files"`
	VerifiedBy     string     `json:"verified_by,omitempty"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	EscalateReason string     `json:"escalate_reason,omitempty"`
	FinalNote      string     `json:"final_note,omitempty"`
}

// Complaint is a transient copy of the grievance API's complaint record.
type Complaint struct {
	ID                string
	Group             string
	Subject           string
	Description       string
	Category          string
	Priority          Priority
	Citizen           Citizen
	Location          *Location
	Address           string
	Status            ComplaintStatus
	RejectedBy        Role
	UserID            string
	CreatedAt         time.Time
	EvidenceFiles     []FileRef
	Assignments       []Assignment
	CurrentAssignment *Assignment
}

// Current returns the active assignment: the server-reported one, else the
// most recent entry of the history.
func (c *Complaint) Current() *Assignment {
	if c.CurrentAssignment != nil {
		return c.CurrentAssignment
	}
	if n := len(c.Assignments); n > 0 {
		return &c.Assignments[n-1]
	}
	return nil
}
