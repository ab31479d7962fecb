package handler

import (
	"time"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type sendOTPRequest struct {
	Phone string `json:"phone" validate:"required,numeric,min=10,max=15"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,numeric,min=10,max=15"`
	OTP   string `json:"otp"   validate:"required,numeric,min=4,max=8"`
}

type roleResponse struct {
	domain.RoleInfo
	Permissions []domain.Capability `json:"permissions"`
	Home        string              `json:"home"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	Home  string       `json:"home"`
	Role  roleResponse `json:"role"`
}

// --- Complaints ---

type locationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type fileRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileType string `json:"file_type"`
	FileURL  string `json:"file_url"`
}

type submitComplaintRequest struct {
	FullName      string           `json:"full_name"            validate:"required"`
	MobileNumber  string           `json:"mobile_number"        validate:"required,numeric,min=10,max=15"`
	Email         string           `json:"email"                validate:"omitempty,email"`
	Category      string           `json:"complaint_category"   validate:"required"`
	OtherCategory string           `json:"other_category"`
	Subject       string           `json:"complaint_subject"    validate:"max=200"`
	Description   string           `json:"detailed_description" validate:"max=5000"`
	Address       string           `json:"complete_address"     validate:"required"`
	Location      *locationRequest `json:"location"`
	EvidenceFiles []fileRequest    `json:"evidence_files"       validate:"dive"`
}

// assignRequest keeps the camelCase keys the browser sends; the snake_case
// spellings are accepted too and lose when both are present.
type assignRequest struct {
	WorkerID   string `json:"workerId"`
	Group      string `json:"group"`
	Remarks    string `json:"remarks"     validate:"max=1000"`
	SLAMinutes int    `json:"slaMinutes"  validate:"gte=0"`

	WorkerIDAlias   string `json:"worker_id"`
	SLAMinutesAlias int    `json:"sla_minutes" validate:"gte=0"`
}

type actionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject escalate"`
	Note   string `json:"note"   validate:"max=1000"`
}

type complaintResponse struct {
	ID                string                `json:"id"`
	Group             string                `json:"group,omitempty"`
	Subject           string                `json:"complaint_subject"`
	Description       string                `json:"detailed_description"`
	Category          string                `json:"complaint_category"`
	Priority          domain.Priority       `json:"priority"`
	Citizen           domain.Citizen        `json:"citizen"`
	Location          *domain.Location      `json:"location,omitempty"`
	Address           string                `json:"complete_address"`
	Status            string                `json:"status"`
	Stage             string                `json:"stage"`
	RejectedBy        string                `json:"rejected_by,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	EvidenceFiles     []domain.FileRef      `json:"evidence_files"`
	Assignments       []domain.Assignment   `json:"assignments"`
	CurrentAssignment *domain.Assignment    `json:"current_assignment,omitempty"`
	Workflow          []domain.WorkflowStep `json:"workflow,omitempty"`
	Actions           []domain.Action       `json:"actions,omitempty"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
	Other      string   `json:"other"`
}

// --- Workers ---

type createWorkerRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Role     string `json:"role"      validate:"max=60"`
}

type workerResponse struct {
	ID             string     `json:"id"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	ActiveTasks    int        `json:"active_tasks"`
	Selectable     bool       `json:"selectable"`
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type workerOptionResponse struct {
	Worker   workerResponse `json:"worker"`
	Label    string         `json:"label"`
	Disabled bool           `json:"disabled"`
}

type rosterResponse struct {
	Options   []workerOptionResponse `json:"options"`
	DefaultID string                 `json:"default_id,omitempty"`
}

// --- Users ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required"`
	Division string `json:"division"`
}

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=120"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"    validate:"omitempty,numeric,min=10,max=15"`
	Role     *string `json:"role"`
	Division *string `json:"division"`
	Status   *string `json:"status"   validate:"omitempty,oneof=Active Inactive"`
}

// --- Dashboard ---

type stageCountResponse struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

type dashboardResponse struct {
	Role        roleResponse         `json:"role"`
	Total       int                  `json:"total"`
	Open        int                  `json:"open"`
	AwaitingMe  int                  `json:"awaiting_me"`
	Stages      []stageCountResponse `json:"stages"`
	Workers     int                  `json:"workers,omitempty"`
	BusyWorkers int                  `json:"busy_workers,omitempty"`
	Users       int                  `json:"users,omitempty"`
}

// --- Audit ---

type auditResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}
