package domain

import "strings"

// CategoryOther is the category that unlocks the free-text override.
const CategoryOther = "Other"

// ComplaintCategories are the categories offered by the submission form.
var ComplaintCategories = []string{
	"Complaint Faulty Meter",
	"Complaint Unauthorised Meter",
	"Complaint For Water Pressure",
	"Complaint for Quality of the Waters",
	CategoryOther,
}

// ComplaintDraft is a citizen submission before it reaches the grievance API.
type ComplaintDraft struct {
	Citizen       Citizen
	Category      string
	OtherCategory string
	Subject       string
	Description   string
	Address       string
	Location      *Location
	EvidenceFiles []FileRef
}

// ResolveCategory returns the category to submit: the free-text override
// when "Other" is chosen (any case), otherwise the chosen category.
func (d ComplaintDraft) ResolveCategory() (string, error) {
	cat := strings.TrimSpace(d.Category)
	if strings.EqualFold(cat, CategoryOther) {
		cat = strings.TrimSpace(d.OtherCategory)
	}
	if cat == "" {
		return "", ErrCategoryRequired
	}
	return cat, nil
}

// Ready checks the preconditions that must hold before anything is sent.
// It returns the draft with its category resolved.
func (d ComplaintDraft) Ready() (ComplaintDraft, error) {
	if d.Location == nil {
		return d, ErrLocationRequired
	}
	cat, err := d.ResolveCategory()
	if err != nil {
		return d, err
	}
	d.Category = cat
	d.OtherCategory = ""
	if d.EvidenceFiles == nil {
		d.EvidenceFiles = []FileRef{}
	}
	return d, nil
}

// Assignment defaults applied when the manager leaves a field empty.
const (
	DefaultGroup      = "DefaultGroup"
	DefaultRemarks    = "No remarks"
	DefaultSLAMinutes = 240
)

// AssignmentRequest is what a manager submits to assign a worker.
type AssignmentRequest struct {
	Group      string
	WorkerID   string
	Remarks    string
	SLAMinutes int
}

// WithDefaults fills empty fields, taking the group from c when known.
func (r AssignmentRequest) WithDefaults(c *Complaint) AssignmentRequest {
	if r.Group == "" {
		r.Group = DefaultGroup
		if c != nil && c.Group != "" {
			r.Group = c.Group
		}
	}
	if strings.TrimSpace(r.Remarks) == "" {
		r.Remarks = DefaultRemarks
	}
	if r.SLAMinutes <= 0 {
		r.SLAMinutes = DefaultSLAMinutes
	}
	return r
}

// Upload is a proof file received from the browser, forwarded as-is.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// WorkflowCommand carries a non-assign staff action to the grievance API.
// Stage is the acting role; Uploads are only sent with submit_proof.
type WorkflowCommand struct {
	Action  Action
	Stage   Role
	Note    string
	Uploads []Upload
}
