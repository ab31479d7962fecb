package domain

import (
	"fmt"
	"time"
)

// StepStatus is the state of one pipeline stage.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepCurrent   StepStatus = "current"
	StepPending   StepStatus = "pending"
)

// WorkflowStep is one stage of the approval pipeline, owned by one role.
type WorkflowStep struct {
	Role      Role       `json:"role"`
	Status    StepStatus `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Remarks   string     `json:"remarks,omitempty"`
	Officer   string     `json:"officer,omitempty"`
}

// Action is a staff action on a complaint. Every action is a round-trip to
// the grievance API; nothing here computes the resulting state.
type Action string

const (
	ActionAssign      Action = "assign"
	ActionSubmitProof Action = "submit_proof"
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionEscalate    Action = "escalate"
)

// pipeline is the approval order.
var pipeline = []Role{RoleCM, RoleJE, RoleSDO, RoleGM}

// stageActions lists what the current step's role may do.
var stageActions = map[Role][]Action{
	RoleCM:  {ActionAssign},
	RoleJE:  {ActionSubmitProof, ActionApprove, ActionReject},
	RoleSDO: {ActionApprove, ActionReject},
	RoleGM:  {ActionApprove},
}

// escalators may escalate any open complaint regardless of stage.
var escalators = map[Role]struct{}{
	RoleAM:  {},
	RoleCM:  {},
	RoleSDO: {},
}

// Pipeline returns the approval order CM → JE → SDO → GM.
func Pipeline() []Role {
	out := make([]Role, len(pipeline))
	copy(out, pipeline)
	return out
}

func pipelineIndex(r Role) int {
	for i, p := range pipeline {
		if p == r {
			return i
		}
	}
	return -1
}

// StageLabel is the human name of a status.
func StageLabel(s ComplaintStatus) string {
	switch s {
	case StatusPending:
		return "Submitted"
	case StatusValidated:
		return "Validated"
	case StatusAssigned:
		return "Assigned"
	case StatusInProgress, StatusSubmittedByCM:
		return "In Progress"
	case StatusVerifiedByJE:
		return "Submitted for Review"
	case StatusReviewedBySDO:
		return "Approved"
	case StatusEscalated:
		return "Escalated"
	case StatusClosed:
		return "Closed"
	case StatusRejected:
		return "Returned"
	default:
		return "Unknown"
	}
}

// CurrentActor returns the role whose turn it is. ok is false for closed
// complaints and for statuses the gateway does not recognise.
func CurrentActor(c *Complaint) (Role, bool) {
	switch c.Status {
	case StatusPending, StatusValidated:
		return RoleCM, true
	case StatusAssigned, StatusInProgress, StatusSubmittedByCM:
		return RoleJE, true
	case StatusVerifiedByJE:
		return RoleSDO, true
	case StatusReviewedBySDO, StatusEscalated:
		return RoleGM, true
	case StatusRejected:
		return returnedTo(c.RejectedBy), true
	default:
		return RoleUnknown, false
	}
}

// returnedTo is the previous pipeline actor of the rejecting role. The
// grievance API only rejects at JE when it does not say who rejected.
func returnedTo(rejectedBy Role) Role {
	idx := pipelineIndex(rejectedBy)
	if idx < 0 {
		idx = pipelineIndex(RoleJE)
	}
	if idx == 0 {
		return pipeline[0]
	}
	return pipeline[idx-1]
}

// BuildWorkflow renders the pipeline for c. The result always satisfies
// ValidateWorkflow.
func BuildWorkflow(c *Complaint) []WorkflowStep {
	current := -1
	closed := c.Status == StatusClosed
	if actor, ok := CurrentActor(c); ok {
		current = pipelineIndex(actor)
	}

	asg := c.Current()
	steps := make([]WorkflowStep, len(pipeline))
	for i, role := range pipeline {
		step := WorkflowStep{Role: role, Status: StepPending}
		switch {
		case closed || (current >= 0 && i < current):
			step.Status = StepCompleted
		case i == current:
			step.Status = StepCurrent
		}
		decorateStep(&step, c, asg)
		steps[i] = step
	}
	return steps
}

func decorateStep(step *WorkflowStep, c *Complaint, asg *Assignment) {
	step.Officer = step.Role.Info().Label

	if step.Status == StepCurrent {
		switch c.Status {
		case StatusRejected:
			by := c.RejectedBy
			if pipelineIndex(by) < 0 {
				by = RoleJE
			}
			step.Remarks = "Returned by " + by.Info().Label
		case StatusEscalated:
			if asg != nil {
				step.Remarks = asg.EscalateReason
			}
		}
		return
	}
	if step.Status != StepCompleted || asg == nil {
		return
	}

	switch step.Role {
	case RoleCM:
		step.Timestamp = asg.AssignedAt
		step.Remarks = asg.Remarks
		if asg.AssignedBy != "" {
			step.Officer += " - " + asg.AssignedBy
		}
	case RoleJE:
		step.Timestamp = asg.VerifiedAt
		if asg.VerifiedBy != "" {
			step.Officer += " - " + asg.VerifiedBy
		}
	case RoleGM:
		step.Remarks = asg.FinalNote
	}
}

// ValidateWorkflow checks the sequence invariant: at most one current step,
// every step before it completed, every step after it pending.
func ValidateWorkflow(steps []WorkflowStep) error {
	seenCurrent := false
	seenPending := false
	for i, s := range steps {
		switch s.Status {
		case StepCompleted:
			if seenCurrent || seenPending {
				return fmt.Errorf("step %d (%s): completed after current or pending", i, s.Role)
			}
		case StepCurrent:
			if seenCurrent {
				return fmt.Errorf("step %d (%s): second current step", i, s.Role)
			}
			if seenPending {
				return fmt.Errorf("step %d (%s): current after pending", i, s.Role)
			}
			seenCurrent = true
		case StepPending:
			seenPending = true
		default:
			return fmt.Errorf("step %d (%s): unknown status %q", i, s.Role, s.Status)
		}
	}
	return nil
}

// CurrentStep returns the step in status current, if any.
func CurrentStep(steps []WorkflowStep) (WorkflowStep, bool) {
	for _, s := range steps {
		if s.Status == StepCurrent {
			return s, true
		}
	}
	return WorkflowStep{}, false
}

// CanAct reports whether actor owns the current step.
func CanAct(actor Role, steps []WorkflowStep) bool {
	cur, ok := CurrentStep(steps)
	return ok && actor != RoleUnknown && cur.Role == actor
}

// AvailableActions lists the controls actor should see for c.
func AvailableActions(actor Role, c *Complaint) []Action {
	var actions []Action
	if CanAct(actor, BuildWorkflow(c)) {
		actions = append(actions, stageActions[actor]...)
	}
	if canEscalate(actor, c) {
		actions = append(actions, ActionEscalate)
	}
	return actions
}

func canEscalate(actor Role, c *Complaint) bool {
	if _, ok := escalators[actor]; !ok {
		return false
	}
	return c.Status.Open() && c.Status != StatusEscalated
}

// Authorize checks, before anything is forwarded, that actor may perform a
// on c in its present state.
func Authorize(actor Role, c *Complaint, a Action) error {
	if a == ActionEscalate {
		if canEscalate(actor, c) {
			return nil
		}
		if _, ok := escalators[actor]; !ok {
			return ErrForbidden
		}
		return ErrInvalidAction
	}

	if !CanAct(actor, BuildWorkflow(c)) {
		return ErrNotCurrentActor
	}
	for _, allowed := range stageActions[actor] {
		if allowed == a {
			return nil
		}
	}
	return ErrInvalidAction
}
