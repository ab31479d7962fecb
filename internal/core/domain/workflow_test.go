package domain

import (
	"errors"
	"testing"
	"time"
)

var allStatuses = []ComplaintStatus{
	StatusPending, StatusValidated, StatusAssigned, StatusInProgress,
	StatusSubmittedByCM, StatusVerifiedByJE, StatusReviewedBySDO,
	StatusEscalated, StatusClosed, StatusRejected, ComplaintStatus("mystery"),
}

func TestBuildWorkflow_InvariantHoldsForEveryState(t *testing.T) {
	rejecters := []Role{RoleUnknown, RoleCM, RoleJE, RoleSDO, RoleGM, RoleManager}
	for _, st := range allStatuses {
		for _, by := range rejecters {
			c := &Complaint{ID: "c1", Status: st, RejectedBy: by}
			steps := BuildWorkflow(c)
			if len(steps) != len(pipeline) {
				t.Fatalf("status %s: expected %d steps, got %d", st, len(pipeline), len(steps))
			}
			if err := ValidateWorkflow(steps); err != nil {
				t.Fatalf("status %s rejectedBy %s: %v", st, by, err)
			}
		}
	}
}

func TestBuildWorkflow_CurrentRoleByStatus(t *testing.T) {
	cases := []struct {
		status ComplaintStatus
		want   Role
	}{
		{StatusPending, RoleCM},
		{StatusValidated, RoleCM},
		{StatusAssigned, RoleJE},
		{StatusInProgress, RoleJE},
		{StatusSubmittedByCM, RoleJE},
		{StatusVerifiedByJE, RoleSDO},
		{StatusReviewedBySDO, RoleGM},
		{StatusEscalated, RoleGM},
	}
	for _, tc := range cases {
		cur, ok := CurrentStep(BuildWorkflow(&Complaint{Status: tc.status}))
		if !ok {
			t.Fatalf("status %s: no current step", tc.status)
		}
		if cur.Role != tc.want {
			t.Errorf("status %s: current %s, want %s", tc.status, cur.Role, tc.want)
		}
	}
}

func TestBuildWorkflow_ClosedAllCompleted(t *testing.T) {
	steps := BuildWorkflow(&Complaint{Status: StatusClosed})
	for _, s := range steps {
		if s.Status != StepCompleted {
			t.Fatalf("closed complaint: step %s is %s", s.Role, s.Status)
		}
	}
	if _, ok := CurrentStep(steps); ok {
		t.Fatal("closed complaint must have no current step")
	}
}

func TestBuildWorkflow_RejectReturnsToPreviousActor(t *testing.T) {
	cases := []struct {
		by   Role
		want Role
	}{
		{RoleJE, RoleCM},
		{RoleSDO, RoleJE},
		{RoleGM, RoleSDO},
		{RoleUnknown, RoleCM},
	}
	for _, tc := range cases {
		steps := BuildWorkflow(&Complaint{Status: StatusRejected, RejectedBy: tc.by})
		cur, ok := CurrentStep(steps)
		if !ok || cur.Role != tc.want {
			t.Errorf("rejected by %s: current %+v, want %s", tc.by, cur, tc.want)
		}
		if cur.Remarks == "" {
			t.Errorf("rejected by %s: expected return remark", tc.by)
		}
	}
}

func TestBuildWorkflow_UnknownStatusHasNoActor(t *testing.T) {
	steps := BuildWorkflow(&Complaint{Status: "mystery"})
	for _, s := range steps {
		if s.Status != StepPending {
			t.Fatalf("unknown status: step %s is %s", s.Role, s.Status)
		}
	}
	if len(AvailableActions(RoleCM, &Complaint{Status: "mystery"})) != 1 {
		t.Fatal("unknown status: only escalate should remain for CM")
	}
}

func TestBuildWorkflow_DecoratesCompletedSteps(t *testing.T) {
	at := time.Date(2026, 1, 20, 9, 45, 0, 0, time.UTC)
	c := &Complaint{
		Status: StatusVerifiedByJE,
		Assignments: []Assignment{
			{Remarks: "old", AssignedBy: "cm-0"},
			{Remarks: "assigned to team", AssignedBy: "cm-1", AssignedAt: &at, VerifiedBy: "je-7", VerifiedAt: &at},
		},
	}
	steps := BuildWorkflow(c)
	if steps[0].Remarks != "assigned to team" || steps[0].Timestamp == nil {
		t.Fatalf("CM step not decorated from latest assignment: %+v", steps[0])
	}
	if steps[0].Officer != "Complaint Manager - cm-1" {
		t.Fatalf("unexpected CM officer %q", steps[0].Officer)
	}
	if steps[1].Officer != "Junior Engineer - je-7" {
		t.Fatalf("unexpected JE officer %q", steps[1].Officer)
	}
	if steps[2].Status != StepCurrent || steps[2].Timestamp != nil {
		t.Fatalf("SDO step should be current and untimed: %+v", steps[2])
	}
}

func TestValidateWorkflow_Rejects(t *testing.T) {
	bad := [][]WorkflowStep{
		{{Role: RoleCM, Status: StepCurrent}, {Role: RoleJE, Status: StepCurrent}},
		{{Role: RoleCM, Status: StepPending}, {Role: RoleJE, Status: StepCurrent}},
		{{Role: RoleCM, Status: StepCurrent}, {Role: RoleJE, Status: StepCompleted}},
		{{Role: RoleCM, Status: StepPending}, {Role: RoleJE, Status: StepCompleted}},
		{{Role: RoleCM, Status: "skipped"}},
	}
	for i, steps := range bad {
		if err := ValidateWorkflow(steps); err == nil {
			t.Errorf("case %d: expected invariant violation", i)
		}
	}
	ok := []WorkflowStep{{Role: RoleCM, Status: StepCompleted}, {Role: RoleJE, Status: StepCurrent}, {Role: RoleSDO, Status: StepPending}}
	if err := ValidateWorkflow(ok); err != nil {
		t.Fatalf("valid sequence rejected: %v", err)
	}
}

func TestAvailableActions_OnlyCurrentRole(t *testing.T) {
	c := &Complaint{Status: StatusAssigned}
	for _, r := range Roles() {
		acts := AvailableActions(r, c)
		hasApprove := containsAction(acts, ActionApprove)
		if r == RoleJE && !hasApprove {
			t.Fatalf("JE should be able to approve at JE stage, got %v", acts)
		}
		if r != RoleJE && hasApprove {
			t.Fatalf("%s must not see approve at JE stage", r)
		}
	}
}

func TestAvailableActions_Escalate(t *testing.T) {
	open := &Complaint{Status: StatusVerifiedByJE}
	if !containsAction(AvailableActions(RoleAM, open), ActionEscalate) {
		t.Fatal("AM should be able to escalate open complaint")
	}
	if containsAction(AvailableActions(RoleGM, open), ActionEscalate) {
		t.Fatal("GM must not escalate")
	}
	if len(AvailableActions(RoleAM, &Complaint{Status: StatusClosed})) != 0 {
		t.Fatal("closed complaint must offer no actions")
	}
	if containsAction(AvailableActions(RoleCM, &Complaint{Status: StatusEscalated}), ActionEscalate) {
		t.Fatal("escalated complaint cannot be escalated again")
	}
}

func TestAuthorize(t *testing.T) {
	c := &Complaint{Status: StatusVerifiedByJE}
	if err := Authorize(RoleSDO, c, ActionApprove); err != nil {
		t.Fatalf("SDO approve: %v", err)
	}
	if err := Authorize(RoleJE, c, ActionApprove); !errors.Is(err, ErrNotCurrentActor) {
		t.Fatalf("JE approve at SDO stage: expected ErrNotCurrentActor, got %v", err)
	}
	if err := Authorize(RoleSDO, c, ActionAssign); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("SDO assign: expected ErrInvalidAction, got %v", err)
	}
	if err := Authorize(RoleGM, c, ActionEscalate); !errors.Is(err, ErrForbidden) {
		t.Fatalf("GM escalate: expected ErrForbidden, got %v", err)
	}
	if err := Authorize(RoleCM, &Complaint{Status: StatusClosed}, ActionEscalate); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("escalate closed: expected ErrInvalidAction, got %v", err)
	}
}

func TestStageLabel(t *testing.T) {
	if StageLabel(StatusVerifiedByJE) != "Submitted for Review" {
		t.Fatalf("unexpected label %q", StageLabel(StatusVerifiedByJE))
	}
	if StageLabel("nope") != "Unknown" {
		t.Fatal("unknown statuses must be labelled Unknown")
	}
}

func containsAction(acts []Action, a Action) bool {
	for _, x := range acts {
		if x == a {
			return true
		}
	}
	return false
}
