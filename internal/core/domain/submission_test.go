package domain

import (
	"errors"
	"testing"
)

func TestResolveCategory(t *testing.T) {
	cases := []struct {
		name     string
		category string
		other    string
		want     string
		wantErr  error
	}{
		{"listed category", "Complaint Faulty Meter", "ignored", "Complaint Faulty Meter", nil},
		{"other uses override", "Other", "Illegal dumping", "Illegal dumping", nil},
		{"other is case-insensitive", "other", "  Illegal dumping ", "Illegal dumping", nil},
		{"other without override", "Other", "  ", "", ErrCategoryRequired},
		{"nothing chosen", "", "", "", ErrCategoryRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComplaintDraft{Category: tc.category, OtherCategory: tc.other}.ResolveCategory()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestReady_RequiresLocation(t *testing.T) {
	_, err := ComplaintDraft{Category: "Complaint Faulty Meter"}.Ready()
	if !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired, got %v", err)
	}
}

func TestReady_LocationCheckedBeforeCategory(t *testing.T) {
	_, err := ComplaintDraft{}.Ready()
	if !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired first, got %v", err)
	}
}

func TestReady_ResolvesDraft(t *testing.T) {
	d, err := ComplaintDraft{
		Category:      "OTHER",
		OtherCategory: "Illegal dumping",
		Location:      &Location{Lat: 28.61, Lng: 77.2},
	}.Ready()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Category != "Illegal dumping" || d.OtherCategory != "" {
		t.Fatalf("category not resolved: %+v", d)
	}
	if d.EvidenceFiles == nil {
		t.Fatal("evidence files should default to an empty list")
	}
}

func TestAssignmentRequest_WithDefaults(t *testing.T) {
	r := AssignmentRequest{WorkerID: "w1"}.WithDefaults(&Complaint{Group: "North"})
	if r.Group != "North" || r.Remarks != DefaultRemarks || r.SLAMinutes != DefaultSLAMinutes {
		t.Fatalf("unexpected defaults: %+v", r)
	}

	r = AssignmentRequest{WorkerID: "w1"}.WithDefaults(nil)
	if r.Group != DefaultGroup {
		t.Fatalf("expected default group, got %q", r.Group)
	}

	r = AssignmentRequest{Group: "East", Remarks: "urgent", SLAMinutes: 60}.WithDefaults(&Complaint{Group: "North"})
	if r.Group != "East" || r.Remarks != "urgent" || r.SLAMinutes != 60 {
		t.Fatalf("explicit values overwritten: %+v", r)
	}
}
