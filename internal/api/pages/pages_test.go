package pages

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

func mustDefault(t *testing.T) *Table {
	t.Helper()
	tbl, err := Default()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}
	return tbl
}

func TestDefault_Requirements(t *testing.T) {
	tbl := mustDefault(t)

	tests := []struct {
		path string
		want domain.Requirement
	}{
		{"/", domain.Requirement{Public: true}},
		{"/login", domain.Requirement{Public: true}},
		{"/complaint/new", domain.Requirement{Public: true}},
		{"/dashboard", domain.RequireAny()},
		{"/complaint/manager", domain.RequireAny(domain.RoleCM)},
		{"/je/dashboard", domain.RequireAny(domain.RoleJE)},
		{"/admin/users", domain.RequireAny(domain.RoleGM)},
		{"/admin/workflow/c-42", domain.RequireAny(domain.RoleCM, domain.RoleJE, domain.RoleSDO, domain.RoleGM)},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, _, ok := tbl.Match(tt.path)
			if !ok {
				t.Fatalf("no page for %s", tt.path)
			}
			if diff := cmp.Diff(tt.want, p.Requirement()); diff != "" {
				t.Fatalf("requirement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch_Params(t *testing.T) {
	tbl := mustDefault(t)

	p, params, ok := tbl.Match("/admin/workflow/c-42/")
	if !ok || p.Name != "complaint_workflow" {
		t.Fatalf("expected complaint_workflow, got %q (ok=%v)", p.Name, ok)
	}
	if diff := cmp.Diff(map[string]string{"id": "c-42"}, params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_Unknown(t *testing.T) {
	tbl := mustDefault(t)

	for _, path := range []string{"/nope", "/admin/workflow", "/admin/workflow/1/extra"} {
		p, _, ok := tbl.Match(path)
		if ok {
			t.Fatalf("%s: expected no match, got %q", path, p.Name)
		}
		if p.Name != "not_found" {
			t.Fatalf("%s: expected not_found descriptor, got %q", path, p.Name)
		}
	}
}

func TestDefault_HomePagesExist(t *testing.T) {
	tbl := mustDefault(t)

	for _, r := range domain.Roles() {
		home := r.HomePage()
		p, _, ok := tbl.Match(home)
		if !ok {
			t.Fatalf("%s: home page %s missing from table", r, home)
		}
		if domain.Guard(&domain.Session{Token: "t", RoleValue: r}, p.Requirement()) != domain.Render {
			t.Fatalf("%s: cannot render its own home page %s", r, home)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"relative path":   "pages:\n  - {path: admin, name: admin}\n",
		"missing name":    "pages:\n  - {path: /admin}\n",
		"duplicate":       "pages:\n  - {path: /a, name: a}\n  - {path: /a, name: b}\n",
		"public roles":    "pages:\n  - {path: /a, name: a, public: true, roles: [GM]}\n",
		"unknown role":    "pages:\n  - {path: /a, name: a, roles: [PLUMBER]}\n",
		"malformed yaml": "pages: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestParse_NormalizesRoles(t *testing.T) {
	tbl, err := Parse([]byte("pages:\n  - {path: /m, name: m, roles: [manager, ' sdo ']}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []domain.Role{domain.RoleManager, domain.RoleSDO}
	if diff := cmp.Diff(want, tbl.Pages()[0].Roles); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
}
