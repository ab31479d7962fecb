// Package pages holds the table of browser pages and the roles each one
// requires. The table is embedded from pages.yaml.
package pages

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

//go:embed pages.yaml
var pagesYAML []byte

// Page is one browser route.
type Page struct {
	Path   string        `yaml:"path"`
	Name   string        `yaml:"name"`
	Title  string        `yaml:"title"`
	Public bool          `yaml:"public"`
	Roles  []domain.Role `yaml:"roles"`
}

// Requirement is what the route guard checks for p.
func (p Page) Requirement() domain.Requirement {
	if p.Public {
		return domain.Requirement{Public: true}
	}
	return domain.RequireAny(p.Roles...)
}

// NotFound describes any path absent from the table.
var NotFound = Page{Name: "not_found", Title: "Page not found", Public: true}

// Table resolves browser paths to pages.
type Table struct {
	pages []Page
}

type document struct {
	Pages []Page `yaml:"pages"`
}

// Default parses the embedded table.
func Default() (*Table, error) {
	return Parse(pagesYAML)
}

// Parse reads a page table. Paths must be absolute and unique, role codes
// must be known, and public pages may not list roles.
func Parse(b []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse page table: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Pages))
	for i := range doc.Pages {
		p := &doc.Pages[i]
		if !strings.HasPrefix(p.Path, "/") {
			return nil, fmt.Errorf("page %q: path %q must start with /", p.Name, p.Path)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("page %s: name is required", p.Path)
		}
		if _, dup := seen[p.Path]; dup {
			return nil, fmt.Errorf("page %s: duplicate path", p.Path)
		}
		seen[p.Path] = struct{}{}

		if p.Public && len(p.Roles) > 0 {
			return nil, fmt.Errorf("page %s: public pages take no roles", p.Path)
		}
		for j, r := range p.Roles {
			role := domain.ParseRole(string(r))
			if role == domain.RoleUnknown {
				return nil, fmt.Errorf("page %s: unknown role %q", p.Path, r)
			}
			p.Roles[j] = role
		}
	}
	return &Table{pages: doc.Pages}, nil
}

// Pages returns the table in declaration order.
func (t *Table) Pages() []Page {
	out := make([]Page, len(t.pages))
	copy(out, t.pages)
	return out
}

// Match finds the page for path. Segments written ":name" in the table
// match any non-empty segment and are returned in params. A trailing slash
// is ignored.
func (t *Table) Match(path string) (Page, map[string]string, bool) {
	segs := split(path)
	for _, p := range t.pages {
		if params, ok := match(split(p.Path), segs); ok {
			return p, params, true
		}
	}
	return NotFound, nil, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
