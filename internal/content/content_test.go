package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/scrollspy"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

func TestLoadDefault(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Roles) != 4 || s.Roles[0] != "Software Engineer" {
		t.Errorf("unexpected roles %v", s.Roles)
	}
	var anchors []string
	for _, it := range s.Nav {
		anchors = append(anchors, it.Anchor)
	}
	if got := strings.Join(anchors, ","); got != "home,about,skills,projects,experience,contact" {
		t.Errorf("nav anchors = %s", got)
	}
	if !strings.Contains(string(s.About.HTML), "<strong>B.Sc. Computer Science</strong>") {
		t.Errorf("about markdown not rendered: %s", s.About.HTML)
	}
	if !strings.Contains(string(s.Timeline[1].DescriptionHTML), "<em>Smart Agriculture</em>") {
		t.Errorf("timeline markdown not rendered: %s", s.Timeline[1].DescriptionHTML)
	}
}

func TestProjectsIn(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(s.ProjectsIn("All")); got != len(s.Projects) {
		t.Errorf("All returned %d projects, want %d", got, len(s.Projects))
	}
	full := s.ProjectsIn("Full-Stack")
	if len(full) != 2 {
		t.Fatalf("Full-Stack returned %d projects, want 2", len(full))
	}
	if len(s.ProjectsIn("Quantum")) != 0 {
		t.Error("unknown category should be empty")
	}
	cats := s.Categories()
	if cats[0] != "All" || cats[1] != "Full-Stack" || len(cats) != 6 {
		t.Errorf("categories = %v", cats)
	}
	if p, ok := s.Project(4); !ok || p.Title != "Sign Language Glove" {
		t.Errorf("Project(4) = %+v, %v", p, ok)
	}
	if _, ok := s.Project(99); ok {
		t.Error("Project(99) should not exist")
	}
}

func TestParseValidation(t *testing.T) {
	nav := "nav:\n  - { name: Home, anchor: home }\n"
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no roles", nav, typewriter.ErrNoRoles},
		{"no nav", "roles: [Engineer]\n", scrollspy.ErrNoItems},
		{"duplicate anchor", "roles: [a]\nnav:\n  - { name: A, anchor: x }\n  - { name: B, anchor: x }\n", scrollspy.ErrDuplicateAnchor},
		{"skill level", "roles: [a]\n" + nav + "skills:\n  - title: T\n    skills: [{ name: Go, level: 120 }]\n", ErrBadSkillLevel},
		{"timeline kind", "roles: [a]\n" + nav + "timeline:\n  - { kind: hobby, title: X }\n", ErrBadKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), NewRenderer())
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	data := "roles: [Gopher]\nnav:\n  - { name: Home, anchor: home }\nabout:\n  body: hi\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Roles[0] != "Gopher" {
		t.Errorf("roles = %v", s.Roles)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderSanitizes(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("hello <script>alert(1)</script> [link](javascript:alert(1))")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<script") || strings.Contains(string(out), "javascript:") {
		t.Errorf("unsafe html survived: %s", out)
	}
	if empty, _ := r.Render(""); empty != "" {
		t.Errorf("empty source rendered %q", empty)
	}
}

func TestContactDirect(t *testing.T) {
	c := Contact{Info: []Link{
		{Label: "Email", Href: "mailto:a@example.com"},
		{Label: "Location", Href: "#"},
		{Label: "Phone", Href: "tel:123"},
	}}
	got := c.Direct()
	if len(got) != 2 || got[0].Label != "Email" || got[1].Label != "Phone" {
		t.Errorf("Direct() = %+v, want Email and Phone", got)
	}
}
