// Package content holds everything the portfolio page displays.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/scrollspy"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

//go:embed content.yaml
var defaultContent []byte

type Profile struct {
	Name     string `yaml:"name"`
	Initials string `yaml:"initials"`
	Greeting string `yaml:"greeting"`
	Headline string `yaml:"headline"`
	Location string `yaml:"location"`
	Summary  string `yaml:"summary"`
	GitHub   string `yaml:"github"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type About struct {
	Body  string `yaml:"body"`
	Stats []Stat `yaml:"stats"`

	HTML template.HTML `yaml:"-"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Tech        []string `yaml:"tech"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`

	DescriptionHTML template.HTML `yaml:"-"`
}

type TimelineItem struct {
	Kind        string   `yaml:"kind"` // work, achievement or education
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Link hrefs come from the content file, not from visitors, so tel: and
// mailto: targets are trusted as-is.
type Link struct {
	Label string       `yaml:"label"`
	Value string       `yaml:"value"`
	Href  template.URL `yaml:"href"`
}

type Contact struct {
	Info   []Link `yaml:"info"`
	Social []Link `yaml:"social"`
}

// Direct returns the info links that open a mail client or a dialer.
func (c Contact) Direct() []Link {
	var out []Link
	for _, l := range c.Info {
		h := string(l.Href)
		if strings.HasPrefix(h, "mailto:") || strings.HasPrefix(h, "tel:") {
			out = append(out, l)
		}
	}
	return out
}

// Site is the full page content.
type Site struct {
	Profile        Profile          `yaml:"profile"`
	Roles          []string         `yaml:"roles"`
	Nav            []scrollspy.Item `yaml:"nav"`
	About          About            `yaml:"about"`
	Skills         []SkillCategory  `yaml:"skills"`
	Projects       []Project        `yaml:"projects"`
	Timeline       []TimelineItem   `yaml:"timeline"`
	Certifications []string         `yaml:"certifications"`
	Contact        Contact          `yaml:"contact"`
}

var (
	ErrBadSkillLevel = errors.New("content: skill level must be between 0 and 100")
	ErrBadKind       = errors.New("content: timeline kind must be work, achievement or education")
)

// Load reads site content from path, or the built-in content when path is
// empty, validates it and renders its markdown fields.
func Load(path string) (*Site, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
		data = b
	}
	return Parse(data, NewRenderer())
}

// Parse decodes YAML content.
func Parse(data []byte, r *Renderer) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := s.render(r); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) Validate() error {
	if len(s.Roles) == 0 {
		return typewriter.ErrNoRoles
	}
	if err := scrollspy.Validate(s.Nav); err != nil {
		return err
	}
	for _, c := range s.Skills {
		for _, sk := range c.Skills {
			if sk.Level < 0 || sk.Level > 100 {
				return fmt.Errorf("%w: %s=%d", ErrBadSkillLevel, sk.Name, sk.Level)
			}
		}
	}
	for _, t := range s.Timeline {
		switch t.Kind {
		case "work", "achievement", "education":
		default:
			return fmt.Errorf("%w: %q", ErrBadKind, t.Kind)
		}
	}
	return nil
}

func (s *Site) render(r *Renderer) error {
	var err error
	if s.About.HTML, err = r.Render(s.About.Body); err != nil {
		return fmt.Errorf("rendering about: %w", err)
	}
	for i := range s.Projects {
		p := &s.Projects[i]
		if p.DescriptionHTML, err = r.Render(p.Description); err != nil {
			return fmt.Errorf("rendering project %q: %w", p.Title, err)
		}
	}
	for i := range s.Timeline {
		t := &s.Timeline[i]
		if t.DescriptionHTML, err = r.Render(t.Description); err != nil {
			return fmt.Errorf("rendering timeline %q: %w", t.Title, err)
		}
	}
	return nil
}

// Categories returns the distinct project categories in first-seen order,
// prefixed with "All".
func (s *Site) Categories() []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, p := range s.Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ProjectsIn filters projects by category. "" and "All" return every project.
func (s *Site) ProjectsIn(category string) []Project {
	if category == "" || category == "All" {
		return s.Projects
	}
	var out []Project
	for _, p := range s.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Site) Project(id int) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
