// Package resume holds the CV model and its storage. The model is a
// single JSON document; rendering to markdown lives in the renderer
// package and standalone HTML export in this one.
package resume

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
)

// Experience is one work history entry. Bullets are free-form highlight
// lines shown under the entry.
type Experience struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// Period formats the entry's date range for display. An open entry reads
// "2021 - Present".
func (e Experience) Period() string {
	switch {
	case e.Start == "" && e.End == "":
		return ""
	case e.End == "":
		return e.Start + " - Present"
	default:
		return e.Start + " - " + e.End
	}
}

// Education is one study entry.
type Education struct {
	School string `json:"school"`
	Award  string `json:"award"`
	Year   string `json:"year,omitempty"`
}

// Project is one portfolio project with an optional link.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Resume is the whole CV document. Sections left empty are suppressed
// from every rendering.
type Resume struct {
	Name       string       `json:"name"`
	Role       string       `json:"role,omitempty"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
}

// Contact joins the available contact fields into one display line.
func (r *Resume) Contact() string {
	var parts []string
	for _, p := range []string{r.Email, r.Phone, r.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// AddSkill appends a skill if it is not already present,
// case-insensitively.
func (r *Resume) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	if slices.ContainsFunc(r.Skills, func(s string) bool {
		return strings.EqualFold(s, skill)
	}) {
		return false
	}
	r.Skills = append(r.Skills, skill)
	return true
}

// RemoveSkill deletes a skill, case-insensitively. Removing an absent
// skill is a no-op.
func (r *Resume) RemoveSkill(skill string) bool {
	before := len(r.Skills)
	r.Skills = slices.DeleteFunc(r.Skills, func(s string) bool {
		return strings.EqualFold(s, strings.TrimSpace(skill))
	})
	return len(r.Skills) != before
}

// Load reads the CV stored at path. A missing file or content that
// cannot be parsed yields an empty CV, never an error, the same
// best-effort read contract as the other stores.
func Load(path string) *Resume {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read cv file %q: %v, starting empty", path, err)
		}
		return &Resume{}
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("warning: malformed cv file %q: %v, starting empty", path, err)
		return &Resume{}
	}
	return &r
}

// Save writes the CV to path as indented JSON, replacing the previous
// content. Saving reports its failure so the caller can surface it.
func Save(path string, r *Resume) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode cv: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing cv file %q: %w", path, err)
	}
	return nil
}
