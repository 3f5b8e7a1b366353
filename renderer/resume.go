package renderer

import (
	"github.com/mkalungi/orion/resume"
)

// ResumeMarkdown renders a CV to markdown. Sections without content are
// suppressed entirely, headings included.
func ResumeMarkdown(r *resume.Resume) string {
	partials := map[string]string{
		"resume_experience": "resume_experience.md",
		"resume_education":  "resume_education.md",
		"resume_skills":     "resume_skills.md",
		"resume_projects":   "resume_projects.md",
	}
	return renderTemplate("resume", "resume.md", partials, r)
}
