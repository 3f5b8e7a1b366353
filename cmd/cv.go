package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/mkalungi/orion/renderer"
	"github.com/mkalungi/orion/resume"
)

// saveCV writes the app CV file and turns a failure into the command
// exit status.
func saveCV(r *resume.Resume) subcommands.ExitStatus {
	if err := resume.Save(*cvFile, r); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// cvSetCmd holds the flags for the 'cv-set' subcommand.
type cvSetCmd struct {
	name     string
	role     string
	email    string
	phone    string
	location string
	summary  string
}

func (*cvSetCmd) Name() string     { return "cv-set" }
func (*cvSetCmd) Synopsis() string { return "set the CV header fields" }
func (*cvSetCmd) Usage() string {
	return `orn cv-set [-name <name>] [-role <role>] [-email <email>] [-phone <phone>] [-location <location>] [-summary <text>]

  Sets the header fields of the CV. Only the flags that are set change.
`
}

func (c *cvSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name.")
	f.StringVar(&c.role, "role", "", "Professional role or title.")
	f.StringVar(&c.email, "email", "", "Contact email.")
	f.StringVar(&c.phone, "phone", "", "Contact phone.")
	f.StringVar(&c.location, "location", "", "Location line.")
	f.StringVar(&c.summary, "summary", "", "Professional summary.")
}

func (c *cvSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := resume.Load(*cvFile)
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			r.Name = c.name
		case "role":
			r.Role = c.role
		case "email":
			r.Email = c.email
		case "phone":
			r.Phone = c.phone
		case "location":
			r.Location = c.location
		case "summary":
			r.Summary = c.summary
		}
	})
	if status := saveCV(r); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("CV updated")
	return subcommands.ExitSuccess
}

// cvAddCmd holds the flags for the 'cv-add' subcommand.
type cvAddCmd struct {
	company string
	role    string
	start   string
	end     string
	bullets bulletList
	school  string
	award   string
	year    string
	name    string
	desc    string
	link    string
}

func (*cvAddCmd) Name() string     { return "cv-add" }
func (*cvAddCmd) Synopsis() string { return "add a CV section entry" }
func (*cvAddCmd) Usage() string {
	return `orn cv-add <experience|education|skill|project> [options]

  Adds one entry to a CV section.

Usage Examples:
$ orn cv-add experience -company 'Corner Shop' -role Owner -start 2019 -bullet 'Grew sales'
$ orn cv-add education -school 'Makerere University' -award 'BSc' -year 2018
$ orn cv-add skill Bookkeeping
$ orn cv-add project -name Ledger -desc 'Shop records.' -link https://example.com

`
}

func (c *cvAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "company", "", "Experience: company name.")
	f.StringVar(&c.role, "role", "", "Experience: role held.")
	f.StringVar(&c.start, "start", "", "Experience: start year or date.")
	f.StringVar(&c.end, "end", "", "Experience: end year or date. Empty means current.")
	f.Var(&c.bullets, "bullet", "Experience: highlight line. Repeatable.")
	f.StringVar(&c.school, "school", "", "Education: school name.")
	f.StringVar(&c.award, "award", "", "Education: award or degree.")
	f.StringVar(&c.year, "year", "", "Education: award year.")
	f.StringVar(&c.name, "name", "", "Project: project name.")
	f.StringVar(&c.desc, "desc", "", "Project: short description.")
	f.StringVar(&c.link, "link", "", "Project: link.")
}

func (c *cvAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a section: experience, education, skill or project")
		return subcommands.ExitUsageError
	}

	r := resume.Load(*cvFile)
	switch section := f.Arg(0); section {
	case "experience":
		if c.role == "" {
			fmt.Fprintln(os.Stderr, "Error: -role is required for an experience entry")
			return subcommands.ExitUsageError
		}
		r.Experience = append(r.Experience, resume.Experience{
			Company: c.company,
			Role:    c.role,
			Start:   c.start,
			End:     c.end,
			Bullets: c.bullets,
		})
	case "education":
		if c.school == "" || c.award == "" {
			fmt.Fprintln(os.Stderr, "Error: -school and -award are required for an education entry")
			return subcommands.ExitUsageError
		}
		r.Education = append(r.Education, resume.Education{
			School: c.school,
			Award:  c.award,
			Year:   c.year,
		})
	case "skill":
		if f.NArg() != 2 {
			fmt.Fprintln(os.Stderr, "Error: expected the skill to add")
			return subcommands.ExitUsageError
		}
		if !r.AddSkill(f.Arg(1)) {
			fmt.Printf("Skill %q already present\n", f.Arg(1))
			return subcommands.ExitSuccess
		}
	case "project":
		if c.name == "" {
			fmt.Fprintln(os.Stderr, "Error: -name is required for a project entry")
			return subcommands.ExitUsageError
		}
		r.Projects = append(r.Projects, resume.Project{
			Name:        c.name,
			Description: c.desc,
			Link:        c.link,
		})
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown section %q\n", section)
		return subcommands.ExitUsageError
	}

	if status := saveCV(r); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s entry\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// cvRemoveCmd holds the flags for the 'cv-remove' subcommand.
type cvRemoveCmd struct{}

func (*cvRemoveCmd) Name() string     { return "cv-remove" }
func (*cvRemoveCmd) Synopsis() string { return "remove a CV section entry" }
func (*cvRemoveCmd) Usage() string {
	return `orn cv-remove <experience|education|project> <index> | orn cv-remove skill <name>

  Removes one entry from a CV section. Entries are addressed by their
  1-based position as shown by cv-show; skills by name.
`
}

func (*cvRemoveCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cvRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a section and an entry")
		return subcommands.ExitUsageError
	}

	r := resume.Load(*cvFile)
	section, entry := f.Arg(0), f.Arg(1)

	if section == "skill" {
		if !r.RemoveSkill(entry) {
			fmt.Printf("No skill %q to remove\n", entry)
			return subcommands.ExitSuccess
		}
	} else {
		i, err := strconv.Atoi(entry)
		if err != nil || i < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid entry index %q\n", entry)
			return subcommands.ExitUsageError
		}
		switch section {
		case "experience":
			if i > len(r.Experience) {
				fmt.Fprintf(os.Stderr, "Error: only %d experience entries\n", len(r.Experience))
				return subcommands.ExitFailure
			}
			r.Experience = append(r.Experience[:i-1], r.Experience[i:]...)
		case "education":
			if i > len(r.Education) {
				fmt.Fprintf(os.Stderr, "Error: only %d education entries\n", len(r.Education))
				return subcommands.ExitFailure
			}
			r.Education = append(r.Education[:i-1], r.Education[i:]...)
		case "project":
			if i > len(r.Projects) {
				fmt.Fprintf(os.Stderr, "Error: only %d project entries\n", len(r.Projects))
				return subcommands.ExitFailure
			}
			r.Projects = append(r.Projects[:i-1], r.Projects[i:]...)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown section %q\n", section)
			return subcommands.ExitUsageError
		}
	}

	if status := saveCV(r); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed %s entry\n", section)
	return subcommands.ExitSuccess
}

// cvShowCmd holds the flags for the 'cv-show' subcommand.
type cvShowCmd struct{}

func (*cvShowCmd) Name() string     { return "cv-show" }
func (*cvShowCmd) Synopsis() string { return "preview the CV in the terminal" }
func (*cvShowCmd) Usage() string {
	return `orn cv-show

  Renders the CV as markdown in the terminal. Empty sections are left
  out.
`
}

func (*cvShowCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cvShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := resume.Load(*cvFile)
	printMarkdown(renderer.ResumeMarkdown(r))
	return subcommands.ExitSuccess
}

// cvExportCmd holds the flags for the 'cv-export' subcommand.
type cvExportCmd struct {
	theme  string
	output string
}

func (*cvExportCmd) Name() string     { return "cv-export" }
func (*cvExportCmd) Synopsis() string { return "export the CV as a standalone HTML document" }
func (*cvExportCmd) Usage() string {
	return `orn cv-export [-theme <name>] [-o <file>]

  Exports the CV as a print-ready HTML document styled with the given
  theme (` + strings.Join(resume.Themes(), ", ") + `).
`
}

func (c *cvExportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "minimalist", "Export theme.")
	f.StringVar(&c.output, "o", "cv.html", "Output file.")
}

func (c *cvExportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := resume.Load(*cvFile)
	doc, err := resume.HTML(renderer.ResumeMarkdown(r), c.theme, r.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, doc, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported CV to %s\n", c.output)
	return subcommands.ExitSuccess
}

// bulletList is a repeatable string flag value.
type bulletList []string

func (b *bulletList) String() string { return strings.Join(*b, "; ") }

func (b *bulletList) Set(value string) error {
	*b = append(*b, value)
	return nil
}
