package renderer

import (
	"github.com/mkalungi/orion"
)

// Summary is the headline report view: totals over a (possibly filtered)
// collection of records.
type Summary struct {
	Title   string
	Count   int
	Income  string
	Expense string
	Net     string
}

// NewSummary builds the summary view of a collection.
func NewSummary(records []orion.Record, currency string) *Summary {
	t := orion.AggregateTotals(records)
	return &Summary{
		Title:   "Summary",
		Count:   len(records),
		Income:  orion.FormatMoney(t.Income, currency),
		Expense: orion.FormatMoney(t.Expense, currency),
		Net:     orion.SignedMoney(t.Net, currency),
	}
}

// SummaryMarkdown renders the summary view to a markdown string.
func SummaryMarkdown(s *Summary) string {
	return renderTemplate("summary", "summary.md", nil, s)
}
