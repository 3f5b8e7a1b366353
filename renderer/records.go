package renderer

import (
	"github.com/mkalungi/orion"
)

// RecordRow is one line of the records table.
type RecordRow struct {
	ID       string
	Date     string
	Kind     string
	Category string
	Amount   string
	Notes    string
}

// Records is the record listing view.
type Records struct {
	Title string
	Rows  []RecordRow
}

// NewRecords builds the listing view of a collection, one row per record
// in the given order.
func NewRecords(title string, records []orion.Record, currency string) *Records {
	v := &Records{Title: title}
	for _, r := range records {
		amount := orion.FormatMoney(r.Amount, currency)
		if r.Kind == orion.Expense {
			amount = "-" + amount
		}
		v.Rows = append(v.Rows, RecordRow{
			ID:       shortID(r.ID),
			Date:     r.Date,
			Kind:     string(r.Kind),
			Category: r.Category,
			Amount:   amount,
			Notes:    r.Notes,
		})
	}
	return v
}

// RecordsMarkdown renders the listing view to a markdown string.
func RecordsMarkdown(v *Records) string {
	return renderTemplate("records", "records.md", nil, v)
}

// shortID abbreviates an identifier for tabular display. Commands accept
// the abbreviated form as long as it is unambiguous.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
