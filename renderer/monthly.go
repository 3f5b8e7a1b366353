package renderer

import (
	"github.com/mkalungi/orion"
)

// MonthRow is one month bucket of the monthly report.
type MonthRow struct {
	Month   string
	Income  string
	Expense string
	Net     string
}

// Monthly is the month-by-month report view.
type Monthly struct {
	Rows []MonthRow
}

// NewMonthly builds the monthly view, buckets in chronological order.
// Records without a parseable date are not part of any bucket.
func NewMonthly(records []orion.Record, currency string) *Monthly {
	buckets := orion.AggregateMonthly(records)
	v := &Monthly{}
	for _, key := range orion.MonthKeys(buckets) {
		b := buckets[key]
		v.Rows = append(v.Rows, MonthRow{
			Month:   key,
			Income:  orion.FormatMoney(b.Income, currency),
			Expense: orion.FormatMoney(b.Expense, currency),
			Net:     orion.SignedMoney(b.Income.Sub(b.Expense), currency),
		})
	}
	return v
}

// MonthlyMarkdown renders the monthly view to a markdown string.
func MonthlyMarkdown(v *Monthly) string {
	return renderTemplate("monthly", "monthly.md", nil, v)
}
