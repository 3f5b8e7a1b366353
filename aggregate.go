package orion

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Uncategorized is the sentinel label grouping records whose category is
// empty or whitespace-only in the per-category aggregate.
const Uncategorized = "Uncategorized"

// Totals is the headline aggregate behind the stat cards.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal // Income - Expense
}

// AggregateTotals sums the amounts of a collection by kind. An empty
// collection yields the all-zero result. No rounding happens here;
// rounding belongs to the presentation boundary.
func AggregateTotals(records []Record) Totals {
	var t Totals
	for _, r := range records {
		switch r.Kind {
		case Income:
			t.Income = t.Income.Add(r.Amount)
		case Expense:
			t.Expense = t.Expense.Add(r.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}

// MonthlyTotal holds the income and expense sums of one "YYYY-MM" bucket.
type MonthlyTotal struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AggregateMonthly buckets a collection by the "YYYY-MM" key derived from
// each record's date. Records whose date does not parse are silently
// excluded from this aggregation; they remain in the raw collection and
// in exports.
func AggregateMonthly(records []Record) map[string]MonthlyTotal {
	out := make(map[string]MonthlyTotal)
	for _, r := range records {
		day, ok := r.Day()
		if !ok {
			continue
		}
		key := day.MonthKey()
		bucket := out[key]
		switch r.Kind {
		case Income:
			bucket.Income = bucket.Income.Add(r.Amount)
		case Expense:
			bucket.Expense = bucket.Expense.Add(r.Amount)
		}
		out[key] = bucket
	}
	return out
}

// MonthKeys lists the bucket keys of a monthly aggregate in ascending
// lexicographic, hence chronological, order for deterministic rendering.
func MonthKeys(monthly map[string]MonthlyTotal) []string {
	return slices.Sorted(maps.Keys(monthly))
}

// AggregateByCategory computes the net contribution per trimmed category:
// income amounts add, expense amounts subtract. Empty categories collapse
// under the Uncategorized label.
func AggregateByCategory(records []Record) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range records {
		key := categoryKey(r.Category)
		switch r.Kind {
		case Income:
			out[key] = out[key].Add(r.Amount)
		case Expense:
			out[key] = out[key].Sub(r.Amount)
		}
	}
	return out
}

// categoryKey trims a category label, collapsing blank ones under the
// Uncategorized sentinel.
func categoryKey(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return Uncategorized
}

// CategoryKeys lists the keys of a category aggregate in ascending order.
func CategoryKeys(byCategory map[string]decimal.Decimal) []string {
	return slices.Sorted(maps.Keys(byCategory))
}

// Point is one chart point: the record's date label and a value.
type Point struct {
	Date  string
	Value decimal.Decimal
}

// CumulativeSeries returns the running net balance, one point per record,
// in chronological order. The sort is stable: records on the same day
// keep their insertion order. Records whose date does not parse sort
// before all dated records and still contribute to the running total.
func CumulativeSeries(records []Record) []Point {
	ordered := sortedByDay(records)
	out := make([]Point, 0, len(ordered))
	var running decimal.Decimal
	for _, r := range ordered {
		switch r.Kind {
		case Income:
			running = running.Add(r.Amount)
		case Expense:
			running = running.Sub(r.Amount)
		}
		out = append(out, Point{Date: r.Date, Value: running})
	}
	return out
}

// DebitSeries returns each record's secondary debit amount in the same
// chronological ordering as CumulativeSeries, one point per record, not
// aggregated by date. An absent debit is zero.
func DebitSeries(records []Record) []Point {
	ordered := sortedByDay(records)
	out := make([]Point, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, Point{Date: r.Date, Value: r.Debit})
	}
	return out
}

// sortedByDay returns a copy of the records sorted ascending by parsed
// date. The sort is stable so same-day records keep their relative
// insertion order; unparseable dates compare as the zero date.
func sortedByDay(records []Record) []Record {
	ordered := make([]Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, _ := ordered[i].Day()
		dj, _ := ordered[j].Day()
		return di.Before(dj)
	})
	return ordered
}
