package orion

import (
	"slices"
	"strings"
)

// Filter narrows a collection before aggregation or display. The zero
// value accepts every record.
//
// Bounds are inclusive. A record whose date does not parse is excluded
// whenever a date bound is set, and included when none is: date filtering
// is lenient only in the absence of bounds.
type Filter struct {
	Start    Date   // zero means unbounded
	End      Date   // zero means unbounded
	Category string // case-insensitive substring match, empty means any
}

// IsZero reports whether the filter has no criteria at all.
func (f Filter) IsZero() bool {
	return f.Start.IsZero() && f.End.IsZero() && f.Category == ""
}

// Apply returns the records matching the criteria. It is a pure
// projection: the input is never mutated and the output preserves the
// input's relative order.
func (f Filter) Apply(records []Record) []Record {
	if f.IsZero() {
		return slices.Clone(records)
	}
	out := make([]Record, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(f.Category))
	for _, r := range records {
		if !f.Start.IsZero() || !f.End.IsZero() {
			day, ok := r.Day()
			if !ok {
				continue
			}
			if !f.Start.IsZero() && day.Before(f.Start) {
				continue
			}
			if !f.End.IsZero() && day.After(f.End) {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Category), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
