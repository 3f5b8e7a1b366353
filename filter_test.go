package orion

import (
	"reflect"
	"testing"
)

func TestFilter_Apply(t *testing.T) {
	records := []Record{
		income("2024-01-05", "Sales", 1000),
		expense("2024-01-20", "Rent", 300),
		income("2024-02-02", "Sales refund", 500),
		expense("garbage", "Rent", 50), // unparseable date, kept from an old data file
	}

	testCases := []struct {
		name           string
		filter         Filter
		wantCategories []string
	}{
		{
			name:           "zero filter accepts everything, unparseable dates included",
			filter:         Filter{},
			wantCategories: []string{"Sales", "Rent", "Sales refund", "Rent"},
		},
		{
			name:           "start bound",
			filter:         Filter{Start: MustParseDate("2024-01-10")},
			wantCategories: []string{"Rent", "Sales refund"},
		},
		{
			name:           "end bound is inclusive",
			filter:         Filter{End: MustParseDate("2024-01-20")},
			wantCategories: []string{"Sales", "Rent"},
		},
		{
			name: "start and end",
			filter: Filter{
				Start: MustParseDate("2024-01-06"),
				End:   MustParseDate("2024-01-31"),
			},
			wantCategories: []string{"Rent"},
		},
		{
			name:           "category substring is case-insensitive",
			filter:         Filter{Category: "sales"},
			wantCategories: []string{"Sales", "Sales refund"},
		},
		{
			name: "category and date combine",
			filter: Filter{
				Start:    MustParseDate("2024-02-01"),
				Category: "SALES",
			},
			wantCategories: []string{"Sales refund"},
		},
		{
			name:           "date bound excludes unparseable dates",
			filter:         Filter{End: MustParseDate("2030-01-01")},
			wantCategories: []string{"Sales", "Rent", "Sales refund"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Apply(records)
			var categories []string
			for _, r := range got {
				categories = append(categories, r.Category)
			}
			if !reflect.DeepEqual(categories, tc.wantCategories) {
				t.Errorf("Apply() = %v, want %v", categories, tc.wantCategories)
			}
		})
	}
}

func TestFilter_IsZero(t *testing.T) {
	testCases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "zero value", filter: Filter{}, want: true},
		{name: "start bound", filter: Filter{Start: MustParseDate("2024-01-01")}},
		{name: "end bound", filter: Filter{End: MustParseDate("2024-01-31")}},
		{name: "category", filter: Filter{Category: "rent"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.IsZero(); got != tc.want {
				t.Errorf("IsZero() = %v, want %v", got, tc.want)
			}
		})
	}

	// The zero-filter fast path still hands out a copy, never the
	// caller's backing array.
	records := []Record{income("2024-01-05", "Sales", 1000)}
	got := Filter{}.Apply(records)
	got[0].Category = "changed"
	if records[0].Category != "Sales" {
		t.Error("Apply() on a zero filter aliased the input slice")
	}
}

func TestFilter_ApplyIsPure(t *testing.T) {
	records := []Record{
		income("2024-01-05", "Sales", 1000),
		expense("2024-01-20", "Rent", 300),
		income("2024-02-02", "Sales", 500),
	}
	f := Filter{Start: MustParseDate("2024-01-10"), Category: "r"}

	first := f.Apply(records)
	second := f.Apply(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("two Apply() calls on an unmutated input differ")
	}

	// The output is a subsequence of the input: relative order preserved.
	pos := 0
	for _, r := range first {
		found := false
		for ; pos < len(records); pos++ {
			if reflect.DeepEqual(records[pos], r) {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("Apply() result %+v is out of input order", r)
		}
	}
}
