package orion

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-05", want: NewDate(2024, time.January, 5)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)}, // single digits accepted
		{in: " 2024-01-05 ", want: NewDate(2024, time.January, 5)},
		{in: "2024-02-29", want: NewDate(2024, time.February, 29)}, // leap day
		{in: "", wantErr: true},
		{in: "whenever", wantErr: true},
		{in: "05/01/2024", wantErr: true},
		{in: "2024-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) accepted, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	if got := d.String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want zero-padded ISO form", got)
	}
	if got := d.MonthKey(); got != "2024-01" {
		t.Errorf("MonthKey() = %q, want %q", got, "2024-01")
	}
}

func TestDateAdd(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	if got := d.Add(1); got != NewDate(2024, time.February, 29) {
		t.Errorf("Add(1) = %v, want 2024-02-29", got)
	}
	if got := d.Add(2); got != NewDate(2024, time.March, 1) {
		t.Errorf("Add(2) = %v, want 2024-03-01", got)
	}
	if got := d.Add(-28); got != NewDate(2024, time.January, 31) {
		t.Errorf("Add(-28) = %v, want 2024-01-31", got)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := MustParseDate("2024-01-05")
	later := MustParseDate("2024-01-20")
	if !earlier.Before(later) || later.Before(earlier) {
		t.Error("Before() ordering broken")
	}
	if !later.After(earlier) || earlier.After(later) {
		t.Error("After() ordering broken")
	}
	// The zero date sorts before any real date.
	if !(Date{}).Before(earlier) {
		t.Error("zero date does not sort first")
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParseDate("2024-01-05")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-01-05"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
	if err := back.UnmarshalJSON([]byte(`"whenever"`)); err == nil {
		t.Error("UnmarshalJSON accepted a non-date")
	}
}
