package cmd

import (
	"strings"
	"testing"
)

func TestMatchID(t *testing.T) {
	ids := []string{"a1b2c3", "a1ff00", "zz99"}

	testCases := []struct {
		prefix  string
		want    string
		wantErr string
	}{
		{prefix: "zz", want: "zz99"},
		{prefix: "a1b", want: "a1b2c3"},
		{prefix: "a1b2c3", want: "a1b2c3"}, // exact match
		{prefix: "a1", wantErr: "ambiguous"},
		{prefix: "nope", wantErr: "no match"},
		{prefix: "", wantErr: "required"},
	}
	for _, tc := range testCases {
		got, err := matchID(tc.prefix, ids)
		if tc.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("matchID(%q) error = %v, want %q", tc.prefix, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("matchID(%q) error: %v", tc.prefix, err)
			continue
		}
		if got != tc.want {
			t.Errorf("matchID(%q) = %q, want %q", tc.prefix, got, tc.want)
		}
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("ORN_TEST_KEY", "from-env")
	if got := envOr("ORN_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("envOr(set) = %q", got)
	}
	if got := envOr("ORN_TEST_KEY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("envOr(unset) = %q", got)
	}
}

func TestFieldPaths(t *testing.T) {
	var p fieldPaths
	if err := p.Set("category=$.label"); err != nil {
		t.Fatal(err)
	}
	if err := p.Set("date=$.when"); err != nil {
		t.Fatal(err)
	}
	if p["category"] != "$.label" || p["date"] != "$.when" {
		t.Errorf("fieldPaths = %v", p)
	}
	if err := p.Set("no-equals"); err == nil {
		t.Error("Set() accepted a mapping without =")
	}
}
