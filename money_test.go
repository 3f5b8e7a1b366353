package orion

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		value    string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0.005", "USD", "$0.01"}, // rounds at display precision
		{"-50", "USD", "-$50.00"},
		{"1000", "UGX", "USh1,000"}, // zero-fraction currency
	}
	for _, tc := range testCases {
		v := decimal.RequireFromString(tc.value)
		if got := FormatMoney(v, tc.currency); got != tc.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", tc.value, tc.currency, got, tc.want)
		}
	}
}

func TestSignedMoney(t *testing.T) {
	if got := SignedMoney(decimal.Zero, "USD"); got != "-" {
		t.Errorf("SignedMoney(0) = %q, want %q", got, "-")
	}
	if got := SignedMoney(decimal.NewFromInt(50), "USD"); got != "+$50.00" {
		t.Errorf("SignedMoney(50) = %q, want %q", got, "+$50.00")
	}
	if got := SignedMoney(decimal.NewFromInt(-50), "USD"); got != "-$50.00" {
		t.Errorf("SignedMoney(-50) = %q, want %q", got, "-$50.00")
	}
}
