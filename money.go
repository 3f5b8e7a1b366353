package orion

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Monetary arithmetic stays exact decimal all the way through the engine.
// Rounding to display precision happens only here, at the presentation
// and export boundary, so repeated aggregation is reproducible.

// FormatMoney renders an exact decimal value as a currency string,
// rounded to the currency's fraction digits.
func FormatMoney(v decimal.Decimal, currency string) string {
	cur := *money.New(0, currency).Currency()
	shifted := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.Round(0).IntPart())
}

// SignedMoney is FormatMoney with an explicit sign, and "-" for zero.
func SignedMoney(v decimal.Decimal, currency string) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + FormatMoney(v, currency)
	}
	return FormatMoney(v, currency)
}
