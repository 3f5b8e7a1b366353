package renderer

import (
	"github.com/mkalungi/orion"
)

// CashflowRow is one record of the cashflow report: the running balance
// after the record and its secondary debit amount.
type CashflowRow struct {
	Date    string
	Balance string
	Debit   string
}

// Cashflow is the cashflow report view.
type Cashflow struct {
	Rows  []CashflowRow
	Final string
}

// NewCashflow builds the cashflow view from the cumulative and debit
// series, one row per record in chronological order.
func NewCashflow(records []orion.Record, currency string) *Cashflow {
	cumulative := orion.CumulativeSeries(records)
	debits := orion.DebitSeries(records)
	v := &Cashflow{}
	for i, p := range cumulative {
		v.Rows = append(v.Rows, CashflowRow{
			Date:    p.Date,
			Balance: orion.SignedMoney(p.Value, currency),
			Debit:   orion.FormatMoney(debits[i].Value, currency),
		})
	}
	if n := len(cumulative); n > 0 {
		v.Final = orion.SignedMoney(cumulative[n-1].Value, currency)
	}
	return v
}

// CashflowMarkdown renders the cashflow view to a markdown string.
func CashflowMarkdown(v *Cashflow) string {
	return renderTemplate("cashflow", "cashflow.md", nil, v)
}
