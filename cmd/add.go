package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind          string
	date          string
	category      string
	amount        string
	debit         string
	method        string
	reference     string
	notes         string
	recorderName  string
	recorderPhone string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense" }
func (*addCmd) Usage() string {
	return `orn add -t <income|expense> -c <category> -a <amount> [-d <date>] [options]

  Validates and appends a new record to the records file.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "income", "Record type: income or expense.")
	f.StringVar(&c.date, "d", orion.Today().String(), "Record date (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category of the record.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal number.")
	f.StringVar(&c.debit, "debit", "", "Optional secondary debit amount.")
	f.StringVar(&c.method, "m", "", "Payment method.")
	f.StringVar(&c.reference, "r", "", "External reference.")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
	f.StringVar(&c.recorderName, "by", "", "Name of the person recording.")
	f.StringVar(&c.recorderPhone, "phone", "", "Phone of the person recording.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	candidate, err := c.record()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	added, err := ledger.Add(candidate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s %s (%s) as %s\n", added.Kind, orion.FormatMoney(added.Amount, *currency), added.Category, added.ID)
	return subcommands.ExitSuccess
}

// record builds the candidate record from the flags.
func (c *addCmd) record() (orion.Record, error) {
	kind, err := orion.ParseKind(c.kind)
	if err != nil {
		return orion.Record{}, err
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return orion.Record{}, fmt.Errorf("invalid amount %q", c.amount)
	}
	debit := decimal.Zero
	if c.debit != "" {
		if debit, err = decimal.NewFromString(c.debit); err != nil {
			return orion.Record{}, fmt.Errorf("invalid debit %q", c.debit)
		}
	}
	return orion.Record{
		Kind:          kind,
		Date:          c.date,
		Category:      c.category,
		Amount:        amount,
		Debit:         debit,
		Method:        c.method,
		Reference:     c.reference,
		Notes:         c.notes,
		RecorderName:  c.recorderName,
		RecorderPhone: c.recorderPhone,
	}, nil
}
