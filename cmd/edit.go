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

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
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

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing record" }
func (*editCmd) Usage() string {
	return `orn edit <id> [options]

  Replaces fields of the record with the given identifier. Only the
  flags that are set change; the identifier and the record's position
  are kept. The identifier may be abbreviated to an unambiguous prefix.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "", "Record type: income or expense.")
	f.StringVar(&c.date, "d", "", "Record date (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category of the record.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal number.")
	f.StringVar(&c.debit, "debit", "", "Secondary debit amount.")
	f.StringVar(&c.method, "m", "", "Payment method.")
	f.StringVar(&c.reference, "r", "", "External reference.")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
	f.StringVar(&c.recorderName, "by", "", "Name of the person recording.")
	f.StringVar(&c.recorderPhone, "phone", "", "Phone of the person recording.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one record identifier")
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	id, err := matchID(f.Arg(0), recordIDs(ledger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	candidate, _ := ledger.Get(id)

	// Apply only the flags that were explicitly set.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		if err := c.apply(fl.Name, &candidate); err != nil && flagErr == nil {
			flagErr = err
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", flagErr)
		return subcommands.ExitUsageError
	}

	updated, err := ledger.Update(id, candidate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated record %s\n", updated.ID)
	return subcommands.ExitSuccess
}

func (c *editCmd) apply(name string, r *orion.Record) error {
	switch name {
	case "t":
		kind, err := orion.ParseKind(c.kind)
		if err != nil {
			return err
		}
		r.Kind = kind
	case "d":
		r.Date = c.date
	case "c":
		r.Category = c.category
	case "a":
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", c.amount)
		}
		r.Amount = amount
	case "debit":
		debit, err := decimal.NewFromString(c.debit)
		if err != nil {
			return fmt.Errorf("invalid debit %q", c.debit)
		}
		r.Debit = debit
	case "m":
		r.Method = c.method
	case "r":
		r.Reference = c.reference
	case "n":
		r.Notes = c.notes
	case "by":
		r.RecorderName = c.recorderName
	case "phone":
		r.RecorderPhone = c.recorderPhone
	}
	return nil
}
