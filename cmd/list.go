package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	start    string
	end      string
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list records, optionally filtered" }
func (*listCmd) Usage() string {
	return `orn list [-s <start>] [-e <end>] [-c <category>]

  Lists records in recording order. Date bounds are inclusive; the
  category filter is a case-insensitive substring match. Records whose
  date does not parse are listed unless a date bound is set.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Inclusive start date (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", "", "Inclusive end date (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category substring to filter on.")
}

// filter builds the record filter from the flags.
func (c *listCmd) filter() (orion.Filter, error) {
	var fl orion.Filter
	var err error
	if c.start != "" {
		if fl.Start, err = orion.ParseDate(c.start); err != nil {
			return orion.Filter{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if c.end != "" {
		if fl.End, err = orion.ParseDate(c.end); err != nil {
			return orion.Filter{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	fl.Category = c.category
	return fl, nil
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fl, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	records := fl.Apply(loadLedger().Snapshot())
	printMarkdown(renderer.RecordsMarkdown(renderer.NewRecords("Records", records, *currency)))
	return subcommands.ExitSuccess
}
