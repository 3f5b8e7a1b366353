package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkalungi/orion/renderer"
)

// The report subcommands share the listCmd filter flags: each report
// runs over the filtered collection.

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{ listCmd }

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expense and net totals" }
func (*summaryCmd) Usage() string {
	return `orn summary [-s <start>] [-e <end>] [-c <category>]

  Displays the income, expense and net totals of the (filtered) records.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fl, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	records := fl.Apply(loadLedger().Snapshot())
	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(records, *currency)))
	return subcommands.ExitSuccess
}

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct{ listCmd }

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display month-by-month totals" }
func (*monthlyCmd) Usage() string {
	return `orn monthly [-s <start>] [-e <end>] [-c <category>]

  Displays income and expense totals bucketed by month. Records whose
  date does not parse are not part of any bucket.
`
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fl, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	records := fl.Apply(loadLedger().Snapshot())
	printMarkdown(renderer.MonthlyMarkdown(renderer.NewMonthly(records, *currency)))
	return subcommands.ExitSuccess
}

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct{ listCmd }

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "display net totals per category" }
func (*categoryCmd) Usage() string {
	return `orn category [-s <start>] [-e <end>]

  Displays the net contribution of each category: income adds, expense
  subtracts. Records without a category count as Uncategorized.
`
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fl, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	records := fl.Apply(loadLedger().Snapshot())
	printMarkdown(renderer.CategoriesMarkdown(renderer.NewCategories(records, *currency)))
	return subcommands.ExitSuccess
}

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct{ listCmd }

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the running balance over time" }
func (*cashflowCmd) Usage() string {
	return `orn cashflow [-s <start>] [-e <end>] [-c <category>]

  Displays the running net balance after each record in chronological
  order, together with the secondary debit amounts.
`
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fl, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	records := fl.Apply(loadLedger().Snapshot())
	printMarkdown(renderer.CashflowMarkdown(renderer.NewCashflow(records, *currency)))
	return subcommands.ExitSuccess
}
