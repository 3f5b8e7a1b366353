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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date string
	days int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the business health dashboard" }
func (*dashboardCmd) Usage() string {
	return `orn dashboard [-d <date>] [-days <n>]

  Displays gross sales, cost of goods, profit, pending debts and
  inventory value, plus per-day sales for the trailing days.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", orion.Today().String(), "Reference date for the daily breakdown.")
	f.IntVar(&c.days, "days", 7, "Number of trailing days to break down.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := orion.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book := loadBook()
	printMarkdown(renderer.DashboardMarkdown(renderer.NewDashboard(book, on, c.days, *currency)))
	return subcommands.ExitSuccess
}
