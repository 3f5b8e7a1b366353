package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/agent"
	"github.com/mkalungi/orion/renderer"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI advisor a question about the records" }
func (*assistCmd) Usage() string {
	return `orn assist <question>

  Asks a one-shot question to the AI advisor. The advisor sees the
  rendered summary and dashboard reports and answers from them; it
  never changes any file. Requires Gemini API credentials in the
  environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected a question")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	records := loadLedger().Snapshot()
	book := loadBook()
	advisor := agent.NewAdvisor(
		renderer.SummaryMarkdown(renderer.NewSummary(records, *currency)),
		renderer.MonthlyMarkdown(renderer.NewMonthly(records, *currency)),
		renderer.DashboardMarkdown(renderer.NewDashboard(book, orion.Today(), 7, *currency)),
		renderer.DebtsMarkdown(renderer.NewDebts(book.Debts(), *currency)),
	)
	if err := advisor.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the advisor:", err)
		return subcommands.ExitFailure
	}
	answer, err := advisor.Ask(ctx, question)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
