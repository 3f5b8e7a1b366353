package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/inventory"
	"github.com/mkalungi/orion/renderer"
)

// expenseAddCmd holds the flags for the 'expense-add' subcommand.
type expenseAddCmd struct {
	category    string
	amount      string
	date        string
	description string
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record a business expense" }
func (*expenseAddCmd) Usage() string {
	return `orn expense-add -c <category> -a <amount> [-d <date>] [-n <description>]

  Records a business expense in the inventory book.
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Expense category.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal number.")
	f.StringVar(&c.date, "d", orion.Today().String(), "Expense date (YYYY-MM-DD).")
	f.StringVar(&c.description, "n", "", "Free-form description.")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	e, err := book.AddExpense(inventory.Expense{
		Category:    c.category,
		Amount:      amount,
		Date:        c.date,
		Description: c.description,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded expense of %s (%s) as %s\n", orion.FormatMoney(e.Amount, *currency), e.Category, e.ID)
	return subcommands.ExitSuccess
}

// expenseListCmd holds the flags for the 'expense-list' subcommand.
type expenseListCmd struct{}

func (*expenseListCmd) Name() string     { return "expense-list" }
func (*expenseListCmd) Synopsis() string { return "list business expenses" }
func (*expenseListCmd) Usage() string {
	return `orn expense-list

  Lists business expenses recorded in the inventory book.
`
}

func (*expenseListCmd) SetFlags(_ *flag.FlagSet) {}

func (c *expenseListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.ExpensesMarkdown(renderer.NewExpenses(book.Expenses(), *currency)))
	return subcommands.ExitSuccess
}

// expenseDeleteCmd holds the flags for the 'expense-delete' subcommand.
type expenseDeleteCmd struct{}

func (*expenseDeleteCmd) Name() string     { return "expense-delete" }
func (*expenseDeleteCmd) Synopsis() string { return "delete a business expense" }
func (*expenseDeleteCmd) Usage() string {
	return `orn expense-delete <expense-id>

  Deletes the expense with the given identifier. The identifier may be
  abbreviated to an unambiguous prefix. Deleting an absent expense is
  not an error.
`
}

func (*expenseDeleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *expenseDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one expense identifier")
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), expenseIDs(book))
	if errors.Is(err, errNoMatch) {
		// Removing an absent expense is a no-op by contract.
		fmt.Printf("Nothing to delete for %q\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	book.RemoveExpense(id)
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted expense %s\n", id)
	return subcommands.ExitSuccess
}

// expenseIDs lists the expense identifiers of a book in insertion order.
func expenseIDs(b *inventory.Book) []string {
	expenses := b.Expenses()
	ids := make([]string, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	return ids
}
