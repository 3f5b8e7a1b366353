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

// debtAddCmd holds the flags for the 'debt-add' subcommand.
type debtAddCmd struct {
	customer    string
	amount      string
	date        string
	description string
}

func (*debtAddCmd) Name() string     { return "debt-add" }
func (*debtAddCmd) Synopsis() string { return "record a customer debt" }
func (*debtAddCmd) Usage() string {
	return `orn debt-add -customer <name> -a <amount> [-d <date>] [-n <description>]

  Records a new customer debt in the PENDING state.
`
}

func (c *debtAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Customer name.")
	f.StringVar(&c.amount, "a", "", "Amount owed, a positive decimal number.")
	f.StringVar(&c.date, "d", orion.Today().String(), "Debt date (YYYY-MM-DD).")
	f.StringVar(&c.description, "n", "", "Free-form description.")
}

func (c *debtAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	debt, err := book.AddDebt(inventory.Debt{
		Customer:    c.customer,
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
	fmt.Printf("Recorded debt of %s by %s as %s\n", orion.FormatMoney(debt.Amount, *currency), debt.Customer, debt.ID)
	return subcommands.ExitSuccess
}

// debtSetCmd holds the flags for the 'debt-set' subcommand.
type debtSetCmd struct {
	status string
}

func (*debtSetCmd) Name() string     { return "debt-set" }
func (*debtSetCmd) Synopsis() string { return "settle a pending debt" }
func (*debtSetCmd) Usage() string {
	return `orn debt-set <debt-id> -status <PAID|BAD_DEBT>

  Moves a pending debt to its final state. Settled debts cannot be
  changed again. The debt identifier may be abbreviated.
`
}

func (c *debtSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Final status: PAID or BAD_DEBT.")
}

func (c *debtSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one debt identifier")
		return subcommands.ExitUsageError
	}
	status, err := inventory.ParseDebtStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), debtIDs(book))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	debt, err := book.SetDebtStatus(id, status)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if st := saveBook(book); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Debt %s by %s is now %s\n", debt.ID, debt.Customer, debt.Status)
	return subcommands.ExitSuccess
}

// debtListCmd holds the flags for the 'debt-list' subcommand.
type debtListCmd struct{}

func (*debtListCmd) Name() string     { return "debt-list" }
func (*debtListCmd) Synopsis() string { return "list customer debts" }
func (*debtListCmd) Usage() string {
	return `orn debt-list

  Lists customer debts with their status.
`
}

func (*debtListCmd) SetFlags(_ *flag.FlagSet) {}

func (c *debtListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.DebtsMarkdown(renderer.NewDebts(book.Debts(), *currency)))
	return subcommands.ExitSuccess
}

// debtDeleteCmd holds the flags for the 'debt-delete' subcommand.
type debtDeleteCmd struct{}

func (*debtDeleteCmd) Name() string     { return "debt-delete" }
func (*debtDeleteCmd) Synopsis() string { return "delete a customer debt" }
func (*debtDeleteCmd) Usage() string {
	return `orn debt-delete <debt-id>

  Deletes the debt with the given identifier, whatever its status. The
  identifier may be abbreviated to an unambiguous prefix. Deleting an
  absent debt is not an error.
`
}

func (*debtDeleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *debtDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one debt identifier")
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), debtIDs(book))
	if errors.Is(err, errNoMatch) {
		// Removing an absent debt is a no-op by contract.
		fmt.Printf("Nothing to delete for %q\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	book.RemoveDebt(id)
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted debt %s\n", id)
	return subcommands.ExitSuccess
}

// debtIDs lists the debt identifiers of a book in insertion order.
func debtIDs(b *inventory.Book) []string {
	debts := b.Debts()
	ids := make([]string, 0, len(debts))
	for _, d := range debts {
		ids = append(ids, d.ID)
	}
	return ids
}
