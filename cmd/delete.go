package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record" }
func (*deleteCmd) Usage() string {
	return `orn delete <id>

  Deletes the record with the given identifier. The identifier may be
  abbreviated to an unambiguous prefix. Deleting an absent record is
  not an error.
`
}

func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one record identifier")
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	id, err := matchID(f.Arg(0), recordIDs(ledger))
	if errors.Is(err, errNoMatch) {
		// Removing an absent record is a no-op by contract.
		fmt.Printf("Nothing to delete for %q\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	ledger.Remove(id)
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted record %s\n", id)
	return subcommands.ExitSuccess
}
