// Package cmd implements the CLI application to manage business records,
// inventory and the CV.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/inventory"
)

// Environment variables overriding the global flag defaults.
const (
	EnvLedgerFile = "ORN_LEDGER_FILE"
	EnvBookFile   = "ORN_BOOK_FILE"
	EnvCVFile     = "ORN_CV_FILE"
	EnvCurrency   = "ORN_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "records.jsonl"), "Path to the records file (JSONL format)")
var bookFile = flag.String("book-file", envOr(EnvBookFile, "book.jsonl"), "Path to the inventory book file (JSONL format)")
var cvFile = flag.String("cv-file", envOr(EnvCVFile, "cv.json"), "Path to the CV file (JSON format)")
var currency = flag.String("currency", envOr(EnvCurrency, "UGX"), "ISO 4217 currency code used to display amounts")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&summaryCmd{}, "records")
	c.Register(&monthlyCmd{}, "records")
	c.Register(&categoryCmd{}, "records")
	c.Register(&cashflowCmd{}, "records")
	c.Register(&exportCSVCmd{}, "records")
	c.Register(&importCSVCmd{}, "records")
	c.Register(&importJSONCmd{}, "records")

	c.Register(&stockAddCmd{}, "inventory")
	c.Register(&stockEditCmd{}, "inventory")
	c.Register(&stockDeleteCmd{}, "inventory")
	c.Register(&stockListCmd{}, "inventory")
	c.Register(&saleCmd{}, "inventory")
	c.Register(&salesCmd{}, "inventory")
	c.Register(&debtAddCmd{}, "inventory")
	c.Register(&debtSetCmd{}, "inventory")
	c.Register(&debtDeleteCmd{}, "inventory")
	c.Register(&debtListCmd{}, "inventory")
	c.Register(&expenseAddCmd{}, "inventory")
	c.Register(&expenseDeleteCmd{}, "inventory")
	c.Register(&expenseListCmd{}, "inventory")
	c.Register(&dashboardCmd{}, "inventory")

	c.Register(&cvSetCmd{}, "cv")
	c.Register(&cvAddCmd{}, "cv")
	c.Register(&cvRemoveCmd{}, "cv")
	c.Register(&cvShowCmd{}, "cv")
	c.Register(&cvExportCmd{}, "cv")

	c.Register(&assistCmd{}, "")
}

// loadLedger reads the app records file, empty on a missing or damaged
// file.
func loadLedger() *orion.Ledger {
	return orion.LoadLedger(*ledgerFile)
}

// saveLedger writes the app records file and turns a failure into the
// command exit status.
func saveLedger(l *orion.Ledger) subcommands.ExitStatus {
	if err := orion.SaveLedger(*ledgerFile, l); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// loadBook reads the app inventory book, empty on a missing or damaged
// file.
func loadBook() *inventory.Book {
	return inventory.LoadBook(*bookFile)
}

// saveBook writes the app inventory book and turns a failure into the
// command exit status.
func saveBook(b *inventory.Book) subcommands.ExitStatus {
	if err := inventory.SaveBook(*bookFile, b); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errNoMatch reports an identifier that matches nothing.
var errNoMatch = errors.New("no match")

// matchID resolves a possibly abbreviated identifier against the known
// ones. A prefix is accepted as long as it matches exactly one
// identifier.
func matchID(prefix string, ids []string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("an identifier is required")
	}
	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w for identifier %q", errNoMatch, prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("identifier %q is ambiguous, it matches %d records", prefix, len(found))
	}
}

// recordIDs lists the identifiers of a ledger in insertion order.
func recordIDs(l *orion.Ledger) []string {
	ids := make([]string, 0, l.Len())
	for _, r := range l.Records() {
		ids = append(ids, r.ID)
	}
	return ids
}
