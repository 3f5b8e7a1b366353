// Command orn is the records, inventory and CV manager CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mkalungi/orion/cmd"
)

// completion describes the static shell completion of the CLI: one entry
// per subcommand plus the global flags.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"add":         {},
		"edit":        {},
		"delete":      {},
		"list":        {},
		"summary":     {},
		"monthly":     {},
		"category":    {},
		"cashflow":    {},
		"export-csv":  {},
		"import-csv":  {Args: predict.Files("*.csv")},
		"import-json": {Args: predict.Files("*.json")},

		"stock-add":      {},
		"stock-edit":     {},
		"stock-delete":   {},
		"stock-list":     {},
		"sale":           {},
		"sales":          {},
		"debt-add":       {},
		"debt-set":       {},
		"debt-delete":    {},
		"debt-list":      {},
		"expense-add":    {},
		"expense-delete": {},
		"expense-list":   {},
		"dashboard":      {},

		"cv-set":    {},
		"cv-add":    {},
		"cv-remove": {},
		"cv-show":   {},
		"cv-export": {},

		"assist": {},
		"help":   {},
	},
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
		"book-file":   predict.Files("*.jsonl"),
		"cv-file":     predict.Files("*.json"),
		"currency":    predict.Set{"UGX", "KES", "TZS", "USD", "EUR"},
	},
}

func main() {
	name := path.Base(os.Args[0])
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
