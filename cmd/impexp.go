package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/mkalungi/orion"
)

// exportCSVCmd holds the flags for the 'export-csv' subcommand.
type exportCSVCmd struct {
	output string
}

func (*exportCSVCmd) Name() string     { return "export-csv" }
func (*exportCSVCmd) Synopsis() string { return "export all records to CSV" }
func (*exportCSVCmd) Usage() string {
	return `orn export-csv [-o <file>]

  Writes every record as CSV with exact amounts, suitable for
  re-import. Writes to stdout unless -o is given.
`
}

func (c *exportCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCSVCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}
	if err := orion.ExportCSV(out, loadLedger().Snapshot()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// importCSVCmd holds the flags for the 'import-csv' subcommand.
type importCSVCmd struct{}

func (*importCSVCmd) Name() string     { return "import-csv" }
func (*importCSVCmd) Synopsis() string { return "import records from a CSV export" }
func (*importCSVCmd) Usage() string {
	return `orn import-csv <file>

  Reads records from a CSV file in the export format and adds them to
  the records file. Records keep their exported identifiers; a record
  whose identifier is already present is skipped and reported.
`
}

func (*importCSVCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCSVCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one CSV file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	records, err := orion.ImportCSV(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return adoptAll(records)
}

// importJSONCmd holds the flags for the 'import-json' subcommand.
type importJSONCmd struct {
	rows   string
	fields fieldPaths
}

func (*importJSONCmd) Name() string     { return "import-json" }
func (*importJSONCmd) Synopsis() string { return "import records from an arbitrary JSON export" }
func (*importJSONCmd) Usage() string {
	return `orn import-json [-rows <jsonpath>] [-field name=jsonpath]... <file>

  Reads records from a JSON document. -rows selects the array of row
  objects (default "$[*]"); -field remaps a record field to a JSONPath
  within one row, for exports using different field names.

Usage Examples:
# Import from a {"records": [...]} wrapper, mapping "label" to category.
$ orn import-json -rows '$.records[*]' -field 'category=$.label' export.json

`
}

func (c *importJSONCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rows, "rows", "$[*]", "JSONPath selecting the array of row objects.")
	f.Var(&c.fields, "field", "Field mapping as name=jsonpath. Repeatable.")
}

func (c *importJSONCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSON file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	records, err := orion.ImportJSON(file, c.rows, c.fields)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return adoptAll(records)
}

// adoptAll adds imported records to the app records file, reporting
// per-record rejections without aborting the whole import.
func adoptAll(records []orion.Record) subcommands.ExitStatus {
	ledger := loadLedger()
	var adopted, skipped int
	for _, r := range records {
		if _, err := ledger.Adopt(r); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping record: %v\n", err)
			skipped++
			continue
		}
		adopted++
	}
	if status := saveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d records (%d skipped)\n", adopted, skipped)
	return subcommands.ExitSuccess
}

// fieldPaths is a repeatable name=jsonpath flag value.
type fieldPaths map[string]string

func (p *fieldPaths) String() string {
	var parts []string
	for name, path := range *p {
		parts = append(parts, name+"="+path)
	}
	return strings.Join(parts, ",")
}

func (p *fieldPaths) Set(value string) error {
	name, path, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("invalid field mapping %q, want name=jsonpath", value)
	}
	if *p == nil {
		*p = make(fieldPaths)
	}
	(*p)[name] = path
	return nil
}
