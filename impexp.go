package orion

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// Exports should remain human readable, single file and easy to feed back.

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"type", "date", "category", "amount", "debit", "method",
	"reference", "notes", "recorderName", "recorderPhone", "id",
}

// ExportCSV writes the records to 'w' as CSV, one row per record in the
// given order, fixed column order, RFC 4180 quoting. Amounts are written
// as exact decimal strings so a re-import reconstructs the collection
// field for field.
func ExportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			string(r.Kind), r.Date, r.Category,
			r.Amount.String(), r.Debit.String(),
			r.Method, r.Reference, r.Notes,
			r.RecorderName, r.RecorderPhone, r.ID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for record %q: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses records from 'r' in the export format. The header row
// must match the export column order. Field values come back exactly as
// exported; no validation is applied here, adopting the records into a
// ledger is the caller's call.
func ImportCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected CSV column %d: got %q want %q", i, header[i], col)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row: %w", err)
		}
		amount, err := parseDecimal(row[3])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", row[3], err)
		}
		debit, err := parseDecimal(row[4])
		if err != nil {
			return nil, fmt.Errorf("invalid debit %q: %w", row[4], err)
		}
		records = append(records, Record{
			Kind:          Kind(row[0]),
			Date:          row[1],
			Category:      row[2],
			Amount:        amount,
			Debit:         debit,
			Method:        row[5],
			Reference:     row[6],
			Notes:         row[7],
			RecorderName:  row[8],
			RecorderPhone: row[9],
			ID:            row[10],
		})
	}
	return records, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// defaultFieldPaths maps record fields to the JSONPath used to extract
// them from one imported row. The defaults match the export field names.
var defaultFieldPaths = map[string]string{
	"type":      "$.type",
	"date":      "$.date",
	"category":  "$.category",
	"amount":    "$.amount",
	"debit":     "$.debit",
	"method":    "$.method",
	"reference": "$.reference",
	"notes":     "$.notes",
}

// ImportJSON extracts records from an arbitrary JSON export. rowsPath is
// a JSONPath selecting the array of row objects (for example
// "$.records[*]" or "$[*]"); fields optionally overrides the per-field
// paths of defaultFieldPaths for exports with different field names.
// Identifiers are never imported from JSON, the adopting ledger assigns
// fresh ones.
func ImportJSON(r io.Reader, rowsPath string, fields map[string]string) ([]Record, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON import: %w", err)
	}
	if rowsPath == "" {
		rowsPath = "$[*]"
	}

	jval, err := jsonpath.Get(rowsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select rows with %q: %w", rowsPath, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list
		// or a single answer: a single object counts as one row.
		rows = []any{jval}
	}

	path := func(field string) string {
		if p, ok := fields[field]; ok {
			return p
		}
		return defaultFieldPaths[field]
	}

	var records []Record
	for i, row := range rows {
		amount, err := decimalAt(row, path("amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		debit, err := decimalAt(row, path("debit"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, Record{
			Kind:      Kind(stringAt(row, path("type"))),
			Date:      stringAt(row, path("date")),
			Category:  stringAt(row, path("category")),
			Amount:    amount,
			Debit:     debit,
			Method:    stringAt(row, path("method")),
			Reference: stringAt(row, path("reference")),
			Notes:     stringAt(row, path("notes")),
		})
	}
	return records, nil
}

// stringAt evaluates a JSONPath against one row and returns the result as
// a string. A missing or non-string value is the empty string.
func stringAt(row any, path string) string {
	if path == "" {
		return ""
	}
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}

// decimalAt evaluates a JSONPath against one row and returns the result
// as an exact decimal. A missing value is zero.
func decimalAt(row any, path string) (decimal.Decimal, error) {
	if path == "" {
		return decimal.Zero, nil
	}
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return decimal.Zero, nil
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		if v == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("value %q is not a number", v)
		}
		return d, nil
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("value %v is not a number", jval)
	}
}
