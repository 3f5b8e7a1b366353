package orion

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes records from a stream of JSONL data, one record
// per line. Decoding is deliberately permissive: the date is kept as the
// raw string and amounts are not re-validated, so a stored collection
// loads back exactly as it was persisted.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec Record
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(lineBytes), err)
		}
		ledger.append(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeRecord marshals a single record to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", r.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger persists the collection to an io.Writer in JSONL format,
// one record per line, in insertion order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, r := range ledger.records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
