package orion

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLedger_missingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	l := LoadLedger(path)
	if l == nil || l.Len() != 0 {
		t.Fatalf("LoadLedger(missing) = %v, want an empty ledger", l)
	}
}

func TestLoadLedger_malformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	l := LoadLedger(path)
	if l.Len() != 0 {
		t.Fatalf("LoadLedger(malformed) has %d records, want an empty ledger", l.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")

	l := testLedger()
	l.Add(income("2024-01-05", "Sales", 1000))
	l.Add(expense("2024-01-20", "Rent", 300))

	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}

	loaded := LoadLedger(path)
	if loaded.Len() != 2 {
		t.Fatalf("loaded ledger has %d records, want 2", loaded.Len())
	}
	totals := AggregateTotals(loaded.Snapshot())
	if totals.Net.String() != "700" {
		t.Errorf("loaded net = %s, want 700", totals.Net)
	}
}

func TestSaveLedger_badPath(t *testing.T) {
	l := NewLedger()
	if err := SaveLedger(filepath.Join(t.TempDir(), "no", "such", "dir.jsonl"), l); err == nil {
		t.Error("SaveLedger() into a missing directory did not report the failure")
	}
}
