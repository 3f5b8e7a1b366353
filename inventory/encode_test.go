package inventory

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeDecodeBook(t *testing.T) {
	b := tradingBook(t)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatalf("EncodeBook() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("EncodeBook() wrote %d lines, want 5 (1 stock, 1 sale, 2 debts, 1 expense)", len(lines))
	}
	if !strings.Contains(lines[0], `"entry":"stock"`) {
		t.Errorf("first line is not a stock entry: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"total":2400`) {
		t.Errorf("sale line does not carry the exact total: %s", lines[1])
	}

	decoded, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() error: %v", err)
	}
	if len(decoded.Stock()) != 1 || len(decoded.Sales()) != 1 ||
		len(decoded.Debts()) != 2 || len(decoded.Expenses()) != 1 {
		t.Fatalf("decoded book collections are off: %d/%d/%d/%d",
			len(decoded.Stock()), len(decoded.Sales()), len(decoded.Debts()), len(decoded.Expenses()))
	}
	if got := decoded.Stock()[0]; got.Quantity != 7 || !got.CostPrice.Equal(decimal.NewFromInt(500)) {
		t.Errorf("decoded stock item = %+v", got)
	}
	if got := decoded.Debts()[1]; got.Status != Paid {
		t.Errorf("decoded debt status = %s, want PAID", got.Status)
	}
	// The decoded book computes the same figures.
	if got, want := decoded.Stats(), b.Stats(); !got.NetProfit.Equal(want.NetProfit) {
		t.Errorf("decoded net profit = %s, want %s", got.NetProfit, want.NetProfit)
	}
}

func TestDecodeBook_unknownEntry(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader(`{"entry":"widget","id":"x"}` + "\n")); err == nil {
		t.Error("DecodeBook() accepted an unknown entry type")
	}
}

func TestDecodeBook_skipsBlankLines(t *testing.T) {
	const data = `{"entry":"expense","id":"e1","category":"Rent","amount":300,"date":"2024-01-20"}

{"entry":"debt","id":"d1","customer":"Akello","amount":100,"date":"2024-01-05","status":"PENDING"}
`
	b, err := DecodeBook(strings.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeBook() error: %v", err)
	}
	if len(b.Expenses()) != 1 || len(b.Debts()) != 1 {
		t.Errorf("decoded %d expenses and %d debts, want 1 and 1", len(b.Expenses()), len(b.Debts()))
	}
}

func TestLoadBook_missingOrMalformed(t *testing.T) {
	dir := t.TempDir()

	if b := LoadBook(filepath.Join(dir, "missing.jsonl")); len(b.Stock()) != 0 {
		t.Error("LoadBook(missing) is not empty")
	}

	bad := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(bad, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if b := LoadBook(bad); len(b.Stock()) != 0 {
		t.Error("LoadBook(malformed) is not empty")
	}
}

func TestSaveLoadBookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")
	b := tradingBook(t)

	if err := SaveBook(path, b); err != nil {
		t.Fatalf("SaveBook() error: %v", err)
	}
	loaded := LoadBook(path)
	if got, want := loaded.Stats(), b.Stats(); !got.GrossSales.Equal(want.GrossSales) || !got.PendingDebts.Equal(want.PendingDebts) {
		t.Errorf("loaded stats = %+v, want %+v", got, want)
	}
}

func TestSaveBook_badPath(t *testing.T) {
	if err := SaveBook(filepath.Join(t.TempDir(), "no", "such", "dir.jsonl"), NewBook()); err == nil {
		t.Error("SaveBook() into a missing directory did not report the failure")
	}
}
