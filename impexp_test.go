package orion

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCSVRoundTrip(t *testing.T) {
	l := testLedger()
	l.Add(Record{
		Kind:     Income,
		Date:     "2024-01-05",
		Category: "Sales",
		Amount:   decimal.NewFromFloat(1000.25),
		Debit:    decimal.NewFromInt(0),
		Method:   "cash",
		// A note with an embedded comma and a double quote.
		Notes:         `sold 3 crates, buyer said "more next week"`,
		RecorderName:  "Okello",
		RecorderPhone: "0700-000000",
	})
	l.Add(Record{
		Kind:      Expense,
		Date:      "2024-01-20",
		Category:  "Rent",
		Amount:    decimal.NewFromInt(300),
		Debit:     decimal.NewFromInt(0),
		Method:    "mobile",
		Reference: "multi\nline",
	})
	original := l.Snapshot()

	var buf bytes.Buffer
	if err := ExportCSV(&buf, original); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	// Quoting per the export contract: fields containing comma/quote are
	// wrapped and internal quotes doubled.
	if !strings.Contains(buf.String(), `"sold 3 crates, buyer said ""more next week"""`) {
		t.Errorf("notes field not escaped as expected:\n%s", buf.String())
	}

	imported, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV() error: %v", err)
	}
	if len(imported) != len(original) {
		t.Fatalf("ImportCSV() yields %d records, want %d", len(imported), len(original))
	}
	for i := range original {
		if !reflect.DeepEqual(imported[i], original[i]) {
			t.Errorf("record %d round-trip mismatch:\ngot  %+v\nwant %+v", i, imported[i], original[i])
		}
	}
}

func TestExportCSV_columnOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}
	want := "type,date,category,amount,debit,method,reference,notes,recorderName,recorderPhone,id"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("CSV header = %q, want %q", got, want)
	}
}

func TestImportCSV_rejectsForeignHeader(t *testing.T) {
	if _, err := ImportCSV(strings.NewReader("a,b,c\n")); err == nil {
		t.Error("ImportCSV() accepted a foreign header")
	}
}

func TestImportJSON(t *testing.T) {
	const doc = `{
		"meta": {"exported": "2024-03-01"},
		"records": [
			{"type": "income", "date": "2024-01-05", "category": "Sales", "amount": 1000, "debit": 20, "method": "cash", "notes": "n1"},
			{"type": "expense", "date": "2024-01-20", "category": "Rent", "amount": "300.50"}
		]
	}`

	got, err := ImportJSON(strings.NewReader(doc), "$.records[*]", nil)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ImportJSON() yields %d records, want 2", len(got))
	}
	if got[0].Kind != Income || got[0].Category != "Sales" || got[0].Method != "cash" {
		t.Errorf("first record fields wrong: %+v", got[0])
	}
	if !got[0].Amount.Equal(decimal.NewFromInt(1000)) || !got[0].Debit.Equal(decimal.NewFromInt(20)) {
		t.Errorf("first record amounts wrong: %+v", got[0])
	}
	// String-typed amounts parse too.
	if !got[1].Amount.Equal(decimal.RequireFromString("300.50")) {
		t.Errorf("second record amount = %s, want 300.50", got[1].Amount)
	}
	// Absent fields default to empty/zero.
	if got[1].Method != "" || !got[1].Debit.IsZero() {
		t.Errorf("absent fields not defaulted: %+v", got[1])
	}
	// Identifiers are never imported from JSON.
	if got[0].ID != "" {
		t.Errorf("ImportJSON() invented an identifier %q", got[0].ID)
	}
}

func TestImportJSON_fieldMapping(t *testing.T) {
	const doc = `[{"kind": "expense", "when": "2024-02-01", "label": "Transport", "value": 12.5}]`

	got, err := ImportJSON(strings.NewReader(doc), "$[*]", map[string]string{
		"type":     "$.kind",
		"date":     "$.when",
		"category": "$.label",
		"amount":   "$.value",
	})
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ImportJSON() yields %d records, want 1", len(got))
	}
	want := Record{
		Kind:     Expense,
		Date:     "2024-02-01",
		Category: "Transport",
		Amount:   decimal.NewFromFloat(12.5),
	}
	r := got[0]
	if r.Kind != want.Kind || r.Date != want.Date || r.Category != want.Category || !r.Amount.Equal(want.Amount) {
		t.Errorf("ImportJSON() = %+v, want %+v", r, want)
	}
}

func TestImportJSON_badDocument(t *testing.T) {
	if _, err := ImportJSON(strings.NewReader("{oops"), "$[*]", nil); err == nil {
		t.Error("ImportJSON() accepted malformed JSON")
	}
}
