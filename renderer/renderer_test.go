package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/inventory"
	"github.com/mkalungi/orion/resume"
)

func record(kind orion.Kind, date, category string, amount int64) orion.Record {
	return orion.Record{
		ID:       "0123456789abcdef",
		Kind:     kind,
		Date:     date,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func TestSummaryMarkdown(t *testing.T) {
	records := []orion.Record{
		record(orion.Income, "2024-01-05", "Sales", 1000),
		record(orion.Expense, "2024-01-20", "Rent", 300),
	}
	out := SummaryMarkdown(NewSummary(records, "USD"))
	for _, want := range []string{"# Summary", "2 records", "$1,000.00", "$300.00", "+$700.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

func TestRecordsMarkdown(t *testing.T) {
	out := RecordsMarkdown(NewRecords("Records", []orion.Record{
		record(orion.Expense, "2024-01-20", "Rent", 300),
	}, "USD"))
	for _, want := range []string{"# Records", "01234567", "expense", "Rent", "-$300.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("records listing is missing %q:\n%s", want, out)
		}
	}

	empty := RecordsMarkdown(NewRecords("Records", nil, "USD"))
	if !strings.Contains(empty, "No records.") {
		t.Errorf("empty listing = %q", empty)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	records := []orion.Record{
		record(orion.Income, "2024-02-02", "Sales", 500),
		record(orion.Income, "2024-01-05", "Sales", 1000),
	}
	out := MonthlyMarkdown(NewMonthly(records, "USD"))
	jan := strings.Index(out, "2024-01")
	feb := strings.Index(out, "2024-02")
	if jan < 0 || feb < 0 || jan > feb {
		t.Errorf("monthly buckets missing or out of order:\n%s", out)
	}
}

func TestCategoriesMarkdown(t *testing.T) {
	records := []orion.Record{
		record(orion.Income, "2024-01-05", "Sales", 1000),
		record(orion.Income, "2024-01-06", "  ", 50),
	}
	out := CategoriesMarkdown(NewCategories(records, "USD"))
	if !strings.Contains(out, orion.Uncategorized) {
		t.Errorf("per-category report is missing the Uncategorized bucket:\n%s", out)
	}
}

func TestCashflowMarkdown(t *testing.T) {
	records := []orion.Record{
		record(orion.Income, "2024-01-05", "Sales", 1000),
		record(orion.Expense, "2024-01-20", "Rent", 300),
	}
	out := CashflowMarkdown(NewCashflow(records, "USD"))
	if !strings.Contains(out, "Final balance: **+$700.00**") {
		t.Errorf("cashflow report is missing the final balance:\n%s", out)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	b := inventory.NewBook()
	item, err := b.AddStock(inventory.StockItem{
		Name:         "Soda",
		CostPrice:    decimal.NewFromInt(500),
		SellingPrice: decimal.NewFromInt(800),
		Quantity:     10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordSale(item.ID, 3, "2024-01-05"); err != nil {
		t.Fatal(err)
	}

	out := DashboardMarkdown(NewDashboard(b, orion.MustParseDate("2024-01-05"), 2, "USD"))
	for _, want := range []string{"# Dashboard", "Gross Sales", "$2,400.00", "Daily Sales", "2024-01-04", "2024-01-05"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard is missing %q:\n%s", want, out)
		}
	}
}

func TestBookListings(t *testing.T) {
	b := inventory.NewBook()
	item, _ := b.AddStock(inventory.StockItem{
		Name:         "Soda",
		Category:     "Drinks",
		CostPrice:    decimal.NewFromInt(500),
		SellingPrice: decimal.NewFromInt(800),
		Quantity:     10,
	})
	b.RecordSale(item.ID, 2, "2024-01-05")
	b.AddDebt(inventory.Debt{Customer: "Akello", Amount: decimal.NewFromInt(5000), Date: "2024-01-05"})
	b.AddExpense(inventory.Expense{Category: "Transport", Amount: decimal.NewFromInt(2000), Date: "2024-01-05"})

	if out := StockMarkdown(NewStock(b.Stock(), "USD")); !strings.Contains(out, "Soda") || !strings.Contains(out, "$4,000.00") {
		t.Errorf("stock listing:\n%s", out)
	}
	if out := SalesMarkdown(NewSales(b.Sales(), "USD")); !strings.Contains(out, "$1,600.00") || !strings.Contains(out, "+$600.00") {
		t.Errorf("sales listing:\n%s", out)
	}
	if out := DebtsMarkdown(NewDebts(b.Debts(), "USD")); !strings.Contains(out, "PENDING") || !strings.Contains(out, "1 pending.") {
		t.Errorf("debt listing:\n%s", out)
	}
	if out := ExpensesMarkdown(NewExpenses(b.Expenses(), "USD")); !strings.Contains(out, "Transport") {
		t.Errorf("expense listing:\n%s", out)
	}
}

func TestResumeMarkdown(t *testing.T) {
	r := &resume.Resume{
		Name:    "Miriam K.",
		Role:    "Shopkeeper",
		Email:   "miriam@example.com",
		Summary: "Runs a retail shop.",
		Experience: []resume.Experience{
			{Company: "Corner Shop", Role: "Owner", Start: "2019", Bullets: []string{"Grew sales"}},
		},
		Skills: []string{"Bookkeeping"},
		Projects: []resume.Project{
			{Name: "Ledger", Description: "Shop records.", Link: "https://example.com"},
		},
	}
	out := ResumeMarkdown(r)
	for _, want := range []string{
		"# Miriam K.",
		"**Shopkeeper**",
		"## Experience",
		"### Owner, Corner Shop",
		"2019 - Present",
		"- Grew sales",
		"## Skills",
		"[Ledger](https://example.com)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("resume markdown is missing %q:\n%s", want, out)
		}
	}
	// Empty sections are suppressed, headings included.
	if strings.Contains(out, "## Education") {
		t.Errorf("empty education section rendered:\n%s", out)
	}
}

func TestResumeMarkdown_minimal(t *testing.T) {
	out := ResumeMarkdown(&resume.Resume{Name: "Miriam K."})
	for _, heading := range []string{"## Experience", "## Education", "## Skills", "## Projects"} {
		if strings.Contains(out, heading) {
			t.Errorf("minimal resume rendered %q:\n%s", heading, out)
		}
	}
}
