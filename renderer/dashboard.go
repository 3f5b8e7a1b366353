package renderer

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/inventory"
)

// DayRow is one day of the dashboard's trailing sales chart.
type DayRow struct {
	Day    string
	Sales  string
	Profit string
}

// Dashboard is the business health view: the stat cards plus the
// trailing daily sales.
type Dashboard struct {
	GrossSales     string
	COGS           string
	GrossProfit    string
	TotalExpenses  string
	NetProfit      string
	PendingDebts   string
	InventoryValue string
	Days           []DayRow
}

// NewDashboard builds the dashboard view over the trailing n days ending
// at today.
func NewDashboard(b *inventory.Book, today orion.Date, n int, currency string) *Dashboard {
	s := b.Stats()
	v := &Dashboard{
		GrossSales:     orion.FormatMoney(s.GrossSales, currency),
		COGS:           orion.FormatMoney(s.COGS, currency),
		GrossProfit:    orion.SignedMoney(s.GrossProfit, currency),
		TotalExpenses:  orion.FormatMoney(s.TotalExpenses, currency),
		NetProfit:      orion.SignedMoney(s.NetProfit, currency),
		PendingDebts:   orion.FormatMoney(s.PendingDebts, currency),
		InventoryValue: orion.FormatMoney(s.InventoryValue, currency),
	}
	for _, day := range b.DailyBreakdown(today, n) {
		v.Days = append(v.Days, DayRow{
			Day:    day.Day.String(),
			Sales:  orion.FormatMoney(day.Sales, currency),
			Profit: orion.SignedMoney(day.Profit, currency),
		})
	}
	return v
}

// DashboardMarkdown renders the dashboard view to a markdown string.
func DashboardMarkdown(v *Dashboard) string {
	return renderTemplate("dashboard", "dashboard.md", nil, v)
}

// StockRow is one item of the stock listing.
type StockRow struct {
	ID       string
	Name     string
	Category string
	Cost     string
	Price    string
	Quantity string
	Value    string
}

// Stock is the stock listing view.
type Stock struct {
	Rows []StockRow
}

// NewStock builds the stock listing view.
func NewStock(items []inventory.StockItem, currency string) *Stock {
	v := &Stock{}
	for _, item := range items {
		v.Rows = append(v.Rows, StockRow{
			ID:       shortID(item.ID),
			Name:     item.Name,
			Category: item.Category,
			Cost:     orion.FormatMoney(item.CostPrice, currency),
			Price:    orion.FormatMoney(item.SellingPrice, currency),
			Quantity: strconv.Itoa(item.Quantity),
			Value:    orion.FormatMoney(item.CostPrice.Mul(quantity(item.Quantity)), currency),
		})
	}
	return v
}

// StockMarkdown renders the stock listing to a markdown string.
func StockMarkdown(v *Stock) string {
	return renderTemplate("stock", "stock.md", nil, v)
}

// SaleRow is one sale of the sales listing.
type SaleRow struct {
	ID       string
	Date     string
	Item     string
	Quantity string
	Total    string
	Profit   string
}

// Sales is the sales listing view.
type Sales struct {
	Rows []SaleRow
}

// NewSales builds the sales listing view.
func NewSales(sales []inventory.Sale, currency string) *Sales {
	v := &Sales{}
	for _, s := range sales {
		profit := s.Total.Sub(s.CostPrice.Mul(quantity(s.Quantity)))
		v.Rows = append(v.Rows, SaleRow{
			ID:       shortID(s.ID),
			Date:     s.Date,
			Item:     s.ItemName,
			Quantity: strconv.Itoa(s.Quantity),
			Total:    orion.FormatMoney(s.Total, currency),
			Profit:   orion.SignedMoney(profit, currency),
		})
	}
	return v
}

// SalesMarkdown renders the sales listing to a markdown string.
func SalesMarkdown(v *Sales) string {
	return renderTemplate("sales", "sales.md", nil, v)
}

// DebtRow is one debt of the debt listing.
type DebtRow struct {
	ID       string
	Date     string
	Customer string
	Amount   string
	Status   string
}

// Debts is the debt listing view.
type Debts struct {
	Rows    []DebtRow
	Pending string
}

// NewDebts builds the debt listing view.
func NewDebts(debts []inventory.Debt, currency string) *Debts {
	v := &Debts{}
	var pending int
	for _, d := range debts {
		if d.Status == inventory.Pending {
			pending++
		}
		v.Rows = append(v.Rows, DebtRow{
			ID:       shortID(d.ID),
			Date:     d.Date,
			Customer: d.Customer,
			Amount:   orion.FormatMoney(d.Amount, currency),
			Status:   string(d.Status),
		})
	}
	v.Pending = strconv.Itoa(pending)
	return v
}

// DebtsMarkdown renders the debt listing to a markdown string.
func DebtsMarkdown(v *Debts) string {
	return renderTemplate("debts", "debts.md", nil, v)
}

// ExpenseRow is one expense of the expense listing.
type ExpenseRow struct {
	ID          string
	Date        string
	Category    string
	Amount      string
	Description string
}

// Expenses is the expense listing view.
type Expenses struct {
	Rows []ExpenseRow
}

// NewExpenses builds the expense listing view.
func NewExpenses(expenses []inventory.Expense, currency string) *Expenses {
	v := &Expenses{}
	for _, e := range expenses {
		v.Rows = append(v.Rows, ExpenseRow{
			ID:          shortID(e.ID),
			Date:        e.Date,
			Category:    e.Category,
			Amount:      orion.FormatMoney(e.Amount, currency),
			Description: e.Description,
		})
	}
	return v
}

// ExpensesMarkdown renders the expense listing to a markdown string.
func ExpensesMarkdown(v *Expenses) string {
	return renderTemplate("expenses", "expenses.md", nil, v)
}

func quantity(q int) decimal.Decimal { return decimal.NewFromInt(int64(q)) }
