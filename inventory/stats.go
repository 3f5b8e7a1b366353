package inventory

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
)

// Stats is the business health snapshot behind the dashboard cards. All
// figures are exact decimals over the whole book; rounding belongs to
// the presentation boundary.
type Stats struct {
	GrossSales     decimal.Decimal // Σ sale.Total
	COGS           decimal.Decimal // Σ sale.CostPrice × sale.Quantity
	GrossProfit    decimal.Decimal // GrossSales - COGS
	TotalExpenses  decimal.Decimal // Σ expense.Amount
	NetProfit      decimal.Decimal // GrossProfit - TotalExpenses
	PendingDebts   decimal.Decimal // Σ debt.Amount over PENDING debts
	InventoryValue decimal.Decimal // Σ item.CostPrice × item.Quantity
}

// Stats computes the health snapshot of the whole book.
func (b *Book) Stats() Stats {
	var s Stats
	for _, sale := range b.sales {
		s.GrossSales = s.GrossSales.Add(sale.Total)
		s.COGS = s.COGS.Add(sale.CostPrice.Mul(decimal.NewFromInt(int64(sale.Quantity))))
	}
	s.GrossProfit = s.GrossSales.Sub(s.COGS)
	for _, e := range b.expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.NetProfit = s.GrossProfit.Sub(s.TotalExpenses)
	for _, d := range b.debts {
		if d.Status == Pending {
			s.PendingDebts = s.PendingDebts.Add(d.Amount)
		}
	}
	for _, item := range b.stock {
		s.InventoryValue = s.InventoryValue.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return s
}

// DayStat is the sales and profit of one calendar day.
type DayStat struct {
	Day    orion.Date
	Sales  decimal.Decimal
	Profit decimal.Decimal
}

// DailyBreakdown returns per-day sales and gross profit for the n
// trailing days ending at today, oldest day first. Days without sales
// appear with zero figures so charts keep a continuous axis.
func (b *Book) DailyBreakdown(today orion.Date, n int) []DayStat {
	if n <= 0 {
		return nil
	}
	out := make([]DayStat, n)
	for i := range out {
		out[i] = DayStat{Day: today.Add(i - n + 1), Sales: decimal.Zero, Profit: decimal.Zero}
	}
	first := out[0].Day
	for _, sale := range b.sales {
		day, err := orion.ParseDate(sale.Date)
		if err != nil {
			continue
		}
		if day.Before(first) || day.After(today) {
			continue
		}
		i := 0
		for d := first; d.Before(day); d = d.Add(1) {
			i++
		}
		cost := sale.CostPrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))
		out[i].Sales = out[i].Sales.Add(sale.Total)
		out[i].Profit = out[i].Profit.Add(sale.Total.Sub(cost))
	}
	return out
}

// Ledger projects the book into the shared record pipeline: each sale
// becomes an income record under the "Sales" category and each expense
// an expense record under its own category. Record identifiers are the
// book identifiers, so repeated projections are stable.
func (b *Book) Ledger() []orion.Record {
	out := make([]orion.Record, 0, len(b.sales)+len(b.expenses))
	for _, sale := range b.sales {
		out = append(out, orion.Record{
			ID:       sale.ID,
			Kind:     orion.Income,
			Date:     sale.Date,
			Category: "Sales",
			Amount:   sale.Total,
			Notes:    itemLabel(sale),
		})
	}
	for _, e := range b.expenses {
		out = append(out, orion.Record{
			ID:       e.ID,
			Kind:     orion.Expense,
			Date:     e.Date,
			Category: e.Category,
			Amount:   e.Amount,
			Notes:    e.Description,
		})
	}
	return out
}

func itemLabel(s Sale) string {
	if s.Quantity == 1 {
		return s.ItemName
	}
	return strconv.Itoa(s.Quantity) + " x " + s.ItemName
}
