// Package inventory implements the stock, sales, debt and expense book of
// a small trading business. The book owns four collections persisted
// together in one JSONL file; monetary values are exact decimals and
// dates carry day granularity, like the shared ledger engine.
package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
)

// Sentinel errors returned by the sale and debt operations.
var (
	ErrUnknownItem       = errors.New("unknown stock item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownDebt       = errors.New("unknown debt")
)

// StockItem is one product line in the inventory.
type StockItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	Updated      string          `json:"updated,omitempty"`
}

// Sale is one completed sale. Unit and cost prices are snapshots taken
// when the sale was recorded, so later price edits do not rewrite past
// profit figures.
type Sale struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Total     decimal.Decimal `json:"total"`
	Date      string          `json:"date"`
}

// DebtStatus tracks the lifecycle of a customer debt.
type DebtStatus string

const (
	Pending DebtStatus = "PENDING"
	Paid    DebtStatus = "PAID"
	BadDebt DebtStatus = "BAD_DEBT"
)

// ParseDebtStatus parses a string into a DebtStatus.
func ParseDebtStatus(s string) (DebtStatus, error) {
	switch DebtStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case Pending:
		return Pending, nil
	case Paid:
		return Paid, nil
	case BadDebt:
		return BadDebt, nil
	default:
		return "", fmt.Errorf("unknown debt status: %q", s)
	}
}

// Debt is money owed by a customer.
type Debt struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      DebtStatus      `json:"status"`
	Description string          `json:"description,omitempty"`
}

// Expense is a business expense outside the cost of goods.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// Book owns the four collections of a business: stock, sales, debts and
// expenses. Collections keep insertion order; the backing slices are
// never handed out.
type Book struct {
	stock    []StockItem
	sales    []Sale
	debts    []Debt
	expenses []Expense
	newID    func() string
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		newID: func() string { return uuid.NewString() },
	}
}

// AddStock validates the candidate item, assigns it a fresh identifier
// and appends it. The name must be non-blank, prices must not be
// negative and the quantity must not be negative.
func (b *Book) AddStock(candidate StockItem) (StockItem, error) {
	if err := validateStock(candidate); err != nil {
		return StockItem{}, err
	}
	candidate.ID = b.newID()
	candidate.Updated = orion.Today().String()
	b.stock = append(b.stock, candidate)
	return candidate, nil
}

// UpdateStock replaces the item with the given identifier, keeping the
// identifier and position and stamping the update date.
func (b *Book) UpdateStock(id string, candidate StockItem) (StockItem, error) {
	i := b.stockIndex(id)
	if i < 0 {
		return StockItem{}, ErrUnknownItem
	}
	if err := validateStock(candidate); err != nil {
		return StockItem{}, err
	}
	candidate.ID = id
	candidate.Updated = orion.Today().String()
	b.stock[i] = candidate
	return candidate, nil
}

// RemoveStock deletes the item with the given identifier. Past sales of
// the item keep their snapshots. Removing an absent identifier is a
// no-op, not an error.
func (b *Book) RemoveStock(id string) (removed bool) {
	i := b.stockIndex(id)
	if i < 0 {
		return false
	}
	b.stock = append(b.stock[:i], b.stock[i+1:]...)
	return true
}

// GetStock returns the item with the given identifier.
func (b *Book) GetStock(id string) (StockItem, bool) {
	i := b.stockIndex(id)
	if i < 0 {
		return StockItem{}, false
	}
	return b.stock[i], true
}

// SearchStock returns the items whose name or category contains the
// query, case-insensitively. An empty query returns every item.
func (b *Book) SearchStock(query string) []StockItem {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []StockItem
	for _, item := range b.stock {
		if query == "" ||
			strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Category), query) {
			out = append(out, item)
		}
	}
	return out
}

// RecordSale sells qty units of the given item on the given date. It
// fails with ErrUnknownItem or ErrInsufficientStock without touching
// state; on success the stock quantity is decremented and the sale
// snapshots the item's current prices.
func (b *Book) RecordSale(itemID string, qty int, date string) (Sale, error) {
	if qty <= 0 {
		return Sale{}, &orion.ValidationError{Code: InvalidQuantity, Detail: fmt.Sprintf("quantity must be greater than 0, got %d", qty)}
	}
	if _, err := orion.ParseDate(date); err != nil {
		return Sale{}, &orion.ValidationError{Code: orion.InvalidDate, Detail: err.Error()}
	}
	i := b.stockIndex(itemID)
	if i < 0 {
		return Sale{}, ErrUnknownItem
	}
	item := b.stock[i]
	if item.Quantity < qty {
		return Sale{}, fmt.Errorf("%w: %d of %q left, %d asked", ErrInsufficientStock, item.Quantity, item.Name, qty)
	}

	sale := Sale{
		ID:        b.newID(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  qty,
		UnitPrice: item.SellingPrice,
		CostPrice: item.CostPrice,
		Total:     item.SellingPrice.Mul(decimal.NewFromInt(int64(qty))),
		Date:      date,
	}
	b.stock[i].Quantity -= qty
	b.stock[i].Updated = orion.Today().String()
	b.sales = append(b.sales, sale)
	return sale, nil
}

// AddDebt records a new customer debt in the PENDING state.
func (b *Book) AddDebt(candidate Debt) (Debt, error) {
	if strings.TrimSpace(candidate.Customer) == "" {
		return Debt{}, &orion.ValidationError{Code: InvalidCustomer, Detail: "customer is required"}
	}
	if !candidate.Amount.IsPositive() {
		return Debt{}, &orion.ValidationError{Code: orion.InvalidAmount, Detail: fmt.Sprintf("amount must be greater than 0, got %s", candidate.Amount)}
	}
	if _, err := orion.ParseDate(candidate.Date); err != nil {
		return Debt{}, &orion.ValidationError{Code: orion.InvalidDate, Detail: err.Error()}
	}
	candidate.ID = b.newID()
	candidate.Status = Pending
	b.debts = append(b.debts, candidate)
	return candidate, nil
}

// SetDebtStatus moves a debt out of the PENDING state. Only
// PENDING→PAID and PENDING→BAD_DEBT are legal moves; settled debts are
// immutable.
func (b *Book) SetDebtStatus(id string, status DebtStatus) (Debt, error) {
	i := b.debtIndex(id)
	if i < 0 {
		return Debt{}, ErrUnknownDebt
	}
	if status != Paid && status != BadDebt {
		return Debt{}, fmt.Errorf("cannot move debt to status %q", status)
	}
	if b.debts[i].Status != Pending {
		return Debt{}, fmt.Errorf("debt %q is already settled as %s", id, b.debts[i].Status)
	}
	b.debts[i].Status = status
	return b.debts[i], nil
}

// RemoveDebt deletes the debt with the given identifier. Removing an
// absent identifier is a no-op, not an error.
func (b *Book) RemoveDebt(id string) (removed bool) {
	i := b.debtIndex(id)
	if i < 0 {
		return false
	}
	b.debts = append(b.debts[:i], b.debts[i+1:]...)
	return true
}

// AddExpense validates and records a business expense.
func (b *Book) AddExpense(candidate Expense) (Expense, error) {
	if strings.TrimSpace(candidate.Category) == "" {
		return Expense{}, &orion.ValidationError{Code: orion.InvalidCategory, Detail: "category is required"}
	}
	if !candidate.Amount.IsPositive() {
		return Expense{}, &orion.ValidationError{Code: orion.InvalidAmount, Detail: fmt.Sprintf("amount must be greater than 0, got %s", candidate.Amount)}
	}
	if _, err := orion.ParseDate(candidate.Date); err != nil {
		return Expense{}, &orion.ValidationError{Code: orion.InvalidDate, Detail: err.Error()}
	}
	candidate.ID = b.newID()
	b.expenses = append(b.expenses, candidate)
	return candidate, nil
}

// RemoveExpense deletes the expense with the given identifier. Removing
// an absent identifier is a no-op, not an error.
func (b *Book) RemoveExpense(id string) (removed bool) {
	for i, e := range b.expenses {
		if e.ID == id {
			b.expenses = append(b.expenses[:i], b.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// Stock returns a copy of the stock collection in insertion order.
func (b *Book) Stock() []StockItem {
	out := make([]StockItem, len(b.stock))
	copy(out, b.stock)
	return out
}

// Sales returns a copy of the sale collection in insertion order.
func (b *Book) Sales() []Sale {
	out := make([]Sale, len(b.sales))
	copy(out, b.sales)
	return out
}

// Debts returns a copy of the debt collection in insertion order.
func (b *Book) Debts() []Debt {
	out := make([]Debt, len(b.debts))
	copy(out, b.debts)
	return out
}

// Expenses returns a copy of the expense collection in insertion order.
func (b *Book) Expenses() []Expense {
	out := make([]Expense, len(b.expenses))
	copy(out, b.expenses)
	return out
}

// Validation failure codes specific to the book, complementing the
// shared engine codes.
const (
	InvalidName     = "InvalidName"
	InvalidPrice    = "InvalidPrice"
	InvalidQuantity = "InvalidQuantity"
	InvalidCustomer = "InvalidCustomer"
)

func validateStock(candidate StockItem) error {
	if strings.TrimSpace(candidate.Name) == "" {
		return &orion.ValidationError{Code: InvalidName, Detail: "name is required"}
	}
	if candidate.CostPrice.IsNegative() || candidate.SellingPrice.IsNegative() {
		return &orion.ValidationError{Code: InvalidPrice, Detail: "prices cannot be negative"}
	}
	if candidate.Quantity < 0 {
		return &orion.ValidationError{Code: InvalidQuantity, Detail: fmt.Sprintf("quantity cannot be negative, got %d", candidate.Quantity)}
	}
	return nil
}

func (b *Book) stockIndex(id string) int {
	for i, item := range b.stock {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (b *Book) debtIndex(id string) int {
	for i, d := range b.debts {
		if d.ID == id {
			return i
		}
	}
	return -1
}
