package inventory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The book persists as JSONL: one entry per line, discriminated by the
// "entry" field so the four collections can share a single file.

// EntryType discriminates the payload of one stored line.
type EntryType string

const (
	EntryStock   EntryType = "stock"
	EntrySale    EntryType = "sale"
	EntryDebt    EntryType = "debt"
	EntryExpense EntryType = "expense"
)

type stockLine struct {
	Entry EntryType `json:"entry"`
	StockItem
}

type saleLine struct {
	Entry EntryType `json:"entry"`
	Sale
}

type debtLine struct {
	Entry EntryType `json:"entry"`
	Debt
}

type expenseLine struct {
	Entry EntryType `json:"entry"`
	Expense
}

// EncodeBook writes the whole book to 'w' as JSONL, stock first, then
// sales, debts and expenses, each collection in insertion order.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	for _, item := range b.stock {
		if err := enc.Encode(stockLine{Entry: EntryStock, StockItem: item}); err != nil {
			return err
		}
	}
	for _, sale := range b.sales {
		if err := enc.Encode(saleLine{Entry: EntrySale, Sale: sale}); err != nil {
			return err
		}
	}
	for _, debt := range b.debts {
		if err := enc.Encode(debtLine{Entry: EntryDebt, Debt: debt}); err != nil {
			return err
		}
	}
	for _, e := range b.expenses {
		if err := enc.Encode(expenseLine{Entry: EntryExpense, Expense: e}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook reads a book back from a JSONL stream. Lines are appended
// without re-validation: a stored book may hold entries that would no
// longer pass the mutation checks, and they must survive a load/save
// cycle untouched.
func DecodeBook(r io.Reader) (*Book, error) {
	b := NewBook()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Entry EntryType `json:"entry"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify entry in line %q: %w", string(line), err)
		}

		switch identifier.Entry {
		case EntryStock:
			var item StockItem
			if err := json.Unmarshal(line, &item); err != nil {
				return nil, err
			}
			b.stock = append(b.stock, item)
		case EntrySale:
			var sale Sale
			if err := json.Unmarshal(line, &sale); err != nil {
				return nil, err
			}
			b.sales = append(b.sales, sale)
		case EntryDebt:
			var debt Debt
			if err := json.Unmarshal(line, &debt); err != nil {
				return nil, err
			}
			b.debts = append(b.debts, debt)
		case EntryExpense:
			var e Expense
			if err := json.Unmarshal(line, &e); err != nil {
				return nil, err
			}
			b.expenses = append(b.expenses, e)
		default:
			return nil, fmt.Errorf("unknown entry type %q in line %q", identifier.Entry, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	return b, nil
}
