package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mkalungi/orion"
	"github.com/mkalungi/orion/inventory"
	"github.com/mkalungi/orion/renderer"
)

// stockAddCmd holds the flags for the 'stock-add' subcommand.
type stockAddCmd struct {
	name     string
	category string
	cost     string
	price    string
	quantity int
}

func (*stockAddCmd) Name() string     { return "stock-add" }
func (*stockAddCmd) Synopsis() string { return "add an item to the stock" }
func (*stockAddCmd) Usage() string {
	return `orn stock-add -name <name> -cost <price> -price <price> -q <quantity> [-c <category>]

  Adds a new item to the inventory book.
`
}

func (c *stockAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name.")
	f.StringVar(&c.category, "c", "", "Item category.")
	f.StringVar(&c.cost, "cost", "0", "Cost price per unit.")
	f.StringVar(&c.price, "price", "0", "Selling price per unit.")
	f.IntVar(&c.quantity, "q", 0, "Quantity in stock.")
}

func (c *stockAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cost price %q\n", c.cost)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid selling price %q\n", c.price)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	item, err := book.AddStock(inventory.StockItem{
		Name:         c.name,
		Category:     c.category,
		CostPrice:    cost,
		SellingPrice: price,
		Quantity:     c.quantity,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %d x %s as %s\n", item.Quantity, item.Name, item.ID)
	return subcommands.ExitSuccess
}

// stockListCmd holds the flags for the 'stock-list' subcommand.
type stockListCmd struct {
	query string
}

func (*stockListCmd) Name() string     { return "stock-list" }
func (*stockListCmd) Synopsis() string { return "list stock items" }
func (*stockListCmd) Usage() string {
	return `orn stock-list [-q <query>]

  Lists stock items, optionally narrowed by a case-insensitive search
  on name and category.
`
}

func (c *stockListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search query on name and category.")
}

func (c *stockListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	items := book.SearchStock(c.query)
	printMarkdown(renderer.StockMarkdown(renderer.NewStock(items, *currency)))
	return subcommands.ExitSuccess
}

// stockIDs lists the stock identifiers of a book in insertion order.
func stockIDs(b *inventory.Book) []string {
	items := b.Stock()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// stockEditCmd holds the flags for the 'stock-edit' subcommand.
type stockEditCmd struct {
	name     string
	category string
	cost     string
	price    string
	quantity int
}

func (*stockEditCmd) Name() string     { return "stock-edit" }
func (*stockEditCmd) Synopsis() string { return "edit an existing stock item" }
func (*stockEditCmd) Usage() string {
	return `orn stock-edit <item-id> [options]

  Replaces fields of the stock item with the given identifier. Only the
  flags that are set change; the identifier and the item's position are
  kept, and past sales keep their price snapshots. The identifier may
  be abbreviated to an unambiguous prefix.
`
}

func (c *stockEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name.")
	f.StringVar(&c.category, "c", "", "Item category.")
	f.StringVar(&c.cost, "cost", "", "Cost price per unit.")
	f.StringVar(&c.price, "price", "", "Selling price per unit.")
	f.IntVar(&c.quantity, "q", 0, "Quantity in stock.")
}

func (c *stockEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item identifier")
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), stockIDs(book))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	candidate, _ := book.GetStock(id)

	// Apply only the flags that were explicitly set.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		if err := c.apply(fl.Name, &candidate); err != nil && flagErr == nil {
			flagErr = err
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", flagErr)
		return subcommands.ExitUsageError
	}

	updated, err := book.UpdateStock(id, candidate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated stock item %s\n", updated.ID)
	return subcommands.ExitSuccess
}

func (c *stockEditCmd) apply(name string, item *inventory.StockItem) error {
	switch name {
	case "name":
		item.Name = c.name
	case "c":
		item.Category = c.category
	case "cost":
		cost, err := decimal.NewFromString(c.cost)
		if err != nil {
			return fmt.Errorf("invalid cost price %q", c.cost)
		}
		item.CostPrice = cost
	case "price":
		price, err := decimal.NewFromString(c.price)
		if err != nil {
			return fmt.Errorf("invalid selling price %q", c.price)
		}
		item.SellingPrice = price
	case "q":
		item.Quantity = c.quantity
	}
	return nil
}

// stockDeleteCmd holds the flags for the 'stock-delete' subcommand.
type stockDeleteCmd struct{}

func (*stockDeleteCmd) Name() string     { return "stock-delete" }
func (*stockDeleteCmd) Synopsis() string { return "delete a stock item" }
func (*stockDeleteCmd) Usage() string {
	return `orn stock-delete <item-id>

  Deletes the stock item with the given identifier. Past sales of the
  item keep their snapshots. The identifier may be abbreviated to an
  unambiguous prefix. Deleting an absent item is not an error.
`
}

func (*stockDeleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *stockDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item identifier")
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), stockIDs(book))
	if errors.Is(err, errNoMatch) {
		// Removing an absent item is a no-op by contract.
		fmt.Printf("Nothing to delete for %q\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	book.RemoveStock(id)
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted stock item %s\n", id)
	return subcommands.ExitSuccess
}

// saleCmd holds the flags for the 'sale' subcommand.
type saleCmd struct {
	quantity int
	date     string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale of a stock item" }
func (*saleCmd) Usage() string {
	return `orn sale <item-id> [-q <quantity>] [-d <date>]

  Records a sale: decrements the stock and snapshots the item's current
  prices into the sale. Fails when the item is unknown or the stock is
  insufficient. The item identifier may be abbreviated.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.quantity, "q", 1, "Quantity sold.")
	f.StringVar(&c.date, "d", orion.Today().String(), "Sale date (YYYY-MM-DD).")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item identifier")
		return subcommands.ExitUsageError
	}

	book := loadBook()
	id, err := matchID(f.Arg(0), stockIDs(book))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	sale, err := book.RecordSale(id, c.quantity, c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sold %d x %s for %s\n", sale.Quantity, sale.ItemName, orion.FormatMoney(sale.Total, *currency))
	return subcommands.ExitSuccess
}

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list recorded sales" }
func (*salesCmd) Usage() string {
	return `orn sales

  Lists recorded sales with their totals and profit.
`
}

func (*salesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.SalesMarkdown(renderer.NewSales(book.Sales(), *currency)))
	return subcommands.ExitSuccess
}
