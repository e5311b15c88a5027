package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory"
)

type addCmd struct {
	id       string
	name     string
	category string
	price    float64
	qty      int
	min      int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addCmd) Usage() string {
	return `add -id <id> -name <name> [-category <category>] [-price <price>] [-qty <n>] [-min <n>]

  Adds a product and records its initial quantity as an IN movement with
  reason "Initial stock". Fails when the id is already taken.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier, unique and immutable.")
	f.StringVar(&c.name, "name", "", "Product name.")
	f.StringVar(&c.category, "category", "", "Product category.")
	f.Float64Var(&c.price, "price", 0, "Unit price in the desk currency.")
	f.IntVar(&c.qty, "qty", 0, "Initial quantity on hand.")
	f.IntVar(&c.min, "min", 0, "Minimum stock level before the product counts as low.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -name are required.")
		return subcommands.ExitUsageError
	}
	p := inventory.Product{
		ID:       c.id,
		Name:     c.name,
		Category: c.category,
		Price:    inventory.M(c.price, deskCurrency),
		Quantity: c.qty,
		MinStock: c.min,
	}
	if err := desk.AddProduct(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s (%s), initial stock %d.\n", c.name, c.id, c.qty)
	return subcommands.ExitSuccess
}
