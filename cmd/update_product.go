package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory"
)

type updateCmd struct {
	id       string
	name     string
	category string
	price    float64
	min      int
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "overwrite the details of an existing product" }
func (*updateCmd) Usage() string {
	return `update -id <id> -name <name> [-category <category>] [-price <price>] [-min <n>]

  Overwrites name, category, price and minimum stock level. The quantity on
  hand is never touched here: use 'in' and 'out' so every stock change is
  recorded in the transaction log.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier.")
	f.StringVar(&c.name, "name", "", "New product name.")
	f.StringVar(&c.category, "category", "", "New product category.")
	f.Float64Var(&c.price, "price", 0, "New unit price in the desk currency.")
	f.IntVar(&c.min, "min", 0, "New minimum stock level.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -name are required.")
		return subcommands.ExitUsageError
	}
	err := desk.UpdateProduct(c.id, c.name, c.category, inventory.M(c.price, deskCurrency), c.min)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s.\n", c.id)
	return subcommands.ExitSuccess
}
