package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory"
)

type stockInCmd struct {
	id     string
	qty    int
	reason string
}

func (*stockInCmd) Name() string     { return "in" }
func (*stockInCmd) Synopsis() string { return "record incoming stock" }
func (*stockInCmd) Usage() string {
	return `in -id <id> -qty <n> [-reason <text>]

  Increases the quantity on hand and appends an IN record to the transaction
  log. The reason defaults to "Stock In".
`
}

func (c *stockInCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier.")
	f.IntVar(&c.qty, "qty", 0, "Quantity to add, must be positive.")
	f.StringVar(&c.reason, "reason", "", "Reason recorded with the movement.")
}

func (c *stockInCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	p, err := desk.AddStock(c.id, c.qty, c.reason)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if inventory.IsInvalidQuantity(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock added. %s now at %d.\n", p.ID, p.Quantity)
	return subcommands.ExitSuccess
}
