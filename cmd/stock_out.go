package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory"
)

type stockOutCmd struct {
	id     string
	qty    int
	reason string
}

func (*stockOutCmd) Name() string     { return "out" }
func (*stockOutCmd) Synopsis() string { return "record outgoing stock" }
func (*stockOutCmd) Usage() string {
	return `out -id <id> -qty <n> [-reason <text>]

  Decreases the quantity on hand and appends an OUT record to the transaction
  log. Fails when the removal exceeds the quantity on hand. The reason
  defaults to "Stock Out".
`
}

func (c *stockOutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier.")
	f.IntVar(&c.qty, "qty", 0, "Quantity to remove, must be positive.")
	f.StringVar(&c.reason, "reason", "", "Reason recorded with the movement.")
}

func (c *stockOutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	p, err := desk.RemoveStock(c.id, c.qty, c.reason)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if inventory.IsInvalidQuantity(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Stock removed. %s now at %d.\n", p.ID, p.Quantity)
	return subcommands.ExitSuccess
}
