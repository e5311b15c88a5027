package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory/renderer"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list all products in the catalog" }
func (*productsCmd) Usage() string {
	return `products

  Lists every product with its price, quantity on hand and stock status.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Products(desk.Products()))
	return subcommands.ExitSuccess
}

type lowCmd struct{}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list products at or below their minimum stock level" }
func (*lowCmd) Usage() string {
	return `low

  Lists the products whose quantity on hand is at or below the minimum stock
  level.
`
}

func (*lowCmd) SetFlags(f *flag.FlagSet) {}

func (*lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.LowStock(desk.LowStockProducts()))
	return subcommands.ExitSuccess
}
