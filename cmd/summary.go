package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the inventory summary report" }
func (*summaryCmd) Usage() string {
	return `summary

  Displays product count, total items, total inventory value and the low
  stock list, computed fresh from the current catalog state.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Summary(desk.Summary()))
	return subcommands.ExitSuccess
}
