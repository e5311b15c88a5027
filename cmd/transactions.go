package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/stockdesk/inventory/renderer"
)

type txCmd struct {
	limit int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "show recent stock movements" }
func (*txCmd) Usage() string {
	return `tx [-n <count>]

  Shows the most recent transaction records, newest first. Reading the log
  never changes it; the same call returns the same records.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "Number of records to show.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Transactions(desk.RecentTransactions(c.limit)))
	return subcommands.ExitSuccess
}
