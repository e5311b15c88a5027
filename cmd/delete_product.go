package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  string
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from the catalog" }
func (*deleteCmd) Usage() string {
	return `delete -id <id> [-y]

  Removes a product after confirmation. The transaction history referencing
  the id is kept: the ledger is append-only and never rewritten.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier.")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if !c.yes && !confirm(fmt.Sprintf("Delete product %s?", c.id)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := desk.DeleteProduct(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s. Transaction history is kept.\n", c.id)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
