// Package cmd implements the interactive commands of the stockdesk tool.
package cmd

import (
	"github.com/google/subcommands"
	"github.com/stockdesk/inventory"
)

// The desk session is process-wide: one catalog, one ledger, one user at a
// time, so package globals are fine here, same as in a short-lived CLI.

var (
	desk         *inventory.ProductCatalog
	deskCurrency = "USD"
)

// Open binds the commands to a catalog for the lifetime of a session.
func Open(catalog *inventory.ProductCatalog, currency string) {
	desk = catalog
	deskCurrency = currency
}

// Register registers every desk command on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "products")
	c.Register(&updateCmd{}, "products")
	c.Register(&deleteCmd{}, "products")
	c.Register(&productsCmd{}, "products")

	c.Register(&stockInCmd{}, "stock")
	c.Register(&stockOutCmd{}, "stock")

	c.Register(&lowCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}
