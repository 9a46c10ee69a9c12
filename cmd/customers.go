package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
	"github.com/mattpdg/biztrack/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "display the per-customer sales summary" }
func (*customersCmd) Usage() string {
	return `customers

  Displays the customer summary: lifetime totals, averages, relationship
  and the time-of-day and location breakdowns for every customer.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CustomerMarkdown(biztrack.NewCustomerReport(ledger)))
	return subcommands.ExitSuccess
}

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "display the product profitability summary" }
func (*productsCmd) Usage() string {
	return `products

  Displays the product summary: costs, per-unit, per-batch and per-hour
  profit for every entry in the catalog, whether it sold or not.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductMarkdown(biztrack.NewProductReport(ledger)))
	return subcommands.ExitSuccess
}
