package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
)

type addCustomerCmd struct {
	name   string
	region string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "register a customer with their home region" }
func (*addCustomerCmd) Usage() string {
	return `add-customer -name <name> [-region <region>]

  Registers a customer. Customers are also created on the fly by the
  sale command; registering one records the home region kept in the
  customers store.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required)")
	f.StringVar(&c.region, "region", biztrack.RegionUnknown.String(), "Home region of the customer")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	region, err := biztrack.ParseRegion(c.region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	known := ledger.Customer(c.name) != nil
	if err := ledger.AddCustomer(c.name, region); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// A customer first seen through a sale already has a store row, so
	// the whole store is rewritten instead of appended to.
	if known {
		if err := RewriteStores(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Successfully updated customer in %s\n", customersPath())
		return subcommands.ExitSuccess
	}
	return AppendCustomer(ledger.Customer(c.name))
}
