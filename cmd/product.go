package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
)

type addProductCmd struct {
	name      string
	materials string
	timeframe int
	yield     int
	price     int
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addProductCmd) Usage() string {
	return `add-product -name <name> -timeframe <hours> -yield <units> -price <amount> [-materials <name:qty:price|...>]

  Adds a product to the catalog:
  - name: the product name. Must be unique.
  - materials: materials consumed per batch, encoded as name:qty:price
    segments separated by "|", e.g. "Seed:1:30|Bag:1:1".
  - timeframe: hours to produce one batch.
  - yield: units produced per batch.
  - price: asking price per unit.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.materials, "materials", "", "Materials per batch as name:qty:price segments")
	f.IntVar(&c.timeframe, "timeframe", 0, "Hours per batch (required)")
	f.IntVar(&c.yield, "yield", 0, "Units per batch (required)")
	f.IntVar(&c.price, "price", 0, "Asking price per unit (required)")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	materials, err := biztrack.DecodeItems(c.materials)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	product := biztrack.Product{
		Name:           c.name,
		Materials:      materials,
		TimeframeHours: c.timeframe,
		YieldAmount:    c.yield,
		SellPrice:      c.price,
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.AddProduct(product); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendProduct(ledger.Product(product.Name))
}

type setProductCmd struct {
	name      string
	rename    string
	materials string
	timeframe int
	yield     int
	price     int
}

func (*setProductCmd) Name() string     { return "set-product" }
func (*setProductCmd) Synopsis() string { return "edit a product in the catalog" }
func (*setProductCmd) Usage() string {
	return `set-product -name <name> [-rename <new>] [-materials <name:qty:price|...>] [-timeframe <hours>] [-yield <units>] [-price <amount>]

  Edits an existing catalog entry in place. Only the given flags change;
  the entry keeps its position in the catalog. Past sales are untouched,
  including their recorded asking prices.
`
}

func (c *setProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product to edit (required)")
	f.StringVar(&c.rename, "rename", "", "New name for the product")
	f.StringVar(&c.materials, "materials", "", "New materials per batch")
	f.IntVar(&c.timeframe, "timeframe", 0, "New hours per batch")
	f.IntVar(&c.yield, "yield", 0, "New units per batch")
	f.IntVar(&c.price, "price", 0, "New asking price per unit")
}

func (c *setProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	product := ledger.Product(c.name)
	if product == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown product %q\n", c.name)
		return subcommands.ExitUsageError
	}

	if c.materials != "" {
		materials, err := biztrack.DecodeItems(c.materials)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		product.Materials = materials
	}
	if c.timeframe > 0 {
		product.TimeframeHours = c.timeframe
	}
	if c.yield > 0 {
		product.YieldAmount = c.yield
	}
	if c.price > 0 {
		product.SellPrice = c.price
	}
	if err := product.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.rename != "" {
		if err := ledger.RenameProduct(c.name, c.rename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := RewriteStores(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully updated product in %s\n", productsPath())
	return subcommands.ExitSuccess
}

type rmProductCmd struct {
	name string
}

func (*rmProductCmd) Name() string     { return "rm-product" }
func (*rmProductCmd) Synopsis() string { return "remove a product from the catalog" }
func (*rmProductCmd) Usage() string {
	return `rm-product -name <name>

  Removes a product from the catalog. Past sales referencing it stay in
  the ledger and keep rendering in the reports.
`
}

func (c *rmProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product to remove (required)")
}

func (c *rmProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.RemoveProduct(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := RewriteStores(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully removed product from %s\n", productsPath())
	return subcommands.ExitSuccess
}
