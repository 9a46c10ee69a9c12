package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
)

type saleCmd struct {
	day      int
	customer string
	items    string
	total    float64
	location string
	time     string
	rel      string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale in the ledger" }
func (*saleCmd) Usage() string {
	return `sale -day <n> -customer <name> -items <product:qty,...> -total <amount> [-location <place>] [-time <window>] [-rel <level>]

  Records one sale:
  - day: in-game day the sale happened on (1-based).
  - customer: the buyer. Unknown customers are created on the fly.
  - items: comma-separated product:quantity pairs, e.g. "OG Kush:3,Meth:1".
    Asking prices are looked up in the product catalog.
  - total: the amount the customer actually paid.
  - time: the time-of-day window (6AM-12PM, 12PM-6PM, 6PM-12AM, 12AM-6AM).
  - rel: the relationship level after the deal (Hostile..Loyal).
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.day, "day", 0, "In-game day of the sale (required)")
	f.StringVar(&c.customer, "customer", "", "Customer name (required)")
	f.StringVar(&c.items, "items", "", "Products sold as product:qty pairs (required)")
	f.Float64Var(&c.total, "total", 0, "Total amount paid (required)")
	f.StringVar(&c.location, "location", "", "Where the sale happened")
	f.StringVar(&c.time, "time", biztrack.Morning.String(), "Time-of-day window of the sale")
	f.StringVar(&c.rel, "rel", biztrack.Neutral.String(), "Relationship level after the sale")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.day == 0 || c.customer == "" || c.items == "" || c.total == 0 {
		fmt.Fprintln(os.Stderr, "Error: -day, -customer, -items and -total flags are required.")
		return subcommands.ExitUsageError
	}

	timeOfDay, err := biztrack.ParseTimeOfDay(c.time)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	relationship, err := biztrack.ParseRelationship(c.rel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	items, err := parseItems(ledger, c.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	sale, err := biztrack.NewSale(c.day, c.customer, items, biztrack.M(c.total), c.location, timeOfDay, relationship)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	// Validates the product references before anything is written.
	if err := ledger.Append(sale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return AppendSale(sale)
}

// parseItems expands "product:qty,..." pairs into line items, looking
// up each product's asking price in the catalog.
func parseItems(l *biztrack.Ledger, spec string) ([]biztrack.LineItem, error) {
	var items []biztrack.LineItem
	for _, pair := range strings.Split(spec, ",") {
		name, qty, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q: want product:qty", pair)
		}
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid quantity in item %q", pair)
		}
		p := l.Product(name)
		if p == nil {
			return nil, fmt.Errorf("unknown product %q", name)
		}
		items = append(items, biztrack.LineItem{Name: p.Name, Quantity: n, UnitPrice: p.SellPrice})
	}
	return items, nil
}
