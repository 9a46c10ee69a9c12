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

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the per-day sales summary" }
func (*dailyCmd) Usage() string {
	return `daily

  Displays the daily summary: totals, units, average rates, deals and
  per-customer and per-product breakdowns for every day with activity.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DailyMarkdown(biztrack.NewDailyReport(ledger)))
	return subcommands.ExitSuccess
}
