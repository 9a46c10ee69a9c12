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

type rawCmd struct {
	head int
	tail int
}

func (*rawCmd) Name() string     { return "raw" }
func (*rawCmd) Synopsis() string { return "list every sale in ledger order" }
func (*rawCmd) Usage() string {
	return `raw [-head <n>] [-tail <n>]

  Lists every recorded sale in the order it was captured, with the
  compound products field decoded for readability.
`
}

func (c *rawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N sales.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N sales.")
}

func (c *rawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report := biztrack.NewRawReport(ledger)
	if c.head > 0 && len(report.Rows) > c.head {
		report.Rows = report.Rows[:c.head]
	}
	if c.tail > 0 && len(report.Rows) > c.tail {
		report.Rows = report.Rows[len(report.Rows)-c.tail:]
	}

	printMarkdown(renderer.RawMarkdown(report))
	return subcommands.ExitSuccess
}
