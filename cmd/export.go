package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
	"github.com/mattpdg/biztrack/xlsx"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every report to a spreadsheet workbook" }
func (*exportCmd) Usage() string {
	return `export [-o <file.xlsx>]

  Writes the daily, customer, product and raw reports to a styled
  workbook, one sheet each, plus a Trends sheet of line charts over the
  daily metrics.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "business_report.xlsx", "Workbook file to write")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	err = xlsx.Write(c.output,
		biztrack.NewDailyReport(ledger),
		biztrack.NewCustomerReport(ledger),
		biztrack.NewProductReport(ledger),
		biztrack.NewRawReport(ledger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully exported reports to %s\n", c.output)
	return subcommands.ExitSuccess
}
