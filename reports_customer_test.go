package biztrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCustomerReport_Alice(t *testing.T) {
	l := setupLedger(t)
	report := NewCustomerReport(l)

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(report.Rows))
	}
	row := report.Rows[0]
	if row.Customer != "Alice" {
		t.Fatalf("Rows[0].Customer = %q, want Alice", row.Customer)
	}
	if got := row.TotalSales.String(); got != "$360.00" {
		t.Errorf("TotalSales = %s, want $360.00", got)
	}
	if row.UnitsSold != 9 {
		t.Errorf("UnitsSold = %d, want 9", row.UnitsSold)
	}
	if row.Deals != 3 {
		t.Errorf("Deals = %d, want 3", row.Deals)
	}
	if got := row.AvgSale.String(); got != "$120.00" {
		t.Errorf("AvgSale = %s, want $120.00", got)
	}
	if got := row.AvgUnits.StringFixed(2); got != "3.00" {
		t.Errorf("AvgUnits = %s, want 3.00", got)
	}
	// Unweighted mean of per-sale real rates (30, 60, 37.5).
	if got := row.AvgRate.StringFixed(2); got != "42.50" {
		t.Errorf("AvgRate = %s, want 42.50", got)
	}
	// Last relationship seen in ledger order wins.
	if row.Relationship != Friendly {
		t.Errorf("Relationship = %v, want Friendly", row.Relationship)
	}
}

func TestCustomerReport_AlphabeticalOrder(t *testing.T) {
	l := setupLedger(t)
	report := NewCustomerReport(l)

	want := []string{"Alice", "Bob", "Charlie"}
	for i, row := range report.Rows {
		if row.Customer != want[i] {
			t.Errorf("Rows[%d].Customer = %q, want %q", i, row.Customer, want[i])
		}
	}
}

// With two time-of-day values tied at two deals each, the one first
// encountered in ledger order must appear first in the breakdown.
func TestCustomerReport_TieBreakDeterminism(t *testing.T) {
	l := NewLedger()
	rate := decimal.NewFromInt(30)
	l.sales = []Sale{
		{Day: 1, Customer: "Alice", Units: 1, Total: M(30), RealRate: rate, AskRate: rate, Location: "Motel", TimeOfDay: Evening},
		{Day: 1, Customer: "Alice", Units: 1, Total: M(30), RealRate: rate, AskRate: rate, Location: "Park", TimeOfDay: Morning},
		{Day: 2, Customer: "Alice", Units: 1, Total: M(30), RealRate: rate, AskRate: rate, Location: "Park", TimeOfDay: Evening},
		{Day: 2, Customer: "Alice", Units: 1, Total: M(30), RealRate: rate, AskRate: rate, Location: "Motel", TimeOfDay: Morning},
	}

	row := NewCustomerReport(l).Rows[0]
	// Evening was seen before Morning; both have 2 deals.
	if want := "6PM-12AM (2), 6AM-12PM (2)"; row.TimesOfDay != want {
		t.Errorf("TimesOfDay = %q, want %q", row.TimesOfDay, want)
	}
	// Motel was seen before Park; both have 2 deals.
	if want := "Motel (2), Park (2)"; row.Locations != want {
		t.Errorf("Locations = %q, want %q", row.Locations, want)
	}
}

func TestCustomerRow_StringsMatchesHeaders(t *testing.T) {
	l := setupLedger(t)
	for _, row := range NewCustomerReport(l).Rows {
		if got := len(row.Strings()); got != len(CustomerSummaryHeaders) {
			t.Fatalf("row has %d columns, header has %d", got, len(CustomerSummaryHeaders))
		}
	}
}
