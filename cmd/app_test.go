package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
)

// withTempLedgerDir points the global -ledger-dir at a fresh directory.
func withTempLedgerDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := ledgerDir
	ledgerDir = &dir
	t.Cleanup(func() { ledgerDir = old })
	return dir
}

func run(t *testing.T, cmd subcommands.Command) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	return cmd.Execute(context.Background(), f)
}

func TestAddProductThenSale(t *testing.T) {
	dir := withTempLedgerDir(t)

	status := run(t, &addProductCmd{
		name:      "OG Kush",
		materials: "Seed:1:30|Bag:1:1",
		timeframe: 12,
		yield:     8,
		price:     38,
	})
	if status != subcommands.ExitSuccess {
		t.Fatalf("add-product: got %v, want ExitSuccess", status)
	}

	status = run(t, &saleCmd{
		day:      1,
		customer: "Alice",
		items:    "OG Kush:3",
		total:    90,
		location: "Motel",
		time:     "6PM-12AM",
		rel:      "Neutral",
	})
	if status != subcommands.ExitSuccess {
		t.Fatalf("sale: got %v, want ExitSuccess", status)
	}

	// Both stores carry a header row plus one record.
	for _, name := range []string{"products.csv", "sales.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) != 2 {
			t.Errorf("%s has %d lines, want 2:\n%s", name, len(lines), data)
		}
	}

	ledger, err := DecodeStores()
	if err != nil {
		t.Fatalf("DecodeStores: %v", err)
	}
	var sales []biztrack.Sale
	for _, s := range ledger.Sales() {
		sales = append(sales, s)
	}
	if len(sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(sales))
	}
	s := sales[0]
	if s.Customer != "Alice" || s.Units != 3 || !s.Total.Equal(biztrack.M(90)) {
		t.Errorf("unexpected decoded sale: %+v", s)
	}
	// The asking price came from the catalog.
	if len(s.Items) != 1 || s.Items[0].UnitPrice != 38 {
		t.Errorf("unexpected items: %+v", s.Items)
	}
}

func TestSale_UnknownProduct(t *testing.T) {
	withTempLedgerDir(t)

	status := run(t, &saleCmd{
		day:      1,
		customer: "Alice",
		items:    "Nope:3",
		total:    90,
		time:     "6PM-12AM",
		rel:      "Neutral",
	})
	if status != subcommands.ExitUsageError {
		t.Errorf("got %v, want ExitUsageError", status)
	}
}

func TestSale_MissingFlags(t *testing.T) {
	withTempLedgerDir(t)

	if status := run(t, &saleCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("got %v, want ExitUsageError", status)
	}
}

func TestSetProduct_Rename(t *testing.T) {
	withTempLedgerDir(t)

	run(t, &addProductCmd{name: "OG Kush", timeframe: 12, yield: 8, price: 38})
	status := run(t, &setProductCmd{name: "OG Kush", rename: "Sour Diesel", price: 40})
	if status != subcommands.ExitSuccess {
		t.Fatalf("set-product: got %v, want ExitSuccess", status)
	}

	ledger, err := DecodeStores()
	if err != nil {
		t.Fatalf("DecodeStores: %v", err)
	}
	if ledger.Product("OG Kush") != nil {
		t.Error("old name still in catalog after rename")
	}
	p := ledger.Product("Sour Diesel")
	if p == nil {
		t.Fatal("renamed product missing from catalog")
	}
	if p.SellPrice != 40 {
		t.Errorf("SellPrice = %d, want 40", p.SellPrice)
	}
}

func TestRmProduct_KeepsSalesHistory(t *testing.T) {
	withTempLedgerDir(t)

	run(t, &addProductCmd{name: "OG Kush", timeframe: 12, yield: 8, price: 38})
	run(t, &saleCmd{day: 1, customer: "Alice", items: "OG Kush:3", total: 90, time: "6PM-12AM", rel: "Neutral"})

	if status := run(t, &rmProductCmd{name: "OG Kush"}); status != subcommands.ExitSuccess {
		t.Fatalf("rm-product: got %v, want ExitSuccess", status)
	}

	ledger, err := DecodeStores()
	if err != nil {
		t.Fatalf("DecodeStores: %v", err)
	}
	if ledger.Product("OG Kush") != nil {
		t.Error("product still in catalog after removal")
	}
	count := 0
	for range ledger.Sales() {
		count++
	}
	if count != 1 {
		t.Errorf("got %d sales after product removal, want 1", count)
	}
}

func TestAddCustomer_SetsRegionOnImplicitCustomer(t *testing.T) {
	withTempLedgerDir(t)

	run(t, &addProductCmd{name: "OG Kush", timeframe: 12, yield: 8, price: 38})
	run(t, &saleCmd{day: 1, customer: "Alice", items: "OG Kush:3", total: 90, location: "Motel", time: "6PM-12AM", rel: "Neutral"})

	status := run(t, &addCustomerCmd{name: "Alice", region: "Westville"})
	if status != subcommands.ExitSuccess {
		t.Fatalf("add-customer: got %v, want ExitSuccess", status)
	}

	ledger, err := DecodeStores()
	if err != nil {
		t.Fatalf("DecodeStores: %v", err)
	}
	c := ledger.Customer("Alice")
	if c == nil {
		t.Fatal("customer missing")
	}
	if c.Region != biztrack.Westville {
		t.Errorf("Region = %s, want Westville", c.Region)
	}
	// Locations from the earlier sale survive the rewrite.
	if len(c.Locations) != 1 || c.Locations[0] != "Motel" {
		t.Errorf("Locations = %v, want [Motel]", c.Locations)
	}
}

func TestFmt_RewritesCanonically(t *testing.T) {
	dir := withTempLedgerDir(t)

	run(t, &addProductCmd{name: "OG Kush", timeframe: 12, yield: 8, price: 38})
	run(t, &saleCmd{day: 1, customer: "Alice", items: "OG Kush:3", total: 90, time: "6PM-12AM", rel: "Neutral"})

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt: got %v, want ExitSuccess", status)
	}

	// All three stores exist afterwards, each starting with its header.
	headers := map[string][]string{
		"sales.csv":     biztrack.SalesCSVHeaders,
		"products.csv":  biztrack.ProductCSVHeaders,
		"customers.csv": biztrack.CustomerCSVHeaders,
	}
	for name, want := range headers {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		first := strings.SplitN(string(data), "\n", 2)[0]
		if first != strings.Join(want, ",") {
			t.Errorf("%s header = %q, want %q", name, first, strings.Join(want, ","))
		}
	}
}

func TestExport_WritesWorkbook(t *testing.T) {
	dir := withTempLedgerDir(t)

	run(t, &addProductCmd{name: "OG Kush", timeframe: 12, yield: 8, price: 38})
	run(t, &saleCmd{day: 1, customer: "Alice", items: "OG Kush:3", total: 90, time: "6PM-12AM", rel: "Neutral"})

	out := filepath.Join(dir, "report.xlsx")
	if status := run(t, &exportCmd{output: out}); status != subcommands.ExitSuccess {
		t.Fatalf("export: got %v, want ExitSuccess", status)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestDecodeStores_MissingDir(t *testing.T) {
	withTempLedgerDir(t)

	ledger, err := DecodeStores()
	if err != nil {
		t.Fatalf("DecodeStores on empty dir: %v", err)
	}
	count := 0
	for range ledger.Sales() {
		count++
	}
	if count != 0 {
		t.Errorf("empty stores decoded %d sales", count)
	}
}
