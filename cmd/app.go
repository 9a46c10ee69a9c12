// Package cmd implements the CLI application to track sales and render
// the reports.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/mattpdg/biztrack"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&saleCmd{}, "capture")
	c.Register(&addProductCmd{}, "capture")
	c.Register(&setProductCmd{}, "capture")
	c.Register(&rmProductCmd{}, "capture")
	c.Register(&addCustomerCmd{}, "capture")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&customersCmd{}, "reports")
	c.Register(&productsCmd{}, "reports")
	c.Register(&rawCmd{}, "reports")

	c.Register(&exportCmd{}, "export")
	c.Register(&fmtCmd{}, "export")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", ".biztrack", "Path to the folder holding the ledger CSV stores")

func salesPath() string     { return filepath.Join(*ledgerDir, "sales.csv") }
func productsPath() string  { return filepath.Join(*ledgerDir, "products.csv") }
func customersPath() string { return filepath.Join(*ledgerDir, "customers.csv") }

// DecodeStores loads the ledger from the three CSV stores. A missing
// store loads as empty, so the first run works on a bare directory.
func DecodeStores() (*biztrack.Ledger, error) {
	paths := []string{productsPath(), customersPath(), salesPath()}
	readers := make([]io.Reader, len(paths))
	for i, p := range paths {
		f, err := os.Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, store %q does not exist, starting empty", p)
			continue
		}
		if err != nil {
			return nil, err
		}
		defer f.Close()
		readers[i] = f
	}
	return biztrack.DecodeLedger(readers[0], readers[1], readers[2])
}

// appendStore opens a store in append mode, writing the header row
// first when the store is new or empty.
func appendStore(path string, headers []string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		if _, err := io.WriteString(f, strings.Join(headers, ",")+"\n"); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// AppendSale appends a single sale to the sales store.
func AppendSale(s biztrack.Sale) subcommands.ExitStatus {
	f, err := appendStore(salesPath(), biztrack.SalesCSVHeaders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sales store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := biztrack.EncodeSale(f, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to sales store %q: %v\n", salesPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended sale to %s\n", salesPath())
	return subcommands.ExitSuccess
}

// AppendProduct appends a single catalog entry to the products store.
func AppendProduct(p *biztrack.Product) subcommands.ExitStatus {
	f, err := appendStore(productsPath(), biztrack.ProductCSVHeaders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening products store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := biztrack.EncodeProduct(f, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to products store %q: %v\n", productsPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended product to %s\n", productsPath())
	return subcommands.ExitSuccess
}

// AppendCustomer appends a single customer to the customers store.
func AppendCustomer(c *biztrack.Customer) subcommands.ExitStatus {
	f, err := appendStore(customersPath(), biztrack.CustomerCSVHeaders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening customers store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := biztrack.EncodeCustomer(f, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to customers store %q: %v\n", customersPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended customer to %s\n", customersPath())
	return subcommands.ExitSuccess
}

// RewriteStores writes the whole ledger back to the three stores in
// canonical form. Mutating commands (set-product, rm-product, fmt) go
// through here.
func RewriteStores(l *biztrack.Ledger) error {
	if err := os.MkdirAll(*ledgerDir, 0755); err != nil {
		return err
	}
	products, err := os.Create(productsPath())
	if err != nil {
		return err
	}
	defer products.Close()
	customers, err := os.Create(customersPath())
	if err != nil {
		return err
	}
	defer customers.Close()
	sales, err := os.Create(salesPath())
	if err != nil {
		return err
	}
	defer sales.Close()

	return biztrack.EncodeLedger(products, customers, sales, l)
}
