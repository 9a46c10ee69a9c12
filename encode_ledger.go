package biztrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSV headers of the three ledger stores. The first row of each store is
// its header and is skipped on decode.
var (
	SalesCSVHeaders    = RawDataHeaders
	ProductCSVHeaders  = []string{"PRODUCT", "MATERIALS", "TIMEFRAME", "YIELD", "SELL PRICE"}
	CustomerCSVHeaders = []string{"CUSTOMER", "REGION", "LOCATIONS", "RELATIONSHIP"}
)

// DecodeLedger reads the three CSV stores into a fresh in-memory
// snapshot. Products and customers are decoded first so that sales land
// on a populated catalog. Decode never skips a bad record: errors carry
// the store name and 1-based line so the caller can surface which record
// failed.
func DecodeLedger(products, customers, sales io.Reader) (*Ledger, error) {
	l := NewLedger()
	if products != nil {
		if err := decodeProducts(products, l); err != nil {
			return nil, err
		}
	}
	if customers != nil {
		if err := decodeCustomers(customers, l); err != nil {
			return nil, err
		}
	}
	if sales != nil {
		if err := decodeSales(sales, l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// newCSVReader configures a reader for a ledger store. Field count is not
// fixed by the csv package so that a misshapen row yields our own error
// with line context.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr
}

func decodeSales(r io.Reader, l *Ledger) error {
	cr := newCSVReader(r)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("sales store line %d: %w", line, err)
		}
		if line == 1 {
			continue // header row
		}
		s, err := decodeSaleRecord(record)
		if err != nil {
			return fmt.Errorf("sales store line %d: %w", line, err)
		}
		// History legitimately outlives deleted catalog entries, so the
		// catalog check of Append does not apply here.
		l.sales = append(l.sales, s)
		l.upsertCustomer(s)
	}
}

func decodeSaleRecord(record []string) (Sale, error) {
	if len(record) != len(SalesCSVHeaders) {
		return Sale{}, fmt.Errorf("want %d fields, got %d", len(SalesCSVHeaders), len(record))
	}
	day, err := strconv.Atoi(record[0])
	if err != nil {
		return Sale{}, fmt.Errorf("day %q is not an integer", record[0])
	}
	units, err := strconv.Atoi(record[2])
	if err != nil {
		return Sale{}, fmt.Errorf("units %q is not an integer", record[2])
	}
	total, err := decimal.NewFromString(record[3])
	if err != nil {
		return Sale{}, fmt.Errorf("total sales %q is not a number", record[3])
	}
	realRate, err := decimal.NewFromString(record[4])
	if err != nil {
		return Sale{}, fmt.Errorf("real rate %q is not a number", record[4])
	}
	askRate, err := decimal.NewFromString(record[5])
	if err != nil {
		return Sale{}, fmt.Errorf("ask rate %q is not a number", record[5])
	}
	items, err := DecodeItems(record[6])
	if err != nil {
		return Sale{}, err
	}
	timeOfDay, err := ParseTimeOfDay(record[8])
	if err != nil {
		return Sale{}, err
	}
	relationship, err := ParseRelationship(record[9])
	if err != nil {
		return Sale{}, err
	}
	return Sale{
		Day:          day,
		Customer:     record[1],
		Units:        units,
		Total:        M(total),
		RealRate:     realRate,
		AskRate:      askRate,
		Items:        items,
		Location:     record[7],
		TimeOfDay:    timeOfDay,
		Relationship: relationship,
	}, nil
}

func decodeProducts(r io.Reader, l *Ledger) error {
	cr := newCSVReader(r)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("product store line %d: %w", line, err)
		}
		if line == 1 {
			continue
		}
		p, err := decodeProductRecord(record)
		if err != nil {
			return fmt.Errorf("product store line %d: %w", line, err)
		}
		if err := l.AddProduct(p); err != nil {
			return fmt.Errorf("product store line %d: %w", line, err)
		}
	}
}

func decodeProductRecord(record []string) (Product, error) {
	if len(record) != len(ProductCSVHeaders) {
		return Product{}, fmt.Errorf("want %d fields, got %d", len(ProductCSVHeaders), len(record))
	}
	materials, err := DecodeItems(record[1])
	if err != nil {
		return Product{}, err
	}
	timeframe, err := strconv.Atoi(record[2])
	if err != nil {
		return Product{}, fmt.Errorf("timeframe %q is not an integer", record[2])
	}
	yield, err := strconv.Atoi(record[3])
	if err != nil {
		return Product{}, fmt.Errorf("yield %q is not an integer", record[3])
	}
	price, err := strconv.Atoi(record[4])
	if err != nil {
		return Product{}, fmt.Errorf("sell price %q is not an integer", record[4])
	}
	return Product{
		Name:           record[0],
		Materials:      materials,
		TimeframeHours: timeframe,
		YieldAmount:    yield,
		SellPrice:      price,
	}, nil
}

func decodeCustomers(r io.Reader, l *Ledger) error {
	cr := newCSVReader(r)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("customer store line %d: %w", line, err)
		}
		if line == 1 {
			continue
		}
		if len(record) != len(CustomerCSVHeaders) {
			return fmt.Errorf("customer store line %d: want %d fields, got %d", line, len(CustomerCSVHeaders), len(record))
		}
		region, err := ParseRegion(record[1])
		if err != nil {
			return fmt.Errorf("customer store line %d: %w", line, err)
		}
		relationship, err := ParseRelationship(record[3])
		if err != nil {
			return fmt.Errorf("customer store line %d: %w", line, err)
		}
		c := &Customer{
			Name:         record[0],
			Region:       region,
			Relationship: relationship,
		}
		if record[2] != "" {
			c.Locations = strings.Split(record[2], "|")
		}
		if _, exists := l.customerIx[c.Name]; exists {
			return fmt.Errorf("customer store line %d: customer %q already exists", line, c.Name)
		}
		l.customers = append(l.customers, c)
		l.customerIx[c.Name] = c
	}
}

// EncodeSale appends one sale as a single CSV record, no header. This is
// the capture-time append path.
func EncodeSale(w io.Writer, s Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(saleRecord(s)); err != nil {
		return fmt.Errorf("could not write sale: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func saleRecord(s Sale) []string {
	return []string{
		strconv.Itoa(s.Day),
		s.Customer,
		strconv.Itoa(s.Units),
		s.Total.Decimal().String(),
		s.RealRate.String(),
		s.AskRate.String(),
		EncodeItems(s.Items),
		s.Location,
		s.TimeOfDay.String(),
		s.Relationship.String(),
	}
}

// EncodeProduct appends one catalog entry as a single CSV record.
func EncodeProduct(w io.Writer, p *Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(productRecord(p)); err != nil {
		return fmt.Errorf("could not write product: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func productRecord(p *Product) []string {
	return []string{
		p.Name,
		EncodeItems(p.Materials),
		strconv.Itoa(p.TimeframeHours),
		strconv.Itoa(p.YieldAmount),
		strconv.Itoa(p.SellPrice),
	}
}

// EncodeCustomer appends one customer as a single CSV record.
func EncodeCustomer(w io.Writer, c *Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(customerRecord(c)); err != nil {
		return fmt.Errorf("could not write customer: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func customerRecord(c *Customer) []string {
	return []string{
		c.Name,
		c.Region.String(),
		strings.Join(c.Locations, "|"),
		c.Relationship.String(),
	}
}

// EncodeLedger writes the full snapshot back to the three stores in
// canonical form, header row first. Running it against an unchanged
// snapshot reproduces the same bytes.
func EncodeLedger(products, customers, sales io.Writer, l *Ledger) error {
	pw := csv.NewWriter(products)
	if err := pw.Write(ProductCSVHeaders); err != nil {
		return err
	}
	for p := range l.Products() {
		if err := pw.Write(productRecord(p)); err != nil {
			return err
		}
	}
	pw.Flush()
	if err := pw.Error(); err != nil {
		return fmt.Errorf("could not write product store: %w", err)
	}

	cw := csv.NewWriter(customers)
	if err := cw.Write(CustomerCSVHeaders); err != nil {
		return err
	}
	for c := range l.Customers() {
		if err := cw.Write(customerRecord(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not write customer store: %w", err)
	}

	sw := csv.NewWriter(sales)
	if err := sw.Write(SalesCSVHeaders); err != nil {
		return err
	}
	for _, s := range l.Sales() {
		if err := sw.Write(saleRecord(s)); err != nil {
			return err
		}
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return fmt.Errorf("could not write sales store: %w", err)
	}
	return nil
}
