package biztrack

import (
	"fmt"
	"iter"
	"log"
)

// UnknownProductError reports a sale referencing a product name absent
// from the catalog. Entry capture validates references before appending,
// so reaching this during aggregation is a data-integrity fault.
type UnknownProductError struct {
	Product  string
	Day      int
	Customer string
}

func (e *UnknownProductError) Error() string {
	if e.Day == 0 && e.Customer == "" {
		return fmt.Sprintf("unknown product %q", e.Product)
	}
	return fmt.Sprintf("unknown product %q in sale on day %d to %q", e.Product, e.Day, e.Customer)
}

// Ledger is the in-memory snapshot of all records: the append-only sales
// history, the product catalog and the customer list. The reporting
// engine only ever reads it; a report run assumes exclusive read access.
//
// Products and customers keep their registration order. Sales keep their
// original ledger order.
type Ledger struct {
	sales      []Sale
	products   []*Product
	productIx  map[string]*Product
	customers  []*Customer
	customerIx map[string]*Customer
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		productIx:  make(map[string]*Product),
		customerIx: make(map[string]*Customer),
	}
}

// Append validates a sale against the catalog and appends it, updating
// the customer record (first sale creates it, later sales accumulate
// locations and overwrite the relationship).
func (l *Ledger) Append(sales ...Sale) error {
	for _, s := range sales {
		for _, it := range s.Items {
			if _, ok := l.productIx[it.Name]; !ok {
				return &UnknownProductError{Product: it.Name, Day: s.Day, Customer: s.Customer}
			}
		}
		l.sales = append(l.sales, s)
		l.upsertCustomer(s)
	}
	return nil
}

func (l *Ledger) upsertCustomer(s Sale) {
	c, ok := l.customerIx[s.Customer]
	if !ok {
		c = &Customer{Name: s.Customer}
		l.customers = append(l.customers, c)
		l.customerIx[s.Customer] = c
		log.Printf("day %d: new customer %q", s.Day, s.Customer)
	}
	c.addLocation(s.Location)
	c.Relationship = s.Relationship // last value seen wins
}

// AddProduct registers a new catalog entry. Product names are unique.
func (l *Ledger) AddProduct(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := l.productIx[p.Name]; exists {
		return fmt.Errorf("product %q already exists", p.Name)
	}
	entry := p
	l.products = append(l.products, &entry)
	l.productIx[p.Name] = &entry
	return nil
}

// Product returns the catalog entry with this name, or nil if unknown.
// The returned entry may be edited in place.
func (l *Ledger) Product(name string) *Product {
	return l.productIx[name]
}

// RenameProduct changes a catalog entry's name, keeping its position.
func (l *Ledger) RenameProduct(oldName, newName string) error {
	p := l.productIx[oldName]
	if p == nil {
		return &UnknownProductError{Product: oldName}
	}
	if newName == "" {
		return fmt.Errorf("product name is missing")
	}
	if _, exists := l.productIx[newName]; exists {
		return fmt.Errorf("product %q already exists", newName)
	}
	delete(l.productIx, oldName)
	p.Name = newName
	l.productIx[newName] = p
	return nil
}

// RemoveProduct deletes a catalog entry.
func (l *Ledger) RemoveProduct(name string) error {
	p := l.productIx[name]
	if p == nil {
		return &UnknownProductError{Product: name}
	}
	delete(l.productIx, name)
	for i, entry := range l.products {
		if entry == p {
			l.products = append(l.products[:i], l.products[i+1:]...)
			break
		}
	}
	return nil
}

// AddCustomer registers a customer explicitly (with a region), or sets
// the region on a customer created implicitly by an earlier sale.
func (l *Ledger) AddCustomer(name string, region Region) error {
	if name == "" {
		return fmt.Errorf("customer name is missing")
	}
	if c, ok := l.customerIx[name]; ok {
		c.Region = region
		return nil
	}
	c := &Customer{Name: name, Region: region}
	l.customers = append(l.customers, c)
	l.customerIx[name] = c
	return nil
}

// Customer returns the record with this name, or nil if unknown.
func (l *Ledger) Customer(name string) *Customer {
	return l.customerIx[name]
}

// Sales returns an iterator over sales in original ledger order. With
// filters, a sale is yielded when any filter accepts it.
func (l *Ledger) Sales(filters ...func(Sale) bool) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(s) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Products iterates over catalog entries in registration order.
func (l *Ledger) Products() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, p := range l.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Customers iterates over customers in first-seen order.
func (l *Ledger) Customers() iter.Seq[*Customer] {
	return func(yield func(*Customer) bool) {
		for _, c := range l.customers {
			if !yield(c) {
				return
			}
		}
	}
}

// ByCustomer returns a predicate that filters sales by customer name.
func ByCustomer(name string) func(Sale) bool {
	return func(s Sale) bool { return s.Customer == name }
}

// ByDay returns a predicate that filters sales by day.
func ByDay(day int) func(Sale) bool {
	return func(s Sale) bool { return s.Day == day }
}
