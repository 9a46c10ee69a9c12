package biztrack

import (
	"errors"
	"testing"
)

func TestLedger_AppendUnknownProduct(t *testing.T) {
	l := setupLedger(t)
	s, err := NewSale(4, "Alice", []LineItem{{Name: "Crack", Quantity: 1, UnitPrice: 90}}, M(90), "Motel", Evening, Friendly)
	if err != nil {
		t.Fatalf("NewSale() failed: %v", err)
	}

	err = l.Append(s)
	if err == nil {
		t.Fatal("Append() accepted a sale referencing an unknown product")
	}
	var unknown *UnknownProductError
	if !errors.As(err, &unknown) {
		t.Fatalf("Append() error is %T, want *UnknownProductError", err)
	}
	if unknown.Product != "Crack" || unknown.Day != 4 || unknown.Customer != "Alice" {
		t.Errorf("error context = %+v, want product Crack, day 4, customer Alice", unknown)
	}
}

func TestLedger_CustomerUpsert(t *testing.T) {
	l := setupLedger(t)

	alice := l.Customer("Alice")
	if alice == nil {
		t.Fatal("customer Alice was not created by her sales")
	}
	// Relationship is the last value seen in ledger order.
	if alice.Relationship != Friendly {
		t.Errorf("Alice relationship = %v, want Friendly", alice.Relationship)
	}
	// Locations accumulate in first-seen order, no duplicates.
	wantLocations := []string{"Motel", "Park"}
	if len(alice.Locations) != len(wantLocations) {
		t.Fatalf("Alice locations = %v, want %v", alice.Locations, wantLocations)
	}
	for i, want := range wantLocations {
		if alice.Locations[i] != want {
			t.Errorf("Alice locations[%d] = %q, want %q", i, alice.Locations[i], want)
		}
	}
}

func TestLedger_ProductEdits(t *testing.T) {
	l := setupLedger(t)

	p := l.Product("OG Kush")
	if p == nil {
		t.Fatal("Product(OG Kush) = nil")
	}
	p.SellPrice = 42
	if l.Product("OG Kush").SellPrice != 42 {
		t.Error("in-place price edit was lost")
	}

	if err := l.RenameProduct("OG Kush", "OG Kush Premium"); err != nil {
		t.Fatalf("RenameProduct() failed: %v", err)
	}
	if l.Product("OG Kush") != nil {
		t.Error("old name still resolves after rename")
	}
	if l.Product("OG Kush Premium") == nil {
		t.Error("new name does not resolve after rename")
	}

	// Rename keeps catalog order.
	var names []string
	for p := range l.Products() {
		names = append(names, p.Name)
	}
	if len(names) != 2 || names[0] != "OG Kush Premium" || names[1] != "Meth" {
		t.Errorf("catalog order after rename = %v", names)
	}

	if err := l.RemoveProduct("Meth"); err != nil {
		t.Fatalf("RemoveProduct() failed: %v", err)
	}
	if l.Product("Meth") != nil {
		t.Error("Meth still resolves after removal")
	}
	if err := l.RemoveProduct("Meth"); err == nil {
		t.Error("RemoveProduct() of a missing product did not fail")
	}
}

func TestLedger_SalesFilters(t *testing.T) {
	l := setupLedger(t)

	count := 0
	for _, s := range l.Sales(ByCustomer("Alice")) {
		if s.Customer != "Alice" {
			t.Errorf("ByCustomer yielded a sale to %q", s.Customer)
		}
		count++
	}
	if count != 3 {
		t.Errorf("ByCustomer(Alice) yielded %d sales, want 3", count)
	}

	count = 0
	for _, s := range l.Sales(ByDay(2)) {
		if s.Day != 2 {
			t.Errorf("ByDay yielded a sale on day %d", s.Day)
		}
		count++
	}
	if count != 2 {
		t.Errorf("ByDay(2) yielded %d sales, want 2", count)
	}
}

func TestLedger_AddCustomerSetsRegion(t *testing.T) {
	l := setupLedger(t)

	// Alice exists implicitly; explicit registration fills in the region.
	if err := l.AddCustomer("Alice", Westville); err != nil {
		t.Fatalf("AddCustomer() failed: %v", err)
	}
	if got := l.Customer("Alice").Region; got != Westville {
		t.Errorf("Alice region = %v, want Westville", got)
	}
}
