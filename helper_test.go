package biztrack

import "testing"

// setupLedger creates a small but representative snapshot: two products,
// three customers and a few days of sales.
func setupLedger(t *testing.T) *Ledger {
	t.Helper()

	l := NewLedger()
	products := []Product{
		{
			Name:           "OG Kush",
			Materials:      []LineItem{{Name: "Seed", Quantity: 1, UnitPrice: 30}, {Name: "Bag", Quantity: 1, UnitPrice: 1}},
			TimeframeHours: 12,
			YieldAmount:    8,
			SellPrice:      38,
		},
		{
			Name:           "Meth",
			Materials:      []LineItem{{Name: "Pseudo", Quantity: 1, UnitPrice: 60}, {Name: "Acid", Quantity: 1, UnitPrice: 40}},
			TimeframeHours: 6,
			YieldAmount:    10,
			SellPrice:      70,
		},
	}
	for _, p := range products {
		if err := l.AddProduct(p); err != nil {
			t.Fatalf("AddProduct(%q) failed: %v", p.Name, err)
		}
	}

	mustSale := func(day int, customer string, items []LineItem, total int, location string, tod TimeOfDay, rel Relationship) {
		t.Helper()
		s, err := NewSale(day, customer, items, M(total), location, tod, rel)
		if err != nil {
			t.Fatalf("NewSale(day %d, %q) failed: %v", day, customer, err)
		}
		if err := l.Append(s); err != nil {
			t.Fatalf("Append(day %d, %q) failed: %v", day, customer, err)
		}
	}

	mustSale(1, "Alice", []LineItem{{Name: "OG Kush", Quantity: 3, UnitPrice: 38}}, 90, "Motel", Evening, Neutral)
	mustSale(1, "Bob", []LineItem{{Name: "OG Kush", Quantity: 2, UnitPrice: 38}}, 50, "Gas Mart", Morning, Unfriendly)
	mustSale(2, "Alice", []LineItem{{Name: "Meth", Quantity: 1, UnitPrice: 70}, {Name: "OG Kush", Quantity: 1, UnitPrice: 38}}, 120, "Park", Evening, Friendly)
	mustSale(2, "Charlie", []LineItem{{Name: "Meth", Quantity: 2, UnitPrice: 70}}, 140, "Park", Night, Neutral)
	mustSale(3, "Alice", []LineItem{{Name: "OG Kush", Quantity: 4, UnitPrice: 38}}, 150, "Motel", Morning, Friendly)

	return l
}
