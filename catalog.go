package biztrack

import "fmt"

// Product is one catalog entry: the recipe and economics of something the
// player can produce and sell. Entries are unique by name and mutable in
// place; the catalog keeps them in registration order.
type Product struct {
	Name           string
	Materials      []LineItem // materials consumed per batch
	TimeframeHours int        // hours to produce one batch
	YieldAmount    int        // units produced per batch
	SellPrice      int        // asking price per unit
}

// Validate checks the catalog entry invariants.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is missing")
	}
	if p.TimeframeHours < 1 {
		return fmt.Errorf("product %q: timeframe must be >= 1 hour, got %d", p.Name, p.TimeframeHours)
	}
	if p.YieldAmount < 1 {
		return fmt.Errorf("product %q: yield must be >= 1 unit, got %d", p.Name, p.YieldAmount)
	}
	for _, m := range p.Materials {
		if m.Quantity < 1 {
			return fmt.Errorf("product %q: material %q has invalid quantity %d", p.Name, m.Name, m.Quantity)
		}
	}
	return nil
}

// Region is the part of the map a customer lives in.
type Region int

const (
	RegionUnknown Region = iota // customer seen in a sale but never registered
	Northtown
	Westville
	Downtown
	Docks
	Suburbia
	Uptown
)

// RegionOptions lists the named regions.
var RegionOptions = []Region{Northtown, Westville, Downtown, Docks, Suburbia, Uptown}

func (r Region) String() string {
	switch r {
	case Northtown:
		return "Northtown"
	case Westville:
		return "Westville"
	case Downtown:
		return "Downtown"
	case Docks:
		return "Docks"
	case Suburbia:
		return "Suburbia"
	case Uptown:
		return "Uptown"
	default:
		return "Unknown"
	}
}

// ParseRegion parses a region name. "Unknown" is accepted so that encoded
// customers created implicitly by a sale decode back unchanged.
func ParseRegion(s string) (Region, error) {
	if s == "Unknown" {
		return RegionUnknown, nil
	}
	for _, r := range RegionOptions {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown region: %q", s)
}

// Customer is one known customer. Locations accumulate in first-seen
// order; Relationship always holds the last value seen in ledger order.
type Customer struct {
	Name         string
	Region       Region
	Locations    []string
	Relationship Relationship
}

// addLocation records a location the customer was sold to at, keeping
// first-seen order and ignoring duplicates.
func (c *Customer) addLocation(location string) {
	if location == "" {
		return
	}
	for _, known := range c.Locations {
		if known == location {
			return
		}
	}
	c.Locations = append(c.Locations, location)
}
