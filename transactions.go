package biztrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TimeOfDay is the six-hour window a sale happened in.
type TimeOfDay int

const (
	Morning   TimeOfDay = iota // 6AM-12PM
	Afternoon                  // 12PM-6PM
	Evening                    // 6PM-12AM
	Night                      // 12AM-6AM
)

// TimeOfDayOptions lists the windows in menu order.
var TimeOfDayOptions = []TimeOfDay{Morning, Afternoon, Evening, Night}

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "6AM-12PM"
	case Afternoon:
		return "12PM-6PM"
	case Evening:
		return "6PM-12AM"
	case Night:
		return "12AM-6AM"
	default:
		return "unknown"
	}
}

// ParseTimeOfDay parses the window's wire representation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, t := range TimeOfDayOptions {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown time of day: %q", s)
}

// Relationship is the standing a customer has with the player.
type Relationship int

const (
	Hostile Relationship = iota
	Unfriendly
	Neutral
	Friendly
	Loyal
)

// RelationshipOptions lists the levels from worst to best.
var RelationshipOptions = []Relationship{Hostile, Unfriendly, Neutral, Friendly, Loyal}

func (r Relationship) String() string {
	switch r {
	case Hostile:
		return "Hostile"
	case Unfriendly:
		return "Unfriendly"
	case Neutral:
		return "Neutral"
	case Friendly:
		return "Friendly"
	case Loyal:
		return "Loyal"
	default:
		return "unknown"
	}
}

// ParseRelationship parses a relationship level.
func ParseRelationship(s string) (Relationship, error) {
	for _, r := range RelationshipOptions {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown relationship: %q", s)
}

// Sale is one completed sale. Sales are append-only: once in the ledger a
// Sale is never mutated. Units, RealRate and AskRate are always derived
// from the items and the total, never entered directly.
type Sale struct {
	Day          int
	Customer     string
	Units        int             // sum of item quantities
	Total        Money           // total sales amount
	RealRate     decimal.Decimal // Total / Units
	AskRate      decimal.Decimal // Σ(quantity×unit price) / Units
	Items        []LineItem      // products sold, with catalog ask prices
	Location     string
	TimeOfDay    TimeOfDay
	Relationship Relationship
}

// NewSale builds a Sale, deriving the unit count and both rates from the
// line items and the total. Item names must already be sanitized and
// resolved against the catalog by the caller.
func NewSale(day int, customer string, items []LineItem, total Money, location string, timeOfDay TimeOfDay, relationship Relationship) (Sale, error) {
	if day < 1 {
		return Sale{}, fmt.Errorf("invalid day %d: must be >= 1", day)
	}
	if customer == "" {
		return Sale{}, fmt.Errorf("customer name is missing")
	}
	units := 0
	askValue := 0
	for _, it := range items {
		if it.Quantity < 1 {
			return Sale{}, fmt.Errorf("item %q has invalid quantity %d", it.Name, it.Quantity)
		}
		units += it.Quantity
		askValue += it.Quantity * it.UnitPrice
	}
	if units == 0 {
		return Sale{}, fmt.Errorf("sale has no items")
	}
	du := decimal.NewFromInt(int64(units))
	return Sale{
		Day:          day,
		Customer:     customer,
		Units:        units,
		Total:        total,
		RealRate:     total.Decimal().Div(du),
		AskRate:      decimal.NewFromInt(int64(askValue)).Div(du),
		Items:        items,
		Location:     location,
		TimeOfDay:    timeOfDay,
		Relationship: relationship,
	}, nil
}
