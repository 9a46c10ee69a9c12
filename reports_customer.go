package biztrack

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// CustomerRow is one customer of the customer summary.
type CustomerRow struct {
	Customer     string
	TotalSales   Money
	UnitsSold    int
	Deals        int
	AvgSale      Money
	AvgUnits     decimal.Decimal
	AvgRate      decimal.Decimal // unweighted mean of per-sale real rates
	Relationship Relationship
	TimesOfDay   string // "6PM-12AM (3), 6AM-12PM (1)"
	Locations    string
}

// Strings renders the row in CustomerSummaryHeaders order.
func (r CustomerRow) Strings() []string {
	return []string{
		r.Customer,
		r.TotalSales.String(),
		strconv.Itoa(r.UnitsSold),
		strconv.Itoa(r.Deals),
		r.AvgSale.String(),
		r.AvgUnits.StringFixed(2),
		r.AvgRate.StringFixed(2),
		r.Relationship.String(),
		r.TimesOfDay,
		r.Locations,
	}
}

// CustomerReport summarizes the ledger per customer, rows ascending
// alphabetically by name.
type CustomerReport struct {
	Rows []CustomerRow
}

type customerGroup struct {
	name         string
	totalSales   Money
	unitsSold    int
	deals        int
	rateSum      decimal.Decimal
	relationship Relationship // last value seen in ledger order
	timesOfDay   *freqCounter
	locations    *freqCounter
}

// NewCustomerReport runs the by-customer aggregation pass. The frequency
// breakdowns sort by count descending with the first-seen-in-ledger-order
// value winning ties.
func NewCustomerReport(l *Ledger) *CustomerReport {
	groups := make([]*customerGroup, 0)
	index := make(map[string]*customerGroup)

	for _, s := range l.Sales() {
		g, ok := index[s.Customer]
		if !ok {
			g = &customerGroup{
				name:       s.Customer,
				timesOfDay: newFreqCounter(),
				locations:  newFreqCounter(),
			}
			groups = append(groups, g)
			index[s.Customer] = g
		}
		g.totalSales = g.totalSales.Add(s.Total)
		g.unitsSold += s.Units
		g.deals++
		g.rateSum = g.rateSum.Add(s.RealRate)
		g.relationship = s.Relationship
		g.timesOfDay.Add(s.TimeOfDay.String(), 1)
		g.locations.Add(s.Location, 1)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })

	report := &CustomerReport{Rows: make([]CustomerRow, 0, len(groups))}
	for _, g := range groups {
		deals := decimal.NewFromInt(int64(g.deals))
		report.Rows = append(report.Rows, CustomerRow{
			Customer:     g.name,
			TotalSales:   g.totalSales.Round2(),
			UnitsSold:    g.unitsSold,
			Deals:        g.deals,
			AvgSale:      g.totalSales.DivInt(g.deals).Round2(),
			AvgUnits:     decimal.NewFromInt(int64(g.unitsSold)).Div(deals).Round(2),
			AvgRate:      g.rateSum.Div(deals).Round(2),
			Relationship: g.relationship,
			TimesOfDay:   g.timesOfDay.Format(),
			Locations:    g.locations.Format(),
		})
	}
	return report
}
