package biztrack

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DailyRow is one day of the daily summary. Monetary and rate values are
// already rounded to two decimals; the breakdown strings are final.
type DailyRow struct {
	Day         int
	TotalSales  Money
	UnitsSold   int
	AvgRealRate decimal.Decimal
	AvgAskRate  decimal.Decimal
	Deals       int
	Products    string // per-product quantities, descending, e.g. "OG Kush (5), Meth (2)"
	Customers   string // per-customer subtotals, by sales descending
}

// Strings renders the row in DailySummaryHeaders order.
func (r DailyRow) Strings() []string {
	return []string{
		strconv.Itoa(r.Day),
		r.TotalSales.String(),
		strconv.Itoa(r.UnitsSold),
		r.AvgRealRate.StringFixed(2),
		r.AvgAskRate.StringFixed(2),
		strconv.Itoa(r.Deals),
		r.Products,
		r.Customers,
	}
}

// DailyReport summarizes the ledger per day, rows ascending by day.
type DailyReport struct {
	Rows []DailyRow
}

// customerSubtotal accumulates one customer's share of a day.
type customerSubtotal struct {
	name  string
	sales Money
	units int
}

// dayGroup accumulates one day's metrics. A group exists only when at
// least one sale contributed, so deals is never zero when rows are built.
type dayGroup struct {
	day         int
	totalSales  Money
	unitsSold   int
	realRateSum decimal.Decimal
	askRateSum  decimal.Decimal
	deals       int
	subtotals   []*customerSubtotal
	subtotalIx  map[string]*customerSubtotal
	products    *freqCounter // quantity sold per product name
}

func (g *dayGroup) customer(name string) *customerSubtotal {
	if sub, ok := g.subtotalIx[name]; ok {
		return sub
	}
	sub := &customerSubtotal{name: name}
	g.subtotals = append(g.subtotals, sub)
	g.subtotalIx[name] = sub
	return sub
}

// NewDailyReport runs the by-day aggregation pass over the snapshot.
// Average rates are the unweighted mean of per-sale rates (Σrate/deals),
// not a units-weighted mean; downstream figures depend on exactly that.
func NewDailyReport(l *Ledger) *DailyReport {
	groups := make([]*dayGroup, 0)
	index := make(map[int]*dayGroup)

	for _, s := range l.Sales() {
		g, ok := index[s.Day]
		if !ok {
			g = &dayGroup{
				day:        s.Day,
				subtotalIx: make(map[string]*customerSubtotal),
				products:   newFreqCounter(),
			}
			groups = append(groups, g)
			index[s.Day] = g
		}
		g.totalSales = g.totalSales.Add(s.Total)
		g.unitsSold += s.Units
		g.realRateSum = g.realRateSum.Add(s.RealRate)
		g.askRateSum = g.askRateSum.Add(s.AskRate)
		g.deals++

		sub := g.customer(s.Customer)
		sub.sales = sub.sales.Add(s.Total)
		sub.units += s.Units

		for _, it := range s.Items {
			g.products.Add(it.Name, it.Quantity)
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].day < groups[j].day })

	report := &DailyReport{Rows: make([]DailyRow, 0, len(groups))}
	for _, g := range groups {
		deals := decimal.NewFromInt(int64(g.deals))
		report.Rows = append(report.Rows, DailyRow{
			Day:         g.day,
			TotalSales:  g.totalSales.Round2(),
			UnitsSold:   g.unitsSold,
			AvgRealRate: g.realRateSum.Div(deals).Round(2),
			AvgAskRate:  g.askRateSum.Div(deals).Round(2),
			Deals:       g.deals,
			Products:    g.products.Format(),
			Customers:   formatSubtotals(g.subtotals),
		})
	}
	return report
}

// formatSubtotals renders a day's customers by sales subtotal descending,
// preserving first-seen order among ties.
func formatSubtotals(subtotals []*customerSubtotal) string {
	ordered := make([]*customerSubtotal, len(subtotals))
	copy(ordered, subtotals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[j].sales.LessThan(ordered[i].sales)
	})
	formatted := make([]string, 0, len(ordered))
	for _, sub := range ordered {
		formatted = append(formatted, fmt.Sprintf("%s (%s / %d units)", sub.name, sub.sales.WholeString(), sub.units))
	}
	return strings.Join(formatted, ", ")
}

// Series extracts a (day, value) trend series for a daily metric. The
// metric is named by its header: "TOTAL SALES", "UNITS SOLD" or "DEALS".
func (r *DailyReport) Series(metric string) ([]Point, error) {
	points := make([]Point, 0, len(r.Rows))
	for _, row := range r.Rows {
		var v float64
		switch metric {
		case "TOTAL SALES":
			v = row.TotalSales.Float2()
		case "UNITS SOLD":
			v = float64(row.UnitsSold)
		case "DEALS":
			v = float64(row.Deals)
		default:
			return nil, fmt.Errorf("unknown daily metric: %q", metric)
		}
		points = append(points, Point{Day: row.Day, Value: v})
	}
	return points, nil
}
