package biztrack

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RawRow is one sale of the raw data report, with the compound field
// decoded and rendered for human readability.
type RawRow struct {
	Day          int
	Customer     string
	UnitsSold    int
	TotalSales   Money
	RealRate     decimal.Decimal
	AskRate      decimal.Decimal
	Products     string // "OG Kush (3), Sour Diesel (2)"
	Location     string
	TimeOfDay    TimeOfDay
	Relationship Relationship
}

// Strings renders the row in RawDataHeaders order.
func (r RawRow) Strings() []string {
	return []string{
		strconv.Itoa(r.Day),
		r.Customer,
		strconv.Itoa(r.UnitsSold),
		r.TotalSales.String(),
		r.RealRate.StringFixed(2),
		r.AskRate.StringFixed(2),
		r.Products,
		r.Location,
		r.TimeOfDay.String(),
		r.Relationship.String(),
	}
}

// RawReport lists every sale in original ledger order.
type RawReport struct {
	Rows []RawRow
}

// NewRawReport builds the detail report from the snapshot.
func NewRawReport(l *Ledger) *RawReport {
	report := &RawReport{}
	for _, s := range l.Sales() {
		report.Rows = append(report.Rows, RawRow{
			Day:          s.Day,
			Customer:     s.Customer,
			UnitsSold:    s.Units,
			TotalSales:   s.Total.Round2(),
			RealRate:     s.RealRate.Round(2),
			AskRate:      s.AskRate.Round(2),
			Products:     FormatItems(s.Items),
			Location:     s.Location,
			TimeOfDay:    s.TimeOfDay,
			Relationship: s.Relationship,
		})
	}
	return report
}
