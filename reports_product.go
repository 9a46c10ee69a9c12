package biztrack

import "strconv"

// ProductRow is one catalog entry of the product summary.
type ProductRow struct {
	Product        string
	SellPrice      Money
	MaterialsCost  Money
	CostPerUnit    Money
	ProfitPerUnit  Money
	ProfitPerBatch Money
	ProfitPerHour  Money
	TimeframeHours int
	YieldAmount    int
	Materials      string // "Bag (2), Jar (1)"
}

// Strings renders the row in ProductSummaryHeaders order.
func (r ProductRow) Strings() []string {
	return []string{
		r.Product,
		r.SellPrice.String(),
		r.MaterialsCost.String(),
		r.CostPerUnit.String(),
		r.ProfitPerUnit.String(),
		r.ProfitPerBatch.String(),
		r.ProfitPerHour.String(),
		strconv.Itoa(r.TimeframeHours),
		strconv.Itoa(r.YieldAmount),
		r.Materials,
	}
}

// ProductReport lists every catalog entry with its profitability, in
// catalog registration order. Unlike the other summaries this report is
// never resorted, and an entry appears whether or not it ever sold.
type ProductReport struct {
	Rows []ProductRow
}

// NewProductReport runs the per-product profitability pass.
func NewProductReport(l *Ledger) *ProductReport {
	report := &ProductReport{}
	for p := range l.Products() {
		e := Profitability(p)
		report.Rows = append(report.Rows, ProductRow{
			Product:        p.Name,
			SellPrice:      M(p.SellPrice),
			MaterialsCost:  e.MaterialsCost.Round2(),
			CostPerUnit:    e.CostPerUnit.Round2(),
			ProfitPerUnit:  e.ProfitPerUnit.Round2(),
			ProfitPerBatch: e.ProfitPerBatch.Round2(),
			ProfitPerHour:  e.ProfitPerHour.Round2(),
			TimeframeHours: p.TimeframeHours,
			YieldAmount:    p.YieldAmount,
			Materials:      FormatItems(p.Materials),
		})
	}
	return report
}
