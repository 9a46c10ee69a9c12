package biztrack

// Economics holds a product's derived per-batch profitability. Values
// keep full precision; rounding happens when a report row is built.
type Economics struct {
	MaterialsCost  Money // Σ(quantity × unit price) over the materials
	CostPerUnit    Money // MaterialsCost / yield
	ProfitPerUnit  Money // sell price − CostPerUnit
	ProfitPerBatch Money // ProfitPerUnit × yield
	ProfitPerHour  Money // ProfitPerBatch / timeframe
}

// Profitability derives a product's economics from its catalog entry
// alone; no transaction data is involved.
func Profitability(p *Product) Economics {
	var cost int
	for _, m := range p.Materials {
		cost += m.Quantity * m.UnitPrice
	}

	var e Economics
	e.MaterialsCost = M(cost)
	e.CostPerUnit = e.MaterialsCost.DivInt(p.YieldAmount)
	e.ProfitPerUnit = M(p.SellPrice).Sub(e.CostPerUnit)
	e.ProfitPerBatch = e.ProfitPerUnit.MulInt(p.YieldAmount)
	// A product should never reach here with a non-positive timeframe;
	// the guard keeps a bad catalog row from dividing by zero.
	if p.TimeframeHours > 0 {
		e.ProfitPerHour = e.ProfitPerBatch.DivInt(p.TimeframeHours)
	} else {
		e.ProfitPerHour = M(0)
	}
	return e
}
