package biztrack

// Report header rows. Each report's data rows match its header list in
// column count and order; the export sink writes them verbatim.

var DailySummaryHeaders = []string{
	"DAY",
	"TOTAL SALES",
	"UNITS SOLD",
	"REAL RATE",
	"ASK RATE",
	"DEALS",
	"PRODUCTS SOLD",
	"CUSTOMERS",
}

var CustomerSummaryHeaders = []string{
	"CUSTOMER",
	"TOTAL SALES",
	"UNITS SOLD",
	"DEALS",
	"AVG SALE",
	"AVG UNITS",
	"AVG RATE",
	"RELATIONSHIP",
	"TIME OF DAY (DEALS)",
	"LOCATIONS (DEALS)",
}

var ProductSummaryHeaders = []string{
	"PRODUCT",
	"SELL PRICE",
	"MATERIALS COST",
	"COST PER UNIT",
	"PROFIT PER UNIT",
	"PROFIT PER BATCH",
	"PROFIT PER HOUR",
	"TIMEFRAME (HRS)",
	"YIELD",
	"MATERIALS",
}

var RawDataHeaders = []string{
	"DAY",
	"CUSTOMER",
	"UNITS SOLD",
	"TOTAL SALES",
	"REAL RATE",
	"ASK RATE",
	"PRODUCTS",
	"LOCATION",
	"TIME OF DAY",
	"RELATIONSHIP",
}

// Report sheet names, as they appear in the exported workbook.
const (
	DailySummaryName    = "Daily Summary"
	CustomerSummaryName = "Customer Summary"
	ProductSummaryName  = "Product Summary"
	RawDataName         = "Raw Data"
)

// Point is one (day, value) sample of a trend series, ordered ascending
// by day like the daily summary rows it is derived from.
type Point struct {
	Day   int
	Value float64
}
