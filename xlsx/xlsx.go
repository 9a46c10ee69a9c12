// Package xlsx writes the full report set to a styled spreadsheet
// workbook: one sheet per report plus a Trends sheet of line charts
// derived from the daily summary.
package xlsx

import (
	"github.com/mattpdg/biztrack"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// TrendsName is the chart sheet appended after the data sheets.
const TrendsName = "Trends"

// Write builds the workbook at path. Monetary and rate columns hold
// numeric cells with a number format so the spreadsheet stays sortable;
// breakdown columns hold the rendered strings.
func Write(path string, daily *biztrack.DailyReport, customers *biztrack.CustomerReport, products *biztrack.ProductReport, raw *biztrack.RawReport) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	// The default sheet becomes the first report sheet.
	if err := f.SetSheetName("Sheet1", biztrack.DailySummaryName); err != nil {
		return err
	}
	if err := writeDaily(f, st, daily); err != nil {
		return err
	}
	if err := writeCustomers(f, st, customers); err != nil {
		return err
	}
	if err := writeProducts(f, st, products); err != nil {
		return err
	}
	if err := writeRaw(f, st, raw); err != nil {
		return err
	}
	if err := writeTrends(f, daily); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// styles holds the workbook-level style ids shared by every sheet.
type styles struct {
	header int
	money  int
	rate   int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, err
	}

	moneyFmt := "$#,##0.00"
	s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return s, err
	}

	rateFmt := "0.00"
	s.rate, err = f.NewStyle(&excelize.Style{CustomNumFmt: &rateFmt})
	return s, err
}

// newSheet creates the named sheet, writes its styled header row and
// sets the column widths. The daily summary reuses the renamed default
// sheet instead of creating a new one.
func newSheet(f *excelize.File, st styles, name string, headers []string, widths []float64) error {
	if name != biztrack.DailySummaryName {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", last, st.header); err != nil {
		return err
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes one data row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// styleColumns applies a style to the data rows (2..rows+1) of the
// given 1-based columns.
func styleColumns(f *excelize.File, sheet string, style, rows int, cols ...int) error {
	if rows == 0 {
		return nil
	}
	for _, c := range cols {
		top, err := excelize.CoordinatesToCellName(c, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(c, rows+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, top, bottom, style); err != nil {
			return err
		}
	}
	return nil
}

func rate(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

var dailyWidths = []float64{8, 16, 14, 12, 12, 10, 45, 60}

func writeDaily(f *excelize.File, st styles, r *biztrack.DailyReport) error {
	name := biztrack.DailySummaryName
	if err := newSheet(f, st, name, biztrack.DailySummaryHeaders, dailyWidths); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := []any{
			row.Day,
			row.TotalSales.Float2(),
			row.UnitsSold,
			rate(row.AvgRealRate),
			rate(row.AvgAskRate),
			row.Deals,
			row.Products,
			row.Customers,
		}
		if err := setRow(f, name, i+2, values); err != nil {
			return err
		}
	}
	if err := styleColumns(f, name, st.money, len(r.Rows), 2); err != nil {
		return err
	}
	return styleColumns(f, name, st.rate, len(r.Rows), 4, 5)
}

var customerWidths = []float64{20, 14, 12, 10, 12, 12, 12, 14, 45, 60}

func writeCustomers(f *excelize.File, st styles, r *biztrack.CustomerReport) error {
	name := biztrack.CustomerSummaryName
	if err := newSheet(f, st, name, biztrack.CustomerSummaryHeaders, customerWidths); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := []any{
			row.Customer,
			row.TotalSales.Float2(),
			row.UnitsSold,
			row.Deals,
			row.AvgSale.Float2(),
			rate(row.AvgUnits),
			rate(row.AvgRate),
			row.Relationship.String(),
			row.TimesOfDay,
			row.Locations,
		}
		if err := setRow(f, name, i+2, values); err != nil {
			return err
		}
	}
	if err := styleColumns(f, name, st.money, len(r.Rows), 2, 5); err != nil {
		return err
	}
	return styleColumns(f, name, st.rate, len(r.Rows), 6, 7)
}

var productWidths = []float64{18, 12, 16, 14, 14, 16, 16, 14, 10, 45}

func writeProducts(f *excelize.File, st styles, r *biztrack.ProductReport) error {
	name := biztrack.ProductSummaryName
	if err := newSheet(f, st, name, biztrack.ProductSummaryHeaders, productWidths); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := []any{
			row.Product,
			row.SellPrice.Float2(),
			row.MaterialsCost.Float2(),
			row.CostPerUnit.Float2(),
			row.ProfitPerUnit.Float2(),
			row.ProfitPerBatch.Float2(),
			row.ProfitPerHour.Float2(),
			row.TimeframeHours,
			row.YieldAmount,
			row.Materials,
		}
		if err := setRow(f, name, i+2, values); err != nil {
			return err
		}
	}
	return styleColumns(f, name, st.money, len(r.Rows), 2, 3, 4, 5, 6, 7)
}

var rawWidths = []float64{8, 20, 12, 14, 12, 12, 45, 16, 14, 14}

func writeRaw(f *excelize.File, st styles, r *biztrack.RawReport) error {
	name := biztrack.RawDataName
	if err := newSheet(f, st, name, biztrack.RawDataHeaders, rawWidths); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := []any{
			row.Day,
			row.Customer,
			row.UnitsSold,
			row.TotalSales.Float2(),
			rate(row.RealRate),
			rate(row.AskRate),
			row.Products,
			row.Location,
			row.TimeOfDay.String(),
			row.Relationship.String(),
		}
		if err := setRow(f, name, i+2, values); err != nil {
			return err
		}
	}
	if err := styleColumns(f, name, st.money, len(r.Rows), 4); err != nil {
		return err
	}
	return styleColumns(f, name, st.rate, len(r.Rows), 5, 6)
}
