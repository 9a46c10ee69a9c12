package xlsx

import (
	"fmt"

	"github.com/mattpdg/biztrack"
	"github.com/xuri/excelize/v2"
)

// trendCharts maps each chart to the daily summary column it plots.
var trendCharts = []struct {
	title  string
	column string
	anchor string
}{
	{"Daily Sales Totals", "B", "A1"},
	{"Units Sold Per Day", "C", "A16"},
	{"Deals Per Day", "F", "A31"},
}

// writeTrends adds one line chart per daily metric, each reading its
// series straight from the daily summary sheet.
func writeTrends(f *excelize.File, daily *biztrack.DailyReport) error {
	if _, err := f.NewSheet(TrendsName); err != nil {
		return err
	}

	n := len(daily.Rows)
	if n == 0 {
		// Nothing to plot; an empty chart sheet would be worse than a note.
		return f.SetCellValue(TrendsName, "A1", "No sales recorded.")
	}

	source := biztrack.DailySummaryName
	for _, c := range trendCharts {
		chart := excelize.Chart{
			Type: excelize.Line,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("'%s'!$%s$1", source, c.column),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", source, n+1),
				Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", source, c.column, c.column, n+1),
			}},
			Title:  []excelize.RichTextRun{{Text: c.title}},
			Legend: excelize.ChartLegend{Position: "none"},
			XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Day"}}},
		}
		if err := f.AddChart(TrendsName, c.anchor, &chart); err != nil {
			return err
		}
	}
	return nil
}
