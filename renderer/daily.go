package renderer

import (
	"bytes"
	"fmt"

	"github.com/mattpdg/biztrack"
	md "github.com/nao1215/markdown"
)

func DailyMarkdown(r *biztrack.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(biztrack.DailySummaryName)

	if len(r.Rows) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, // day
			md.AlignRight, // total sales
			md.AlignRight, // units sold
			md.AlignRight, // real rate
			md.AlignRight, // ask rate
			md.AlignRight, // deals
			md.AlignLeft,  // products sold
			md.AlignLeft,  // customers
		},
		Header: boldHeader(biztrack.DailySummaryHeaders),
		Rows:   tableRows(r.Rows),
	})

	doc.PlainText(fmt.Sprintf("%d day(s) of activity.", len(r.Rows)))
	return doc.String()
}
