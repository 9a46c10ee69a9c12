package renderer

import (
	"bytes"

	"github.com/mattpdg/biztrack"
	md "github.com/nao1215/markdown"
)

func CustomerMarkdown(r *biztrack.CustomerReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(biztrack.CustomerSummaryName)

	if len(r.Rows) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,  // customer
			md.AlignRight, // total sales
			md.AlignRight, // units sold
			md.AlignRight, // deals
			md.AlignRight, // avg sale
			md.AlignRight, // avg units
			md.AlignRight, // avg rate
			md.AlignLeft,  // relationship
			md.AlignLeft,  // time of day
			md.AlignLeft,  // locations
		},
		Header: boldHeader(biztrack.CustomerSummaryHeaders),
		Rows:   tableRows(r.Rows),
	})

	return doc.String()
}
