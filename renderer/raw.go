package renderer

import (
	"bytes"
	"fmt"

	"github.com/mattpdg/biztrack"
	md "github.com/nao1215/markdown"
)

func RawMarkdown(r *biztrack.RawReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(biztrack.RawDataName)

	if len(r.Rows) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, // day
			md.AlignLeft,  // customer
			md.AlignRight, // units sold
			md.AlignRight, // total sales
			md.AlignRight, // real rate
			md.AlignRight, // ask rate
			md.AlignLeft,  // products
			md.AlignLeft,  // location
			md.AlignLeft,  // time of day
			md.AlignLeft,  // relationship
		},
		Header: boldHeader(biztrack.RawDataHeaders),
		Rows:   tableRows(r.Rows),
	})

	doc.PlainText(fmt.Sprintf("%d sale(s).", len(r.Rows)))
	return doc.String()
}
