package renderer

import (
	"bytes"

	"github.com/mattpdg/biztrack"
	md "github.com/nao1215/markdown"
)

func ProductMarkdown(r *biztrack.ProductReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(biztrack.ProductSummaryName)

	if len(r.Rows) == 0 {
		doc.PlainText("No products in the catalog.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,  // product
			md.AlignRight, // sell price
			md.AlignRight, // materials cost
			md.AlignRight, // cost per unit
			md.AlignRight, // profit per unit
			md.AlignRight, // profit per batch
			md.AlignRight, // profit per hour
			md.AlignRight, // timeframe
			md.AlignRight, // yield
			md.AlignLeft,  // materials
		},
		Header: boldHeader(biztrack.ProductSummaryHeaders),
		Rows:   tableRows(r.Rows),
	})

	return doc.String()
}
