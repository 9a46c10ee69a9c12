// Package renderer converts reports into markdown documents for the
// terminal. Each report gets one renderer that emits a title and a
// table whose columns follow the report's header row.
package renderer

import (
	md "github.com/nao1215/markdown"
)

// stringer is any report row that renders itself in header order.
type stringer interface {
	Strings() []string
}

// tableRows converts report rows to the cell matrix a markdown table wants.
func tableRows[T stringer](rows []T) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Strings())
	}
	return out
}

// boldHeader wraps every header cell in bold markers.
func boldHeader(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = md.Bold(h)
	}
	return out
}
