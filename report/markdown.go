// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

// A Section is one table of a Markdown summary.
type Section struct {
	Title string
	Table *Table

	// Chart is the path of the rendered chart, linked from the
	// section if non-empty.
	Chart string
}

// WriteMarkdown writes a Markdown summary of sections to w: one table
// per section followed by the geometric mean of every algorithm.
func WriteMarkdown(w io.Writer, sections ...Section) error {
	md := markdown.NewMarkdown(w)
	md.H1("EVRP Algorithm Comparison")
	md.PlainText("")

	for _, s := range sections {
		md.H2(s.Title)
		md.PlainText("")
		if s.Chart != "" {
			md.PlainText(fmt.Sprintf("Chart: [%s](%s)", s.Chart, s.Chart))
			md.PlainText("")
		}
		if s.Table.Len() == 0 {
			md.PlainText("No problem instances.")
			md.PlainText("")
			continue
		}
		md.Table(markdown.TableSet{
			Header: s.Table.Columns(),
			Rows:   markdownRows(s.Table),
		})
		md.PlainText("")
	}
	return md.Build()
}

func markdownRows(t *Table) [][]string {
	names := t.Names()
	rows := make([][]string, 0, len(names)+1)
	for i, name := range names {
		row := []string{name}
		for _, a := range resultfmt.Algorithms {
			row = append(row, formatDistance(t.Values(a)[i]))
		}
		rows = append(rows, row)
	}
	geo := []string{"**geomean**"}
	for _, a := range resultfmt.Algorithms {
		geo = append(geo, "**"+formatDistance(t.GeoMean(a))+"**")
	}
	return append(rows, geo)
}

func formatDistance(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
