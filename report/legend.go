// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A columnLegend is a plot.Plotter that draws legend entries in a grid
// anchored at the upper-left corner of the data area. plot.Legend only
// stacks entries vertically.
type columnLegend struct {
	TextStyle text.Style

	// Columns is the number of entries per row.
	Columns int

	ThumbnailWidth vg.Length

	// Padding separates the box from the axes and the entries
	// from each other.
	Padding vg.Length

	Background color.Color

	entries []legendEntry
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

func newColumnLegend(sty text.Style, columns int) *columnLegend {
	if columns < 1 {
		columns = 1
	}
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YCenter
	return &columnLegend{
		TextStyle:      sty,
		Columns:        columns,
		ThumbnailWidth: vg.Points(20),
		Padding:        vg.Points(5),
		Background:     color.NRGBA{0xFF, 0xFF, 0xFF, 0xCC},
	}
}

// Add appends an entry to the legend.
func (l *columnLegend) Add(label string, thumb plot.Thumbnailer) {
	l.entries = append(l.entries, legendEntry{label, thumb})
}

// rowHeight is the height of one row of entries.
func (l *columnLegend) rowHeight() vg.Length {
	return l.TextStyle.Height("M")
}

// layout returns the thumbnail rectangle of every entry and the size of
// the whole legend box. Rectangles are relative to the top-left corner
// of the box, so their Y coordinates are negative.
func (l *columnLegend) layout() (thumbs []vg.Rectangle, size vg.Point) {
	if len(l.entries) == 0 {
		return nil, vg.Point{}
	}
	cols := l.Columns
	if cols > len(l.entries) {
		cols = len(l.entries)
	}
	rows := (len(l.entries) + cols - 1) / cols

	// Every column is as wide as the widest entry.
	var labelWidth vg.Length
	for _, e := range l.entries {
		if w := l.TextStyle.Width(e.label); w > labelWidth {
			labelWidth = w
		}
	}
	colWidth := l.ThumbnailWidth + l.Padding + labelWidth
	rowHeight := l.rowHeight()

	thumbs = make([]vg.Rectangle, len(l.entries))
	for i := range l.entries {
		row, col := i/cols, i%cols
		x := l.Padding + vg.Length(col)*(colWidth+l.Padding)
		top := -l.Padding - vg.Length(row)*(rowHeight+l.Padding)
		thumbs[i] = vg.Rectangle{
			Min: vg.Point{X: x, Y: top - rowHeight},
			Max: vg.Point{X: x + l.ThumbnailWidth, Y: top},
		}
	}
	size = vg.Point{
		X: l.Padding + vg.Length(cols)*(colWidth+l.Padding),
		Y: l.Padding + vg.Length(rows)*(rowHeight+l.Padding),
	}
	return thumbs, size
}

// Plot implements plot.Plotter.
func (l *columnLegend) Plot(c draw.Canvas, plt *plot.Plot) {
	thumbs, size := l.layout()
	if thumbs == nil {
		return
	}
	corner := vg.Point{X: c.Min.X + l.Padding, Y: c.Max.Y - l.Padding}

	if l.Background != nil {
		c.FillPolygon(l.Background, []vg.Point{
			corner,
			{X: corner.X + size.X, Y: corner.Y},
			{X: corner.X + size.X, Y: corner.Y - size.Y},
			{X: corner.X, Y: corner.Y - size.Y},
		})
	}

	for i, e := range l.entries {
		r := thumbs[i].Add(corner)
		e.thumb.Thumbnail(&draw.Canvas{Canvas: c.Canvas, Rectangle: r})
		pt := vg.Point{X: r.Max.X + l.Padding, Y: (r.Min.Y + r.Max.Y) / 2}
		c.FillText(l.TextStyle, pt, e.label)
	}
}
