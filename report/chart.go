// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

// Options control how a Table is charted.
type Options struct {
	// Width and Height are the figure size.
	Width, Height vg.Length

	// DPI is the resolution of raster output. Vector output
	// (PDF, SVG) has no raster elements and ignores it.
	DPI int

	// YLabel labels the value axis.
	YLabel string

	// TickRotation rotates the instance names, in radians,
	// counter-clockwise.
	TickRotation float64

	// LegendColumns is the number of columns the legend entries
	// are laid out in.
	LegendColumns int

	// Palette names a qualitative ColorBrewer palette with at
	// least one color per algorithm.
	Palette string
}

// DefaultOptions returns the options of the published EVRP charts.
func DefaultOptions() Options {
	return Options{
		Width:         10 * vg.Inch,
		Height:        5 * vg.Inch,
		DPI:           1200,
		YLabel:        "Average Distance",
		TickRotation:  math.Pi / 6,
		LegendColumns: 3,
		Palette:       "Set1",
	}
}

// A RenderError reports a failure to draw or save a chart.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Largest raster width we are willing to allocate.
const maxPixels = 8190

// Fraction of the value range left free above the tallest bar for
// the legend.
const legendHeadroom = 0.15

// Render draws t as a grouped bar chart titled title and writes it to
// path, replacing any existing file. The format follows the extension
// of path: ".svg" and ".png" select SVG and PNG, anything else PDF.
func Render(t *Table, title, path string, opts Options) error {
	pl, err := newPlot(t, title, opts)
	if err != nil {
		return &RenderError{path, err}
	}
	can, err := newCanvas(path, opts)
	if err != nil {
		return &RenderError{path, err}
	}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return &RenderError{path, err}
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return &RenderError{path, err}
	}
	if err := f.Close(); err != nil {
		return &RenderError{path, err}
	}
	return nil
}

func newCanvas(path string, opts Options) (vg.CanvasWriterTo, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid figure size %v x %v", opts.Width, opts.Height)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return vgsvg.New(opts.Width, opts.Height), nil
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(rasterDPI(opts)), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return vgpdf.New(opts.Width, opts.Height), nil
}

// rasterDPI scales opts.DPI down so the image is at most maxPixels wide.
func rasterDPI(opts Options) int {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	width := float64(dpi) * float64(opts.Width/vg.Inch)
	if width > maxPixels {
		dpi = int(math.Trunc(float64(dpi) * maxPixels / width))
	}
	return dpi
}

func newPlot(t *Table, title string, opts Options) (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = title
	pl.X.Label.Text = ""
	pl.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	palette, err := brewer.GetPalette(brewer.TypeQualitative, opts.Palette, resultfmt.NumAlgorithms)
	if err != nil {
		return nil, err
	}
	colors := palette.Colors()

	n := t.Len()
	w := barWidth(n, opts)
	// Width of the bar group, center to center.
	groupWidth := w * vg.Length(resultfmt.NumAlgorithms-1)

	legend := newColumnLegend(pl.Legend.TextStyle, opts.LegendColumns)
	for _, a := range resultfmt.Algorithms {
		legend.Add(a.String(), swatch{colors[a]})
		if n == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(plotter.Values(t.Values(a)), w)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		bars.Offset = w*vg.Length(a) - groupWidth/2
		bars.Color = colors[a]
		bars.LineStyle.Width = 0
		pl.Add(bars)
	}
	pl.Add(legend)

	if n > 0 {
		pl.NominalX(t.Names()...)
		pl.X.Min = -0.5
		pl.X.Max = float64(n) - 0.5
		pl.Y.Min = math.Min(0, pl.Y.Min)
		if pl.Y.Max <= 0 {
			pl.Y.Max = 1
		}
	} else {
		pl.X.Tick.Marker = plot.ConstantTicks(nil)
		pl.X.Min, pl.X.Max = 0, 1
		pl.Y.Min, pl.Y.Max = 0, 1
	}
	pl.Y.Max += (pl.Y.Max - pl.Y.Min) * legendHeadroom

	pl.X.Tick.Label.Rotation = opts.TickRotation
	pl.X.Tick.Label.XAlign = draw.XCenter
	pl.X.Tick.Label.YAlign = draw.YTop

	return pl, nil
}

// barWidth picks a bar width so that each group of bars covers about
// half of its slot, like a pandas bar plot.
func barWidth(n int, opts Options) vg.Length {
	if n < 1 {
		n = 1
	}
	// Rough share of the figure left for the data area.
	area := opts.Width * 0.85
	w := area / vg.Length(n) * 0.5 / resultfmt.NumAlgorithms
	if thinnest := vg.Points(0.5); w < thinnest {
		w = thinnest
	}
	return w
}

// swatch is a legend thumbnail filled with a solid color.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}
