// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

// optionsFile is the YAML form of Options. Lengths are in inches and
// the tick rotation in degrees.
type optionsFile struct {
	Width         float64 `yaml:"width,omitempty"`
	Height        float64 `yaml:"height,omitempty"`
	DPI           int     `yaml:"dpi,omitempty"`
	YLabel        string  `yaml:"ylabel,omitempty"`
	TickRotation  float64 `yaml:"tickRotation,omitempty"`
	LegendColumns int     `yaml:"legendColumns,omitempty"`
	Palette       string  `yaml:"palette,omitempty"`
}

// LoadOptions reads chart options from the YAML file at path. Keys
// missing from the file keep their value in base. For example:
//
//	width: 12
//	dpi: 300
//	tickRotation: 45
//	palette: Dark2
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	of := optionsFile{
		Width:         float64(base.Width / vg.Inch),
		Height:        float64(base.Height / vg.Inch),
		DPI:           base.DPI,
		YLabel:        base.YLabel,
		TickRotation:  base.TickRotation * 180 / math.Pi,
		LegendColumns: base.LegendColumns,
		Palette:       base.Palette,
	}
	if err := yaml.Unmarshal(data, &of); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}

	opts := Options{
		Width:         vg.Length(of.Width) * vg.Inch,
		Height:        vg.Length(of.Height) * vg.Inch,
		DPI:           of.DPI,
		YLabel:        of.YLabel,
		TickRotation:  of.TickRotation * math.Pi / 180,
		LegendColumns: of.LegendColumns,
		Palette:       of.Palette,
	}
	if err := opts.validate(); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %v x %v", o.Width, o.Height)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", o.DPI)
	}
	if o.LegendColumns < 1 {
		return fmt.Errorf("legend needs at least one column, got %d", o.LegendColumns)
	}
	if _, err := brewer.GetPalette(brewer.TypeQualitative, o.Palette, resultfmt.NumAlgorithms); err != nil {
		return err
	}
	return nil
}
