// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report turns analyzed EVRP results into per-class comparison
// tables and charts.
package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

// InstanceColumn is the name of the column holding display names.
const InstanceColumn = "Problem Instance"

// A Table is the ordered set of results of one size class, with one
// column of display names and one column of average distances per
// algorithm.
type Table struct {
	Class Class

	t *table.Table
}

// NewTable builds a Table from recs, preserving their order.
// Every record becomes a row regardless of its own class.
func NewTable(class Class, recs []*resultfmt.Record) *Table {
	names := make([]string, len(recs))
	var values [resultfmt.NumAlgorithms][]float64
	for a := range values {
		values[a] = make([]float64, len(recs))
	}
	for i, rec := range recs {
		names[i] = DisplayName(rec.Instance)
		for a := range values {
			values[a][i] = rec.Average[a]
		}
	}

	var b table.Builder
	b.Add(InstanceColumn, names)
	for _, a := range resultfmt.Algorithms {
		b.Add(a.String(), values[a])
	}
	return &Table{Class: class, t: b.Done()}
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Names returns the display names of t's rows.
func (t *Table) Names() []string {
	return t.t.MustColumn(InstanceColumn).([]string)
}

// Values returns the average distances of algorithm a, one per row.
func (t *Table) Values(a resultfmt.Algorithm) []float64 {
	return t.t.MustColumn(a.String()).([]float64)
}

// Columns returns the column names of t in order.
func (t *Table) Columns() []string {
	return t.t.Columns()
}

// GeoMean returns the geometric mean of algorithm a's averages across
// all rows, or NaN if t is empty.
func (t *Table) GeoMean(a resultfmt.Algorithm) float64 {
	xs := t.Values(a)
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.GeoMean(xs)
}

// Fprint writes t to w as an aligned text table.
func (t *Table) Fprint(w io.Writer) error {
	return table.Fprint(w, t.t, "%s", "%.2f", "%.2f", "%.2f")
}

// A Partition holds every record of a results file split by class.
type Partition struct {
	Small, Large *Table
}

// Table returns the table of class c.
func (p *Partition) Table(c Class) *Table {
	if c == Large {
		return p.Large
	}
	return p.Small
}

// Read reads analyzed results from r and partitions them by class.
// fileName is used in error messages. The first malformed line stops
// reading and is returned as a *resultfmt.SyntaxError; no partial
// partition is returned.
func Read(r io.Reader, fileName string) (*Partition, error) {
	var byClass [2][]*resultfmt.Record
	reader := resultfmt.NewReader(r, fileName)
	for reader.Scan() {
		rec := reader.Result().Clone()
		c := Classify(DisplayName(rec.Instance))
		byClass[c] = append(byClass[c], rec)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return &Partition{
		Small: NewTable(Small, byClass[Small]),
		Large: NewTable(Large, byClass[Large]),
	}, nil
}

// Load opens the results file at path and partitions it by class.
func Load(path string) (*Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}
