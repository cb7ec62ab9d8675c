// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads and writes the analyzed EVRP results format.
//
// An analyzed results file is plain text with one problem instance per
// line and no header. Fields are separated by tab characters. The
// position of every field is fixed by a Schema; the reader consumes
// only the instance name and one average distance per algorithm and
// ignores every other field.
package resultfmt

import "fmt"

// An Algorithm identifies one of the compared optimization algorithms.
// The order of the constants is the column order of every report.
type Algorithm int

const (
	GeneticAlgorithm Algorithm = iota
	RandomSearch
	NEHNearestNeighbor

	// NumAlgorithms is the number of compared algorithms.
	NumAlgorithms = 3
)

// Algorithms lists every Algorithm in column order.
var Algorithms = [NumAlgorithms]Algorithm{GeneticAlgorithm, RandomSearch, NEHNearestNeighbor}

var algorithmNames = [NumAlgorithms]string{
	"Genetic Algorithm",
	"Random Search",
	"NEH with NN Subtours",
}

// String returns the column name used for a in tables and legends.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= NumAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// A Schema describes where the consumed fields of a line live.
// Field indexes are 0-based.
type Schema struct {
	// Version identifies the layout. It is informational; the
	// reader only relies on the field indexes below.
	Version int

	// NameField is the index of the instance name.
	NameField int

	// AverageFields holds the index of the average distance of
	// each Algorithm.
	AverageFields [NumAlgorithms]int

	// MinFields is the minimum number of fields on every line.
	MinFields int
}

// V1 is the layout produced by the EVRP results analyzer:
//
//	0      instance name, e.g. "c101_21.txt"
//	1      total number of runs across all algorithms
//	2 3 4  Genetic Algorithm runs, best distance, average distance
//	5 6 7  Random Search runs, best distance, average distance
//	8 9 10 NEH with NN Subtours runs, best distance, average distance
//
// Readers consume only fields 0, 4, 7 and 10. Files from other
// producers only need to agree on those.
var V1 = Schema{
	Version:       1,
	NameField:     0,
	AverageFields: [NumAlgorithms]int{4, 7, 10},
	MinFields:     11,
}

// validate reports whether every field index fits within MinFields.
func (s *Schema) validate() error {
	if s.NameField < 0 || s.NameField >= s.MinFields {
		return fmt.Errorf("schema v%d: name field %d outside %d fields", s.Version, s.NameField, s.MinFields)
	}
	for i, f := range s.AverageFields {
		if f < 0 || f >= s.MinFields {
			return fmt.Errorf("schema v%d: %s field %d outside %d fields", s.Version, Algorithm(i), f, s.MinFields)
		}
		if f == s.NameField {
			return fmt.Errorf("schema v%d: %s field %d overlaps name field", s.Version, Algorithm(i), f)
		}
	}
	return nil
}
