// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analyze summarizes raw EVRP solver runs into analyzed
// results.
//
// The solver appends one comma-separated line per optimization run:
//
//	distance,problem,algorithm,exec_time,solution,hyperparameters
//
// where solution is a space-separated node sequence and hyperparameters
// a "|"-separated list. Only the first three fields (and exec_time, when
// present) are used here.
package analyze

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Run is the outcome of one optimization run.
type Run struct {
	// Instance is the problem file the run solved, e.g. "c101_21.txt".
	Instance string

	// Algorithm is the name the solver reported for the algorithm.
	Algorithm string

	// Distance is the total distance of the best tour found.
	Distance float64

	// ExecTime is the execution time the solver reported, or 0 if
	// the line did not carry one.
	ExecTime float64
}

// ReadRuns reads every run from r. fileName is used in error messages.
// Any malformed line stops reading.
func ReadRuns(r io.Reader, fileName string) ([]Run, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var runs []Run
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return runs, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%s:%d: %w", fileName, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		line, _ := cr.FieldPos(0)

		run, err := parseRun(fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
		}
		runs = append(runs, run)
	}
}

func parseRun(fields []string) (Run, error) {
	if len(fields) < 3 {
		return Run{}, fmt.Errorf("expected at least 3 fields, found %d", len(fields))
	}
	dist, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return Run{}, fmt.Errorf("invalid distance %q", fields[0])
	}
	run := Run{
		Instance:  strings.TrimSpace(fields[1]),
		Algorithm: strings.TrimSpace(fields[2]),
		Distance:  dist,
	}
	if run.Instance == "" || run.Algorithm == "" {
		return Run{}, fmt.Errorf("missing problem or algorithm name")
	}
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		run.ExecTime, err = strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			return Run{}, fmt.Errorf("invalid execution time %q", fields[3])
		}
	}
	return run, nil
}
