// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

func TestSummarize(t *testing.T) {
	runs := []Run{
		{Instance: "c206C5.txt", Algorithm: "GA", Distance: 10},
		{Instance: "c206C5.txt", Algorithm: "GA", Distance: 20},
		{Instance: "c206C5.txt", Algorithm: "Random Search", Distance: 40},
		{Instance: "c101_21.txt", Algorithm: "NEH", Distance: 7},
		{Instance: "c206C5.txt", Algorithm: "NEH with Nearest Neighbor Subtours", Distance: 30},
		{Instance: "c101_21.txt", Algorithm: "Genetic Algorithm", Distance: 5},
		{Instance: "c101_21.txt", Algorithm: "RNG", Distance: 9},
		{Instance: "c101_21.txt", Algorithm: "RNG", Distance: 11},
		{Instance: "c101_21.txt", Algorithm: "RNG", Distance: 13},
	}
	got, err := Summarize(runs, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []*resultfmt.Record{
		{
			Instance: "c206C5.txt",
			Runs:     [resultfmt.NumAlgorithms]int{2, 1, 1},
			Best:     [resultfmt.NumAlgorithms]float64{10, 40, 30},
			Average:  [resultfmt.NumAlgorithms]float64{15, 40, 30},
		},
		{
			Instance: "c101_21.txt",
			Runs:     [resultfmt.NumAlgorithms]int{1, 3, 1},
			Best:     [resultfmt.NumAlgorithms]float64{5, 9, 7},
			Average:  [resultfmt.NumAlgorithms]float64{5, 11, 7},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(resultfmt.Record{})); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeWarnings(t *testing.T) {
	runs := []Run{
		{Instance: "a.txt", Algorithm: "Simulated Annealing", Distance: 1},
		{Instance: "a.txt", Algorithm: "Simulated Annealing", Distance: 2},
		{Instance: "a.txt", Algorithm: "GA", Distance: 3},
		{Instance: "b.txt", Algorithm: "GA", Distance: 3},
		{Instance: "b.txt", Algorithm: "RNG", Distance: 4},
		{Instance: "b.txt", Algorithm: "NEH", Distance: 5},
	}
	var warnings []string
	got, err := Summarize(runs, Options{
		Warn: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Instance != "b.txt" {
		t.Errorf("got %d records, want only b.txt", len(got))
	}
	want := []string{
		"unknown algorithm \"Simulated Annealing\"; ignoring its runs\n",
		"a.txt: no runs of Random Search, NEH with NN Subtours; dropping instance\n",
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeAliases(t *testing.T) {
	aliases := map[string]resultfmt.Algorithm{
		"ga":   resultfmt.GeneticAlgorithm,
		"rs":   resultfmt.RandomSearch,
		"nehn": resultfmt.NEHNearestNeighbor,
	}
	runs := []Run{
		{Instance: "x.txt", Algorithm: "ga", Distance: 1},
		{Instance: "x.txt", Algorithm: "rs", Distance: 2},
		{Instance: "x.txt", Algorithm: "nehn", Distance: 3},
		{Instance: "x.txt", Algorithm: "GA", Distance: 100},
	}
	got, err := Summarize(runs, Options{Aliases: aliases})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Average != [resultfmt.NumAlgorithms]float64{1, 2, 3} {
		t.Errorf("Summarize with custom aliases = %+v", got)
	}
}

func TestSummarizeNoRuns(t *testing.T) {
	_, err := Summarize([]Run{{Instance: "a.txt", Algorithm: "??", Distance: 1}}, Options{})
	if !errors.Is(err, ErrNoRuns) {
		t.Errorf("got %v, want ErrNoRuns", err)
	}
	if _, err := Summarize(nil, Options{}); !errors.Is(err, ErrNoRuns) {
		t.Errorf("got %v for no input, want ErrNoRuns", err)
	}
}

func TestMissingAlgorithms(t *testing.T) {
	var seen [resultfmt.NumAlgorithms]bool
	seen[resultfmt.RandomSearch] = true
	if got, want := missingAlgorithms(seen), "Genetic Algorithm, NEH with NN Subtours"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	seen = [resultfmt.NumAlgorithms]bool{true, true, true}
	if got := missingAlgorithms(seen); got != "" {
		t.Errorf("got %q, want none", got)
	}
}
