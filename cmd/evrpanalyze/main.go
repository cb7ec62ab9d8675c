// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Evrpanalyze summarizes raw EVRP solver runs into the analyzed results
// file read by evrpreport.
//
// Usage:
//
//	evrpanalyze [-o file] [-alias name=algorithm]... [inputs...]
//
// Each input holds the comma-separated lines the solver appends after
// every optimization run. If no inputs are given, evrpanalyze reads
// standard input. For every problem instance it writes one line with
// the number of runs, best distance, and average distance of each
// algorithm to AnalyzedData.txt, or to the -o file ("-" for standard
// output).
//
// Solver algorithm names are mapped to the compared algorithms
// "Genetic Algorithm", "Random Search", and "NEH with NN Subtours".
// The usual spellings (GA, RNG, NEH, and the full names) are known;
// -alias adds more, for example
//
//	evrpanalyze -alias "Genetic Algorithm v2=Genetic Algorithm" results.csv
//
// Runs of unknown algorithms are ignored and instances missing an
// algorithm are dropped, both with a warning.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/evrp-optimization/evrpreport/analyze"
	"github.com/evrp-optimization/evrpreport/resultfmt"
)

func main() {
	log.SetPrefix("evrpanalyze: ")
	log.SetFlags(0)

	err := evrpanalyze(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// aliasFlag collects -alias name=algorithm mappings on top of
// analyze.DefaultAliases.
type aliasFlag map[string]resultfmt.Algorithm

func newAliasFlag() aliasFlag {
	a := make(aliasFlag)
	for name, alg := range analyze.DefaultAliases {
		a[name] = alg
	}
	return a
}

func (a aliasFlag) String() string {
	names := make([]string, 0, len(a))
	for name, alg := range a {
		names = append(names, name+"="+alg.String())
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (a aliasFlag) Set(s string) error {
	name, target, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=algorithm, got %q", s)
	}
	alg, ok := analyze.DefaultAliases[target]
	if !ok {
		return fmt.Errorf("unknown algorithm %q", target)
	}
	a[name] = alg
	return nil
}

func evrpanalyze(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("evrpanalyze", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: evrpanalyze [-o file] [-alias name=algorithm]... [inputs...]\n\n")
		flags.PrintDefaults()
	}
	out := flags.String("o", "AnalyzedData.txt", "write analyzed results to `file` (- for stdout)")
	aliases := newAliasFlag()
	flags.Var(aliases, "alias", "map solver algorithm `name=algorithm` (repeatable)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var runs []analyze.Run
	if flags.NArg() == 0 {
		rs, err := analyze.ReadRuns(stdin, "<stdin>")
		if err != nil {
			return err
		}
		runs = rs
	}
	for _, path := range flags.Args() {
		rs, err := readFile(path)
		if err != nil {
			return err
		}
		runs = append(runs, rs...)
	}

	recs, err := analyze.Summarize(runs, analyze.Options{
		Aliases: aliases,
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, "evrpanalyze: "+format, args...)
		},
	})
	if err != nil {
		return err
	}

	if *out == "-" {
		return writeRecords(stdout, recs)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := writeRecords(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	return f.Close()
}

func readFile(path string) ([]analyze.Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return analyze.ReadRuns(f, path)
}

func writeRecords(w io.Writer, recs []*resultfmt.Record) error {
	rw := resultfmt.NewWriter(w)
	for _, rec := range recs {
		if err := rw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
