// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Evrpreport charts the analyzed results of the EVRP algorithm
// comparison.
//
// Usage:
//
//	evrpreport [flags]
//
// Evrpreport reads the analyzed results file (by default
// AnalyzedData.txt), splits the problem instances into small and large
// ones, and draws one grouped bar chart per class comparing the average
// distance of the Genetic Algorithm, Random Search, and NEH with NN
// Subtours. By default the charts are written to
// SmallInstanceProblems.pdf and LargeInstanceProblems.pdf in the
// current directory, replacing any existing files.
//
// Instances whose name contains an underscore, such as c101_21, are
// large; all others, such as c101C5 or eil51, are small.
//
// The chart format follows the output file extension: .svg and .png
// produce SVG and PNG, anything else PDF. The -dpi flag sets the
// resolution of PNG output. The -config flag reads the remaining chart
// options (figure size in inches, y axis label, tick label rotation in
// degrees, legend columns, and ColorBrewer palette) from a YAML file:
//
//	width: 12
//	height: 6
//	tickRotation: 45
//	legendColumns: 1
//	palette: Dark2
//
// Both tables are printed to standard output unless -q is given. The
// -md flag additionally writes a Markdown summary with the tables and
// the geometric mean of every algorithm.
//
// The whole input is read before any chart is drawn, so a malformed
// input produces no output files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/evrp-optimization/evrpreport/report"
)

func main() {
	log.SetPrefix("evrpreport: ")
	log.SetFlags(0)

	err := evrpreport(os.Stdout, os.Stderr, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func evrpreport(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("evrpreport", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: evrpreport [flags]\n\n")
		flags.PrintDefaults()
	}

	var (
		config     = flags.String("config", "", "read chart options from YAML `file`")
		in         = flags.String("in", "AnalyzedData.txt", "read analyzed results from `file`")
		small      = flags.String("small", "SmallInstanceProblems.pdf", "write the small instance chart to `file`")
		large      = flags.String("large", "LargeInstanceProblems.pdf", "write the large instance chart to `file`")
		smallTitle = flags.String("small-title", "Solutions of Small Problem Instances by Algorithm", "title of the small instance chart")
		largeTitle = flags.String("large-title", "Solutions of Large Problem Instances by Algorithm", "title of the large instance chart")
		mdOut      = flags.String("md", "", "also write a Markdown summary to `file`")
		dpi        = flags.Int("dpi", 0, "resolution of PNG charts in dots per inch (default 1200)")
		quiet      = flags.Bool("q", false, "do not print the tables")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments: %q", flags.Args())
	}

	opts := report.DefaultOptions()
	if *config != "" {
		var err error
		if opts, err = report.LoadOptions(*config, opts); err != nil {
			return err
		}
	}
	if *dpi > 0 {
		opts.DPI = *dpi
	}

	part, err := report.Load(*in)
	if err != nil {
		return err
	}

	charts := []struct {
		class report.Class
		title string
		path  string
	}{
		{report.Small, *smallTitle, *small},
		{report.Large, *largeTitle, *large},
	}

	if !*quiet {
		for _, c := range charts {
			fmt.Fprintf(stdout, "%s problem instances:\n", c.class)
			if err := part.Table(c.class).Fprint(stdout); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
		}
	}

	var sections []report.Section
	for _, c := range charts {
		t := part.Table(c.class)
		if err := report.Render(t, c.title, c.path, opts); err != nil {
			return err
		}
		sections = append(sections, report.Section{Title: c.title, Table: t, Chart: c.path})
	}

	if *mdOut != "" {
		return writeMarkdown(*mdOut, sections)
	}
	return nil
}

func writeMarkdown(path string, sections []report.Section) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteMarkdown(f, sections...); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
