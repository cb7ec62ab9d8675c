// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evrp-optimization/evrpreport/analyze"
	"github.com/evrp-optimization/evrpreport/report"
)

const runs = `812,c101C5.txt,Genetic Algorithm,1.5,0 1 2 0,100|0.9
790,c101C5.txt,Genetic Algorithm,1.4,0 2 1 0,100|0.9
901,c101C5.txt,Random Search,0.2,0 1 2 0,10000
455,c101C5.txt,NEH with Nearest Neighbor Subtours,0.1,0 1 2 0,
1600,c101_21.txt,Genetic Algorithm,9.5,0 1 2 0,100|0.9
2300,c101_21.txt,Random Search,3.1,0 1 2 0,10000
1100,c101_21.txt,NEH with Nearest Neighbor Subtours,0.3,0 1 2 0,
`

func TestFilesToReport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "results.csv")
	if err := os.WriteFile(in, []byte(runs), 0666); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "AnalyzedData.txt")

	var stdout, stderr bytes.Buffer
	if err := evrpanalyze(strings.NewReader(""), &stdout, &stderr, []string{"-o", out, in}); err != nil {
		t.Fatal(err)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected warnings: %s", stderr.String())
	}

	// The output is what the reporter reads.
	part, err := report.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c101C5"}, part.Small.Names()); diff != "" {
		t.Errorf("small instances (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c101_21"}, part.Large.Names()); diff != "" {
		t.Errorf("large instances (-want +got):\n%s", diff)
	}
	if got := part.Small.Values(0); len(got) != 1 || got[0] != 801 {
		t.Errorf("small Genetic Algorithm averages = %v, want [801]", got)
	}
}

func TestStdinToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := "10,x.txt,GA2\n20,x.txt,RNG\n30,x.txt,NEH\n"
	err := evrpanalyze(strings.NewReader(in), &stdout, &stderr, []string{"-o", "-", "-alias", "GA2=Genetic Algorithm"})
	if err != nil {
		t.Fatal(err)
	}
	want := "x.txt\t3\t1\t10\t10\t1\t20\t20\t1\t30\t30\n"
	if got := stdout.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWarnings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := "10,x.txt,GA\n20,x.txt,RNG\n30,x.txt,Tabu\n"
	err := evrpanalyze(strings.NewReader(in), &stdout, &stderr, []string{"-o", "-"})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`unknown algorithm "Tabu"`, "x.txt: no runs of NEH with NN Subtours"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr.String())
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("incomplete instance written:\n%s", stdout.String())
	}
}

func TestErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"bad alias", "", []string{"-alias", "GA2"}, "want name=algorithm"},
		{"unknown target", "", []string{"-alias", "GA2=Simulated Annealing"}, "unknown algorithm"},
		{"missing file", "", []string{filepath.Join(t.TempDir(), "nope.csv")}, "no such file"},
		{"malformed", "x,y\n", []string{"-o", "-"}, "<stdin>:1:"},
		{"nothing", "", []string{"-o", "-"}, analyze.ErrNoRuns.Error()},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := evrpanalyze(strings.NewReader(test.stdin), &stdout, &stderr, test.args)
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error()+stderr.String(), test.want) {
				t.Errorf("got %v, want %q", err, test.want)
			}
		})
	}
}

func TestAliasFlag(t *testing.T) {
	a := newAliasFlag()
	if err := a.Set("GA-v2=GA"); err != nil {
		t.Fatal(err)
	}
	if got := a["GA-v2"]; got != analyze.DefaultAliases["GA"] {
		t.Errorf("GA-v2 maps to %v", got)
	}
	if _, ok := analyze.DefaultAliases["GA-v2"]; ok {
		t.Error("Set modified DefaultAliases")
	}
	if !strings.Contains(a.String(), "GA-v2=Genetic Algorithm") {
		t.Errorf("String() = %q", a.String())
	}
}
