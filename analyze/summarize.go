// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"errors"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/evrp-optimization/evrpreport/resultfmt"
)

// DefaultAliases maps the algorithm names used by the EVRP solver to
// the compared algorithms.
var DefaultAliases = map[string]resultfmt.Algorithm{
	"Genetic Algorithm":                  resultfmt.GeneticAlgorithm,
	"GA":                                 resultfmt.GeneticAlgorithm,
	"Random Search":                      resultfmt.RandomSearch,
	"RNG":                                resultfmt.RandomSearch,
	"NEH with Nearest Neighbor Subtours": resultfmt.NEHNearestNeighbor,
	"NEH with NN Subtours":               resultfmt.NEHNearestNeighbor,
	"NEH":                                resultfmt.NEHNearestNeighbor,
}

// Options configure Summarize.
type Options struct {
	// Aliases maps solver algorithm names to algorithms. If nil,
	// DefaultAliases is used.
	Aliases map[string]resultfmt.Algorithm

	// Warn, if non-nil, is called for every algorithm name that
	// has no alias and every instance that lacks runs of some
	// algorithm.
	Warn func(format string, args ...interface{})
}

// ErrNoRuns is returned by Summarize when no run is of a known
// algorithm.
var ErrNoRuns = errors.New("no runs of a known algorithm")

// Column names of the runs table.
const (
	colInstance  = "instance"
	colAlgorithm = "algorithm"
	colDistance  = "distance"
	colRuns      = "runs"
)

// Summarize groups runs by instance and algorithm and returns one
// record per instance, in the order instances first appear in runs.
// Each record holds the run count, best distance and average distance
// of every algorithm. Instances without runs of every algorithm are
// dropped.
func Summarize(runs []Run, opts Options) ([]*resultfmt.Record, error) {
	aliases := opts.Aliases
	if aliases == nil {
		aliases = DefaultAliases
	}
	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}

	var instances, algs []string
	var dists []float64
	unknown := make(map[string]bool)
	for _, run := range runs {
		a, ok := aliases[run.Algorithm]
		if !ok {
			if !unknown[run.Algorithm] {
				warn("unknown algorithm %q; ignoring its runs\n", run.Algorithm)
				unknown[run.Algorithm] = true
			}
			continue
		}
		instances = append(instances, run.Instance)
		algs = append(algs, a.String())
		dists = append(dists, run.Distance)
	}
	if len(instances) == 0 {
		return nil, ErrNoRuns
	}

	var b table.Builder
	b.Add(colInstance, instances).Add(colAlgorithm, algs).Add(colDistance, dists)
	agg := ggstat.Agg(colInstance, colAlgorithm)(
		ggstat.AggCount(colRuns),
		ggstat.AggMin(colDistance),
		ggstat.AggMean(colDistance),
	)
	sum := table.Flatten(agg.F(b.Done()))

	var (
		names  = sum.MustColumn(colInstance).([]string)
		algCol = sum.MustColumn(colAlgorithm).([]string)
		counts = sum.MustColumn(colRuns).([]int)
		mins   = sum.MustColumn("min " + colDistance).([]float64)
		means  = sum.MustColumn("mean " + colDistance).([]float64)
	)

	byString := make(map[string]resultfmt.Algorithm)
	for _, a := range resultfmt.Algorithms {
		byString[a.String()] = a
	}

	type partial struct {
		rec  resultfmt.Record
		seen [resultfmt.NumAlgorithms]bool
	}
	byName := make(map[string]*partial)
	var order []string
	for i, name := range names {
		p := byName[name]
		if p == nil {
			p = &partial{rec: resultfmt.Record{Instance: name}}
			byName[name] = p
			order = append(order, name)
		}
		a := byString[algCol[i]]
		p.rec.Runs[a] = counts[i]
		p.rec.Best[a] = mins[i]
		p.rec.Average[a] = means[i]
		p.seen[a] = true
	}

	var recs []*resultfmt.Record
	for _, name := range order {
		p := byName[name]
		if missing := missingAlgorithms(p.seen); missing != "" {
			warn("%s: no runs of %s; dropping instance\n", name, missing)
			continue
		}
		rec := p.rec
		recs = append(recs, &rec)
	}
	return recs, nil
}

func missingAlgorithms(seen [resultfmt.NumAlgorithms]bool) string {
	var missing []string
	for _, a := range resultfmt.Algorithms {
		if !seen[a] {
			missing = append(missing, a.String())
		}
	}
	return strings.Join(missing, ", ")
}
