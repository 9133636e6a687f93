package patterns

import (
	"github.com/planopt/numheur/causalgraph"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// GreedyOptions configures the greedy single-pattern generator.
type GreedyOptions struct {
	// MaxStates bounds the abstract-state-count estimate of the grown
	// pattern (product of regular domain sizes times each numeric
	// variable's normalize.Task.ApproxDomainSize); growth stops before
	// exceeding it.
	MaxStates int
}

// Greedy builds a Generator that starts from every task goal variable
// (unified index space) and repeatedly adds the causal-graph neighbor
// that keeps the pattern's estimated size smallest, until no neighbor can
// be added without exceeding MaxStates.
func Greedy(opts GreedyOptions) Generator {
	if opts.MaxStates <= 0 {
		opts.MaxStates = 1_000_000
	}
	return GeneratorFunc(func(nt *normalize.Task, g *causalgraph.Graph) ([]pattern.Pattern, error) {
		seeds := goalUnifiedVars(nt, g)
		if len(seeds) == 0 {
			return nil, nil
		}

		included := map[int]bool{}
		for _, s := range seeds {
			included[s] = true
		}

		size := estimateSize(nt, g, included)

		for {
			candidate, candSize, ok := bestNeighbor(nt, g, included, size, opts.MaxStates)
			if !ok {
				break
			}
			included[candidate] = true
			size = candSize
		}

		return []pattern.Pattern{patternFromUnified(g, included)}, nil
	})
}

// goalUnifiedVars collects every task goal variable (propositional and
// numeric) in the causal graph's unified index space.
func goalUnifiedVars(nt *normalize.Task, g *causalgraph.Graph) []int {
	var out []int
	for _, f := range nt.GoalProp {
		out = append(out, g.PropIndex(f.Var))
	}
	for _, c := range nt.GoalNum {
		if c.VarID() >= 0 {
			out = append(out, g.NumIndex(c.VarID()))
		}
	}
	return out
}

// bestNeighbor scans every causal-graph neighbor of the current pattern
// not already included, picking the one whose inclusion yields the
// smallest resulting size estimate that still fits within maxStates.
func bestNeighbor(nt *normalize.Task, g *causalgraph.Graph, included map[int]bool, curSize, maxStates int) (int, int, bool) {
	best := -1
	bestSize := -1
	for idx := range included {
		for _, n := range g.Neighbors(idx) {
			if included[n] {
				continue
			}
			trial := map[int]bool{n: true}
			for k := range included {
				trial[k] = true
			}
			sz := estimateSize(nt, g, trial)
			if sz > maxStates {
				continue
			}
			if best == -1 || sz < bestSize {
				best, bestSize = n, sz
			}
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestSize, true
}

// estimateSize computes the abstract-state-count estimate of the pattern
// described by the unified index set idxs.
func estimateSize(nt *normalize.Task, g *causalgraph.Graph, idxs map[int]bool) int {
	size := 1
	for idx := range idxs {
		isNum, id := fromUnified(g, idx)
		if isNum {
			size *= nt.ApproxDomainSize(id)
		} else {
			size *= nt.PropVars[id].DomainSize
		}
		if size > 1<<30 {
			return size // already hopeless, stop risking overflow
		}
	}
	return size
}
