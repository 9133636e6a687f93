// Package patterns implements the pattern-collection generators (manual,
// greedy, systematic, hill climbing) that drive which PDBs a canonical
// heuristic ends up built from.
package patterns

import (
	"sort"

	"github.com/planopt/numheur/causalgraph"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// Generator produces a collection of patterns for a normalized task.
type Generator interface {
	Generate(nt *normalize.Task, g *causalgraph.Graph) ([]pattern.Pattern, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(nt *normalize.Task, g *causalgraph.Graph) ([]pattern.Pattern, error)

// Generate calls f.
func (f GeneratorFunc) Generate(nt *normalize.Task, g *causalgraph.Graph) ([]pattern.Pattern, error) {
	return f(nt, g)
}

// Manual returns a Generator that always yields exactly the given
// pattern, unconditionally — used when the caller already knows which
// pattern(s) it wants.
func Manual(ps ...pattern.Pattern) Generator {
	return GeneratorFunc(func(*normalize.Task, *causalgraph.Graph) ([]pattern.Pattern, error) {
		out := make([]pattern.Pattern, len(ps))
		copy(out, ps)
		return out, nil
	})
}

// fromUnified is the inverse of causalgraph.Graph's PropIndex/NumIndex.
func fromUnified(g *causalgraph.Graph, idx int) (isNumeric bool, id int) {
	return g.SplitIndex(idx)
}

// patternFromUnified builds a pattern.Pattern from a set of unified causal
// graph indices.
func patternFromUnified(g *causalgraph.Graph, idxs map[int]bool) pattern.Pattern {
	var regular, numeric []int
	for idx := range idxs {
		isNum, id := fromUnified(g, idx)
		if isNum {
			numeric = append(numeric, id)
		} else {
			regular = append(regular, id)
		}
	}
	sort.Ints(regular)
	sort.Ints(numeric)
	return pattern.New(regular, numeric)
}
