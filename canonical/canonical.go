// Package canonical implements canonical heuristic evaluation and
// dominance pruning over a collection of pattern databases.
package canonical

import (
	"math"

	"github.com/planopt/numheur/additivity"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/pdb"
)

// Entry pairs a built PDB with the pattern it was built for, so dominance
// pruning and additivity analysis can reason about patterns without
// re-deriving them from the PDB's internals.
type Entry struct {
	Pat pattern.Pattern
	PDB *pdb.PDB
}

// Collection is a canonical heuristic: a set of PDBs plus the maximal
// additive subsets ("cliques") over them that evaluation sums within.
type Collection struct {
	nt      *normalize.Task
	entries []Entry
	cliques [][]int // indices into entries
}

// Build computes the maximal additive subsets of entries via the
// additivity matrices and returns a ready-to-evaluate Collection.
func Build(nt *normalize.Task, entries []Entry, m *additivity.Matrices) *Collection {
	patterns := make([]pattern.Pattern, len(entries))
	for i, e := range entries {
		patterns[i] = e.Pat
	}
	cliques := m.MaxCliques(patterns)
	if len(cliques) == 0 && len(entries) > 0 {
		// Every pattern is pairwise non-additive: each is its own subset.
		for i := range entries {
			cliques = append(cliques, []int{i})
		}
	}
	return &Collection{nt: nt, entries: entries, cliques: cliques}
}

// FromSubsets builds a Collection directly from precomputed subsets (index
// sets into entries), bypassing clique search — e.g. subsets maintained
// incrementally via additivity.Matrices.RefineSubsets.
func FromSubsets(nt *normalize.Task, entries []Entry, subsets [][]int) *Collection {
	return &Collection{nt: nt, entries: entries, cliques: subsets}
}

// Evaluate computes h(state) = max over additive subsets S of (sum over
// pdb in S of pdb.Get(state)), projecting the full concrete state
// (propValues indexed by global propositional variable id, numValues
// indexed by global numeric variable id) onto each PDB's own pattern via
// pdb.Project. Any +Inf summand short-circuits its subset's sum to +Inf,
// propagating a dead end through the whole collection.
func (c *Collection) Evaluate(propValues []int, numValues []float64) float64 {
	best := 0.0
	any := false
	for _, clique := range c.cliques {
		sum := 0.0
		for _, idx := range clique {
			e := c.entries[idx]
			propHash, numState := pdb.Project(e.Pat, c.nt, propValues, numValues)
			v := e.PDB.Get(propHash, numState)
			if math.IsInf(v, 1) {
				sum = math.Inf(1)
				break
			}
			sum += v
		}
		if !any || sum > best {
			best = sum
			any = true
		}
	}
	return best
}

// Entries exposes the underlying PDB entries, e.g. for dominance pruning
// or incremental hill-climbing bookkeeping.
func (c *Collection) Entries() []Entry { return c.entries }

// Cliques exposes the maximal additive subsets, as index sets into Entries.
func (c *Collection) Cliques() [][]int { return c.cliques }
