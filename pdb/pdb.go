// Package pdb implements construction and lookup of a pattern database,
// over either a purely-propositional pattern (dense fast path) or a
// pattern with at least one numeric variable (bounded forward exploration
// plus backward Dijkstra).
package pdb

import (
	"math"

	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/stateregistry"
)

// PDB is a built, read-only pattern database for one pattern: built in one
// pass and then read-only.
type PDB struct {
	Pat     pattern.Pattern
	numeric bool

	// Propositional fast path.
	dense []float64

	// Shared by both paths: domain sizes and hash weights for P.Regular.
	domainSizes []int
	hashMul     []uint64

	// Mixed numeric path.
	registry       *stateregistry.Registry
	dist           []float64
	exhausted      bool
	minActionCost  float64
	goalPropFixed  map[int]int
	goalNum        []numcond.Condition
	numPosOfGlobal map[int]int
}

// Build constructs a PDB for p over the normalized task nt, dispatching to
// the dense fast path when p has no numeric variables and to the bounded
// forward/backward scheme otherwise.
func Build(p pattern.Pattern, nt *normalize.Task, opts ...Option) (*PDB, error) {
	cfg := resolveOptions(opts...)
	if len(p.Numeric) == 0 {
		return buildPropositional(p, nt)
	}
	return buildMixed(p, nt, cfg)
}

// Get returns the abstract goal distance for the query state projected as
// (propHash, numState).
func (pd *PDB) Get(propHash uint64, numState []float64) float64 {
	if !pd.numeric {
		return pd.dense[propHash]
	}

	if id, ok := pd.registry.Contains(pattern.AbstractState{PropHash: propHash, NumState: numState}); ok {
		// A reached state with no finite distance is a dead end only when the
		// space was exhausted; otherwise it takes the fallback below.
		if d := pd.dist[id]; !math.IsInf(d, 1) || pd.exhausted {
			return d
		}
	}
	if pd.exhausted {
		return math.Inf(1) // true dead end
	}
	if goalSatisfied(propHash, numState, pd.goalPropFixed, pd.domainSizes, pd.hashMul, pd.goalNum, pd.numPosOfGlobal) {
		return 0
	}
	return pd.minActionCost
}

// IsNumeric reports whether this PDB uses the mixed numeric path.
func (pd *PDB) IsNumeric() bool { return pd.numeric }

// Size returns the number of distances stored: the dense vector length for
// the propositional path, or the (possibly compacted) registry size for
// the mixed path.
func (pd *PDB) Size() int {
	if !pd.numeric {
		return len(pd.dense)
	}
	return pd.registry.Size()
}

// MeanFiniteDistance is an optimization target some pattern generators in
// the original used to score candidate PDBs by their average finite
// distance. It was never ported to the numeric PDB path there either, so
// this reports Unsupported rather than silently approximating it.
func (pd *PDB) MeanFiniteDistance() (float64, error) {
	return 0, errUnsupported("mean finite distance is not implemented for the numeric PDB path")
}
