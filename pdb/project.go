package pdb

import (
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// Project computes the (propHash, numState) query pair a PDB.Get call
// expects, given the full concrete task state: propValues indexed by
// global propositional variable id, numValues indexed by global numeric
// variable id. Callers with several PDBs over different patterns of the
// same task (e.g. canonical heuristic evaluation) use this to derive each
// PDB's own local query from one shared concrete state.
func Project(p pattern.Pattern, nt *normalize.Task, propValues []int, numValues []float64) (uint64, []float64) {
	domainSizes := domainSizesOf(p.Regular, nt)
	hashMul := pattern.HashMultipliers(domainSizes)

	localValues := make([]int, len(p.Regular))
	for i, v := range p.Regular {
		localValues[i] = propValues[v]
	}
	propHash := encodeHash(localValues, hashMul)

	numState := make([]float64, len(p.Numeric))
	for i, v := range p.Numeric {
		numState[i] = numValues[v]
	}
	return propHash, numState
}
