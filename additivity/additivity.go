// Package additivity implements additivity analysis between patterns and
// maximal-clique enumeration of the resulting compatibility graph.
package additivity

import (
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// Matrices precomputes, for every pair of task variables, whether some
// operator has a non-trivial effect on both — split into four boolean
// matrices by propositional/numeric half: prop↔prop, prop↔num, num↔prop,
// num↔num.
type Matrices struct {
	propProp [][]bool
	propNum  [][]bool
	numProp  [][]bool
	numNum   [][]bool
}

// Build computes the four matrices from every operator's effect set. An
// assignment effect counts as a "non-trivial effect" the same as an
// additive one: assignment effects participate in additivity exactly
// like additive effects.
func Build(nt *normalize.Task) *Matrices {
	numProp := len(nt.PropVars)
	numNum := len(nt.NumVars)

	m := &Matrices{
		propProp: newBoolMatrix(numProp, numProp),
		propNum:  newBoolMatrix(numProp, numNum),
		numProp:  newBoolMatrix(numNum, numProp),
		numNum:   newBoolMatrix(numNum, numNum),
	}

	for _, op := range nt.Operators {
		var propEffVars, numEffVars []int
		for _, f := range op.PropEff {
			propEffVars = append(propEffVars, f.Var)
		}
		for v := range op.AdditiveEff {
			numEffVars = append(numEffVars, v)
		}
		for v := range op.AssignEff {
			numEffVars = append(numEffVars, v)
		}

		for _, a := range propEffVars {
			for _, b := range propEffVars {
				if a != b {
					m.propProp[a][b] = true
				}
			}
			for _, b := range numEffVars {
				m.propNum[a][b] = true
				m.numProp[b][a] = true
			}
		}
		for _, a := range numEffVars {
			for _, b := range numEffVars {
				if a != b {
					m.numNum[a][b] = true
				}
			}
		}
	}

	return m
}

func newBoolMatrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// Additive reports whether patterns p and q are additive: no operator has
// a non-trivial effect on a variable of both.
func (m *Matrices) Additive(p, q pattern.Pattern) bool {
	for _, a := range p.Regular {
		for _, b := range q.Regular {
			if m.propProp[a][b] {
				return false
			}
		}
		for _, b := range q.Numeric {
			if m.propNum[a][b] {
				return false
			}
		}
	}
	for _, a := range p.Numeric {
		for _, b := range q.Regular {
			if m.numProp[a][b] {
				return false
			}
		}
		for _, b := range q.Numeric {
			if m.numNum[a][b] {
				return false
			}
		}
	}
	return true
}
