// Package normalize implements the normalized task model. It wraps a raw
// task.Task, classifies numeric variables, rewrites non-simple
// comparisons by introducing auxiliary numeric variables, and exposes
// operators in the canonical (prop-pre, num-pre, prop-eff, additive-eff,
// assign-eff) shape.
package normalize

import (
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/task"
)

// Operator is one normalized, ground operator.
type Operator struct {
	Name string

	PropPre []task.Fact
	NumPre  []numcond.Condition

	PropEff []task.Fact
	// AdditiveEff maps a regular-or-auxiliary numeric variable id to the
	// delta applied as v <- v + delta.
	AdditiveEff map[int]float64
	// AssignEff maps a regular-or-auxiliary numeric variable id to the
	// value applied as a full assignment v <- value.
	AssignEff map[int]float64

	Cost float64
}

// Task is the normalized task: the same propositional variables as the raw
// task, the raw numeric variables plus any synthesized auxiliary ones, and
// operators rewritten into the canonical shape.
type Task struct {
	PropVars []task.PropVar
	NumVars  []task.NumVar // original entries followed by synthesized Auxiliary ones

	Operators []Operator

	GoalProp []task.Fact
	GoalNum  []numcond.Condition

	InitProp []int
	InitNum  []float64 // aligned with NumVars, including auxiliaries

	// approxDomainSize caches get_approximate_domain_size results per
	// regular numeric variable id, computed lazily.
	approxDomainSize map[int]int
}

// IsRegularLike reports whether a numeric variable behaves as Regular for
// downstream PDB purposes: both true Regular variables and synthesized
// Auxiliary variables act as regular downstream of normalization.
func (t *Task) IsRegularLike(numVarID int) bool {
	ty := t.NumVars[numVarID].Type
	return ty == task.Regular || ty == task.Auxiliary
}
