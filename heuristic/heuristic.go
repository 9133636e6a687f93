// Package heuristic implements the façade the outer search calls,
// wrapping a canonical.Collection with per-state caching and dead-end
// detection.
package heuristic

import (
	"math"

	"github.com/planopt/numheur/canonical"
	"github.com/planopt/numheur/normalize"
)

// Result is one evaluation outcome: evaluate(state) -> {value: real ≥ 0 or
// dead end, preferred_ops: empty}. PreferredOps is always empty — no
// component in this engine computes preferred operators, so the façade
// reports that honestly rather than fabricating a heuristic-sourced pick.
type Result struct {
	Value        float64
	DeadEnd      bool
	PreferredOps []string
}

// State is one concrete planning state: propositional values indexed by
// global propositional variable id, numeric values indexed by global
// numeric variable id.
type State struct {
	Prop []int
	Num  []float64
}

type stateKey struct {
	propHash uint64
	numKey   string
}

// Heuristic is the evaluation façade wrapping a built canonical.Collection.
// Values are cached per distinct concrete state within this Heuristic's
// lifetime — the cache is scoped to one evaluation context (one outer
// search), not shared process-wide.
type Heuristic struct {
	nt    *normalize.Task
	coll  *canonical.Collection
	cache map[stateKey]Result
}

// New wraps a canonical.Collection as an evaluation façade for the given
// normalized task.
func New(nt *normalize.Task, coll *canonical.Collection) *Heuristic {
	return &Heuristic{nt: nt, coll: coll, cache: map[stateKey]Result{}}
}

// Evaluate returns the canonical heuristic estimate for s, or DeadEnd=true
// if the collection proves s has no finite goal distance. Admissibility
// and consistency follow from canonical.Collection.Evaluate directly.
func (h *Heuristic) Evaluate(s State) Result {
	key := h.keyOf(s)
	if r, ok := h.cache[key]; ok {
		return r
	}

	v := h.coll.Evaluate(s.Prop, s.Num)
	r := Result{Value: v, DeadEnd: math.IsInf(v, 1)}
	if r.DeadEnd {
		r.Value = 0
	}
	h.cache[key] = r
	return r
}

func (h *Heuristic) keyOf(s State) stateKey {
	mul := uint64(1)
	var hash uint64
	for i, v := range s.Prop {
		hash += uint64(v) * mul
		mul *= uint64(h.nt.PropVars[i].DomainSize)
	}
	return stateKey{propHash: hash, numKey: numKeyOf(s.Num)}
}

func numKeyOf(num []float64) string {
	buf := make([]byte, 0, len(num)*8)
	for _, v := range num {
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(bits>>(8*i)))
		}
	}
	return string(buf)
}
