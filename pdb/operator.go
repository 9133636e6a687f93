package pdb

import (
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/pattern"
)

// AbstractOperator is a task operator projected onto one pattern:
// (preconditions, hash effect, cost). Propositional preconditions/effects
// are keyed by pattern position (index into the pattern's
// Regular/Numeric slices), not by raw variable id, so the dense fast path
// can address them directly.
type AbstractOperator struct {
	PropPre map[int]int // pattern-regular position -> required value

	// HashEffect is the signed delta applied to prop_hash when this
	// operator is applied: sum of (newVal-oldVal)*hashMul[pos] over every
	// propositional position this operator effects.
	HashEffect int64

	NumPre      []numcond.Condition // preconditions over pattern-numeric variables only
	AdditiveEff map[int]float64     // pattern-numeric position -> delta
	AssignEff   map[int]float64     // pattern-numeric position -> new value

	Cost float64
}

// buildAbstractOperators projects every operator of nt onto p, splitting the
// result into operators that touch P.Regular ("mixed", includes pure
// propositional operators when P.Numeric is empty) and operators that
// touch only P.Numeric ("purely numeric"). Operators that touch neither
// half of the pattern are dropped.
func buildAbstractOperators(p pattern.Pattern, nt *normalize.Task, hashMul []uint64) (mixed, numericOnly []AbstractOperator, err error) {
	regPos := indexOf(p.Regular)
	numPos := indexOf(p.Numeric)

	for _, op := range nt.Operators {
		pre := map[int]int{}
		eff := map[int]int{}
		for _, f := range op.PropPre {
			if pos, ok := regPos[f.Var]; ok {
				pre[pos] = f.Val
			}
		}
		for _, f := range op.PropEff {
			if pos, ok := regPos[f.Var]; ok {
				eff[pos] = f.Val
			}
		}

		additive := map[int]float64{}
		for v, delta := range op.AdditiveEff {
			if pos, ok := numPos[v]; ok && delta != 0 {
				additive[pos] = delta
			}
		}
		assign := map[int]float64{}
		for v, val := range op.AssignEff {
			if pos, ok := numPos[v]; ok {
				assign[pos] = val
			}
		}

		var numPre []numcond.Condition
		for _, c := range op.NumPre {
			if _, ok := numPos[c.VarID()]; ok {
				numPre = append(numPre, c)
			}
		}

		touchesReg := len(pre) > 0 || len(eff) > 0
		touchesNum := len(additive) > 0 || len(assign) > 0
		if !touchesReg && !touchesNum {
			continue
		}

		if !touchesReg {
			numericOnly = append(numericOnly, AbstractOperator{
				NumPre:      numPre,
				AdditiveEff: additive,
				AssignEff:   assign,
				Cost:        op.Cost,
			})
			continue
		}

		// Multiply out positions with an effect but no precondition: the
		// operator's applicability doesn't depend on the prior value there,
		// but the hash delta does, so one record is emitted per possible
		// prior value.
		var freePositions []int
		for pos := range eff {
			if _, ok := pre[pos]; !ok {
				freePositions = append(freePositions, pos)
			}
		}

		combos := multiplyOut(freePositions, domainSizesOf(p.Regular, nt))
		for _, combo := range combos {
			full := map[int]int{}
			for k, v := range pre {
				full[k] = v
			}
			for k, v := range combo {
				full[k] = v
			}

			var delta int64
			for pos, newVal := range eff {
				oldVal := full[pos]
				delta += int64(newVal-oldVal) * int64(hashMul[pos])
			}
			if delta == 0 && len(additive) == 0 && len(assign) == 0 {
				continue // self-loop; dropped
			}

			mixed = append(mixed, AbstractOperator{
				PropPre:     full,
				HashEffect:  delta,
				NumPre:      numPre,
				AdditiveEff: additive,
				AssignEff:   assign,
				Cost:        op.Cost,
			})
		}
	}

	return mixed, numericOnly, nil
}

func indexOf(ids []int) map[int]int {
	m := make(map[int]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

func domainSizesOf(regular []int, nt *normalize.Task) []int {
	out := make([]int, len(regular))
	for i, v := range regular {
		out[i] = nt.PropVars[v].DomainSize
	}
	return out
}

// multiplyOut enumerates every assignment of values to positions, each
// ranging over its domain size, returning one map per combination. An
// empty positions slice yields a single empty combination.
func multiplyOut(positions []int, domainSizes []int) []map[int]int {
	combos := []map[int]int{{}}
	for _, pos := range positions {
		var next []map[int]int
		for _, c := range combos {
			for v := 0; v < domainSizes[pos]; v++ {
				nc := make(map[int]int, len(c)+1)
				for k, vv := range c {
					nc[k] = vv
				}
				nc[pos] = v
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}
