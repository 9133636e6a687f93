package pdb

import (
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/task"
)

// goalPropFixedPositions projects goalProp onto pattern positions via
// regPos, dropping facts over variables outside the pattern.
func goalPropFixedPositions(goalProp []task.Fact, regPos map[int]int) map[int]int {
	fixed := map[int]int{}
	for _, f := range goalProp {
		if pos, ok := regPos[f.Var]; ok {
			fixed[pos] = f.Val
		}
	}
	return fixed
}

// goalNumFiltered keeps only the numeric goal conditions whose variable
// lies inside the pattern's numeric side.
func goalNumFiltered(goalNum []numcond.Condition, numPos map[int]int) []numcond.Condition {
	var out []numcond.Condition
	for _, c := range goalNum {
		if _, ok := numPos[c.VarID()]; ok || c.VarID() < 0 {
			out = append(out, c)
		}
	}
	return out
}

// encodeHash folds per-position values into a mixed-radix hash using the
// given weights.
func encodeHash(values []int, hashMul []uint64) uint64 {
	var h uint64
	for i, v := range values {
		h += uint64(v) * hashMul[i]
	}
	return h
}

// decodeHash is the inverse of encodeHash.
func decodeHash(h uint64, domainSizes []int, hashMul []uint64) []int {
	values := make([]int, len(domainSizes))
	for i := range domainSizes {
		if domainSizes[i] == 0 {
			continue
		}
		values[i] = int((h / hashMul[i]) % uint64(domainSizes[i]))
	}
	return values
}

// numPreSatisfied evaluates every condition in conds against the pattern's
// projected numeric state, conditions over variables outside the pattern
// having already been dropped by buildAbstractOperators.
func numPreSatisfied(conds []numcond.Condition, numState []float64, numPosOfGlobal map[int]int) bool {
	for _, c := range conds {
		vid := c.VarID()
		if vid < 0 {
			if !c.Satisfied(0) {
				return false
			}
			continue
		}
		pos, ok := numPosOfGlobal[vid]
		if !ok {
			continue
		}
		if !c.Satisfied(numState[pos]) {
			return false
		}
	}
	return true
}

// goalSatisfied reports whether a (propHash, numState) pair projects onto
// an abstract goal state: every fixed propositional goal position matches,
// and every projected numeric goal condition holds.
func goalSatisfied(
	propHash uint64, numState []float64,
	goalPropFixed map[int]int, domainSizes []int, hashMul []uint64,
	goalNum []numcond.Condition, numPosOfGlobal map[int]int,
) bool {
	if len(goalPropFixed) > 0 {
		values := decodeHash(propHash, domainSizes, hashMul)
		for pos, val := range goalPropFixed {
			if values[pos] != val {
				return false
			}
		}
	}
	return numPreSatisfied(goalNum, numState, numPosOfGlobal)
}
