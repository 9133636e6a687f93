package normalize

import "math"

// ApproxDomainSize estimates the number of distinct values a regular (or
// auxiliary) numeric variable can reasonably take across a plan, used by
// pattern generators to bound PDB size before committing to a numeric
// pattern. Results are cached per variable id on first computation.
//
// The estimate widens the range of its initial value and the constants the
// variable is ever compared or assigned against by the largest single
// positive and negative additive delta any operator applies to it, then
// divides that widened range by the smallest nonzero net change of an
// increment/decrement pair (|inc - dec|), or by the smallest |delta| when
// the variable only ever moves in one direction, rounding down and adding
// one. The result is an estimate, not a bound on the reachable values.
func (t *Task) ApproxDomainSize(varID int) int {
	if n, ok := t.approxDomainSize[varID]; ok {
		return n
	}
	n := t.computeApproxDomainSize(varID)
	t.approxDomainSize[varID] = n
	return n
}

func (t *Task) computeApproxDomainSize(varID int) int {
	minConst := t.InitNum[varID]
	maxConst := t.InitNum[varID]
	widen := func(c float64) {
		if c < minConst {
			minConst = c
		}
		if c > maxConst {
			maxConst = c
		}
	}

	for _, op := range t.Operators {
		for _, c := range op.NumPre {
			if c.VarID() != varID {
				continue
			}
			if k, ok := c.GetConstant(); ok {
				widen(k)
			}
		}
		if v, ok := op.AssignEff[varID]; ok {
			widen(v)
		}
	}
	for _, c := range t.GoalNum {
		if c.VarID() != varID {
			continue
		}
		if k, ok := c.GetConstant(); ok {
			widen(k)
		}
	}

	var maxPos, maxNeg float64 // maxNeg stored as a nonnegative magnitude
	increments := map[float64]struct{}{}
	decrements := map[float64]struct{}{}
	minChange := math.Inf(1)

	for _, op := range t.Operators {
		delta, ok := op.AdditiveEff[varID]
		if !ok || delta == 0 {
			continue
		}
		if delta > 0 {
			if delta > maxPos {
				maxPos = delta
			}
			increments[delta] = struct{}{}
		} else {
			mag := -delta
			if mag > maxNeg {
				maxNeg = mag
			}
			decrements[mag] = struct{}{}
		}
		if mag := math.Abs(delta); mag < minChange {
			minChange = mag
		}
	}

	minConst -= maxNeg
	maxConst += maxPos

	minIncrement := math.Inf(1)
	for inc := range increments {
		for dec := range decrements {
			if pair := math.Abs(inc - dec); pair > 0 && pair < minIncrement {
				minIncrement = pair
			}
		}
	}
	if math.IsInf(minIncrement, 1) {
		minIncrement = minChange
	}
	if math.IsInf(minIncrement, 1) || minIncrement == 0 {
		// No additive effect ever touches this variable: it takes at most
		// one value along any plan.
		return 1
	}

	size := int(math.Abs((maxConst-minConst)/minIncrement)) + 1
	if size < 1 {
		size = 1
	}
	return size
}
