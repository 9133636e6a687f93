package expr

// Multiplier and Summand recover the affine form m*v + s of an expression
// that references at most one variable. They are grounded directly on
// ArithmeticExpressionOp::get_multiplier/get_summand: exactly one side of
// the (simplified) BinOp must carry the variable, the other must be
// constant.
func (b *BinOp) Multiplier() (float64, error) {
	lVars, rVars := b.Lhs.Vars(), b.Rhs.Vars()
	switch {
	case len(lVars) > 0 && len(rVars) > 0:
		return 0, ErrTwoVariables
	case len(lVars) > 0:
		lm, err := b.Lhs.Multiplier()
		if err != nil {
			return 0, err
		}
		switch b.Op {
		case OpAdd, OpSub:
			return lm, nil
		case OpMul:
			rc := b.Rhs.Evaluate(0)
			return lm * rc, nil
		case OpDiv:
			rc := b.Rhs.Evaluate(0)
			if rc == 0 {
				return 0, ErrDivisionByZero
			}
			return lm / rc, nil
		default:
			return 0, ErrNotAffine
		}
	case len(rVars) > 0:
		rm, err := b.Rhs.Multiplier()
		if err != nil {
			return 0, err
		}
		switch b.Op {
		case OpAdd:
			return rm, nil
		case OpSub:
			return -rm, nil
		case OpMul:
			lc := b.Lhs.Evaluate(0)
			return lc * rm, nil
		case OpDiv:
			// The variable sits in the denominator: 1/(rm*v+rs) is not affine
			// in v for rm != 0, so there's no m*v+s form to report.
			return 0, ErrNotAffine
		default:
			return 0, ErrNotAffine
		}
	default:
		// Both sides constant: Simplify() should have folded this away.
		return 0, ErrNotAffine
	}
}

func (b *BinOp) Summand() (float64, error) {
	lVars, rVars := b.Lhs.Vars(), b.Rhs.Vars()
	switch {
	case len(lVars) > 0 && len(rVars) > 0:
		return 0, ErrTwoVariables
	case len(lVars) > 0:
		ls, err := b.Lhs.Summand()
		if err != nil {
			return 0, err
		}
		rc := b.Rhs.Evaluate(0)
		switch b.Op {
		case OpAdd:
			return ls + rc, nil
		case OpSub:
			return ls - rc, nil
		case OpMul:
			return ls * rc, nil
		case OpDiv:
			if rc == 0 {
				return 0, ErrDivisionByZero
			}
			return ls / rc, nil
		default:
			return 0, ErrNotAffine
		}
	case len(rVars) > 0:
		rs, err := b.Rhs.Summand()
		if err != nil {
			return 0, err
		}
		lc := b.Lhs.Evaluate(0)
		switch b.Op {
		case OpAdd:
			return lc + rs, nil
		case OpSub:
			return lc - rs, nil
		case OpMul:
			return lc * rs, nil
		case OpDiv:
			return 0, ErrNotAffine
		default:
			return 0, ErrNotAffine
		}
	default:
		return 0, ErrNotAffine
	}
}
