package expr

// Simplify folds b to a Const when both children are already constant;
// otherwise it simplifies each child in place and returns an equivalent
// BinOp. This intentionally does not re-associate or algebraically reduce
// further — the original C++ implementation this is grounded on
// (arithmetic_expression.cc, ArithmeticExpressionOp::simplify) carries the
// same shallow fold with a `// TODO simplify further`. Multiplier and
// Summand do not depend on a deeper fold: they recurse through nested
// BinOps, so an affine tree such as (x+1)+2 already reports m=1, s=3.
//
// TODO(expr): a full associative constant-fold (e.g. (x+1)+2 -> x+3) would
// shrink such trees; left as in the original.
func (b *BinOp) Simplify() Expr {
	if b.Lhs.IsConstant() && b.Rhs.IsConstant() {
		return NewConst(b.apply(b.Lhs.Evaluate(0), b.Rhs.Evaluate(0)))
	}
	b.Lhs = b.Lhs.Simplify()
	b.Rhs = b.Rhs.Simplify()

	return b
}
