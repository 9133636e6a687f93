package numcond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planopt/numheur/expr"
	"github.com/planopt/numheur/numcond"
)

// S2 — the condition e >= 11 simplified yields var0 >= 3;
// .satisfied(2) = false, .satisfied(3) = true.
func TestConditionGetConstantAndSatisfied(t *testing.T) {
	e := expr.NewBinOp(
		expr.NewBinOp(expr.NewVar(0), expr.OpMul, expr.NewConst(2)),
		expr.OpAdd,
		expr.NewConst(5),
	)
	cond := numcond.New(e, numcond.GE, expr.NewConst(11))

	c, ok := cond.GetConstant()
	assert.True(t, ok)
	assert.Equal(t, float64(3), c)

	assert.False(t, cond.Satisfied(2))
	assert.True(t, cond.Satisfied(3))
	assert.Equal(t, 0, cond.VarID())
}

// S10 — satisfied(v) matches direct evaluation of both sides for every op.
func TestSatisfiedMatchesDirectEvaluation(t *testing.T) {
	ops := []numcond.Op{numcond.LT, numcond.LE, numcond.EQ, numcond.GE, numcond.GT}
	for _, op := range ops {
		cond := numcond.New(expr.NewVar(0), op, expr.NewConst(5))
		for _, v := range []float64{3, 5, 7} {
			want := directCompare(v, op, 5)
			assert.Equal(t, want, cond.Satisfied(v), "op=%v value=%v", op, v)
		}
	}
}

func directCompare(l float64, op numcond.Op, r float64) bool {
	switch op {
	case numcond.LT:
		return l < r
	case numcond.LE:
		return l <= r
	case numcond.EQ:
		return l == r
	case numcond.GE:
		return l >= r
	case numcond.GT:
		return l > r
	}
	return false
}

func TestConstantCondition(t *testing.T) {
	cond := numcond.New(expr.NewConst(2), numcond.LT, expr.NewConst(3))
	assert.True(t, cond.IsConstant())
	assert.Equal(t, -1, cond.VarID())
	_, ok := cond.GetConstant()
	assert.False(t, ok)
}
