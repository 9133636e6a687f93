package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/expr"
)

// S1 — constant expression: (2 + 3 * 4).evaluate(v) = 14 for any v.
func TestConstantExpression(t *testing.T) {
	e := expr.NewBinOp(
		expr.NewConst(2),
		expr.OpAdd,
		expr.NewBinOp(expr.NewConst(3), expr.OpMul, expr.NewConst(4)),
	)

	assert.True(t, e.IsConstant())
	assert.Equal(t, float64(14), e.Evaluate(0))
	assert.Equal(t, float64(14), e.Evaluate(123))

	simplified := e.Simplify()
	c, ok := simplified.(expr.Const)
	require.True(t, ok, "simplify should fold a fully constant tree to Const")
	assert.Equal(t, float64(14), c.Value)
}

// S2 — affine expression: e = (var0 * 2) + 5.
func TestAffineExpression(t *testing.T) {
	e := expr.NewBinOp(
		expr.NewBinOp(expr.NewVar(0), expr.OpMul, expr.NewConst(2)),
		expr.OpAdd,
		expr.NewConst(5),
	)

	m, err := e.Multiplier()
	require.NoError(t, err)
	assert.Equal(t, float64(2), m)

	s, err := e.Summand()
	require.NoError(t, err)
	assert.Equal(t, float64(5), s)

	assert.Equal(t, float64(11), e.Evaluate(3))
}

func TestTwoVariablesIsAnError(t *testing.T) {
	e := expr.NewBinOp(expr.NewVar(0), expr.OpSub, expr.NewVar(1))
	_, err := e.Multiplier()
	assert.ErrorIs(t, err, expr.ErrTwoVariables)
}

func TestEvaluateIgnoreAdditiveConsts(t *testing.T) {
	// (var0 + 5) - var1: the +5 must not contribute to the additive delta.
	e := expr.NewBinOp(
		expr.NewBinOp(expr.NewVar(0), expr.OpAdd, expr.NewConst(5)),
		expr.OpSub,
		expr.NewVar(1),
	)
	got := e.EvaluateIgnoreAdditiveConsts([]float64{1, 2})
	assert.Equal(t, float64(-1), got) // 1 - 2, ignoring +5
}
