package pdb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/expr"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/task"
)

// buildS4 constructs the S4 scenario: a∈{0,1}, b∈{0,1}, goal a=1∧b=1,
// opA (requires b=1) sets a:=1, opB sets b:=1, both unit cost.
func buildS4() *normalize.Task {
	return &normalize.Task{
		PropVars: []task.PropVar{
			{Name: "a", DomainSize: 2},
			{Name: "b", DomainSize: 2},
		},
		Operators: []normalize.Operator{
			{Name: "opA", PropPre: []task.Fact{{Var: 1, Val: 1}}, PropEff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
			{Name: "opB", PropEff: []task.Fact{{Var: 1, Val: 1}}, Cost: 1},
		},
		GoalProp: []task.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}},
		InitProp: []int{0, 0},
	}
}

func TestPurelyPropositionalPDB(t *testing.T) {
	nt := buildS4()
	p := pattern.New([]int{0, 1}, nil)

	pd, err := Build(p, nt)
	require.NoError(t, err)
	require.False(t, pd.IsNumeric())

	cases := []struct {
		a, b int
		want float64
	}{
		{0, 0, 2},
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
	}
	for _, c := range cases {
		idx := uint64(c.a*1 + c.b*2)
		assert.Equal(t, c.want, pd.Get(idx, nil), "a=%d b=%d", c.a, c.b)
	}
}

// buildS5 constructs the S5 scenario: one numeric variable x, init x=0,
// goal x>=3, operators +1 and +2 at unit cost.
func buildS5() *normalize.Task {
	goalCond := numcond.New(expr.NewVar(0), numcond.GE, expr.NewConst(3))
	return &normalize.Task{
		NumVars: []task.NumVar{{Name: "x", Type: task.Regular}},
		Operators: []normalize.Operator{
			{Name: "inc1", AdditiveEff: map[int]float64{0: 1}, Cost: 1},
			{Name: "inc2", AdditiveEff: map[int]float64{0: 2}, Cost: 1},
		},
		GoalNum: []numcond.Condition{goalCond},
		InitNum: []float64{0},
	}
}

func TestMixedPDBReachesGoalWithAmpleBudget(t *testing.T) {
	nt := buildS5()
	p := pattern.New(nil, []int{0})

	pd, err := Build(p, nt, WithMaxNumberStates(100))
	require.NoError(t, err)
	require.True(t, pd.IsNumeric())

	get := func(x float64) float64 { return pd.Get(0, []float64{x}) }

	assert.Equal(t, 0.0, get(3))
	assert.Equal(t, 0.0, get(4))
	assert.Equal(t, 0.0, get(5))
	assert.Equal(t, 1.0, get(2))
	assert.Equal(t, 2.0, get(0))
}

func TestMixedPDBSmallBudgetFallsBack(t *testing.T) {
	nt := buildS5()
	p := pattern.New(nil, []int{0})

	pd, err := Build(p, nt, WithMaxNumberStates(2))
	require.NoError(t, err)
	require.True(t, pd.IsNumeric())

	// A state far outside the small enumerated neighborhood must fall back
	// to the miss policy, since the budget forces early termination: x=1000
	// satisfies the goal x>=3, so the fallback is 0, not min_action_cost.
	v := pd.Get(0, []float64{1000})
	assert.False(t, math.IsInf(v, 1))
	assert.GreaterOrEqual(t, v, 0.0)
}
