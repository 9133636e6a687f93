package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/task"
)

// buildAuxScenario constructs the S3 raw task: a comparison-axiom-backed
// propositional goal "var0 - var1 >= 0", and one operator adding +1 to var0
// and +2 to var1, with var0=5, var1=4 initially.
func buildAuxScenario() *task.Task {
	axiom := task.ComparisonAxiom{
		Lhs: task.VarOperand(0),
		Op:  task.GE,
		Rhs: task.VarOperand(1),
	}
	return &task.Task{
		PropVars: []task.PropVar{
			{Name: "ge(var0,var1)", DomainSize: 2, Axiom: &axiom},
		},
		NumVars: []task.NumVar{
			{Name: "var0", Type: task.Regular},
			{Name: "var1", Type: task.Regular},
		},
		Operators: []task.Operator{
			{
				Name:        "op1",
				AdditiveEff: map[int]float64{0: 1, 1: 2},
			},
		},
		GoalProp: []task.Fact{{Var: 0, Val: 1}},
		InitProp: []int{},
		InitNum:  []float64{5, 4},
	}
}

func TestAuxiliaryVariableSynthesis(t *testing.T) {
	raw := buildAuxScenario()
	n, err := Normalize(raw)
	require.NoError(t, err)

	require.Len(t, n.NumVars, 3)
	assert.Equal(t, task.Auxiliary, n.NumVars[2].Type)
	assert.InDelta(t, 1.0, n.InitNum[2], 1e-9)

	require.Len(t, n.GoalNum, 1)
	assert.Equal(t, 2, n.GoalNum[0].VarID())

	require.Len(t, n.Operators, 1)
	delta, ok := n.Operators[0].AdditiveEff[2]
	require.True(t, ok)
	assert.InDelta(t, -1.0, delta, 1e-9)
}

func TestNormalizeRejectsAssignAndAdditiveOnSameVariable(t *testing.T) {
	raw := &task.Task{
		NumVars: []task.NumVar{{Name: "var0", Type: task.Regular}},
		Operators: []task.Operator{
			{
				Name:        "bad",
				AdditiveEff: map[int]float64{0: 1},
				AssignEff:   map[int]float64{0: 2},
			},
		},
		InitNum: []float64{0},
	}
	_, err := Normalize(raw)
	assert.Error(t, err)
}

func TestNormalizePassesThroughPlainGoal(t *testing.T) {
	raw := &task.Task{
		PropVars:  []task.PropVar{{Name: "p0", DomainSize: 2}},
		NumVars:   []task.NumVar{{Name: "var0", Type: task.Regular}},
		Operators: []task.Operator{{Name: "op1", PropEff: []task.Fact{{Var: 0, Val: 1}}}},
		GoalProp:  []task.Fact{{Var: 0, Val: 1}},
		InitProp:  []int{0},
		InitNum:   []float64{0},
	}
	n, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, n.GoalProp, 1)
	assert.Equal(t, 0, n.GoalProp[0].Var)
	assert.Empty(t, n.GoalNum)
}

func TestApproxDomainSize(t *testing.T) {
	raw := buildAuxScenario()
	n, err := Normalize(raw)
	require.NoError(t, err)

	size := n.ApproxDomainSize(0)
	assert.GreaterOrEqual(t, size, 1)
}
