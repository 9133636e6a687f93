package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/additivity"
	"github.com/planopt/numheur/canonical"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/pdb"
	"github.com/planopt/numheur/task"
)

func buildGoalTask() *normalize.Task {
	return &normalize.Task{
		PropVars: []task.PropVar{{Name: "a", DomainSize: 2}},
		Operators: []normalize.Operator{
			{Name: "opA", PropEff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
		},
		GoalProp: []task.Fact{{Var: 0, Val: 1}},
		InitProp: []int{0},
	}
}

func TestEvaluateCachesAndReportsFiniteValue(t *testing.T) {
	nt := buildGoalTask()
	p := pattern.New([]int{0}, nil)
	pd, err := pdb.Build(p, nt)
	require.NoError(t, err)

	m := additivity.Build(nt)
	coll := canonical.Build(nt, []canonical.Entry{{Pat: p, PDB: pd}}, m)
	h := New(nt, coll)

	r1 := h.Evaluate(State{Prop: []int{0}})
	assert.False(t, r1.DeadEnd)
	assert.Equal(t, 1.0, r1.Value)
	assert.Empty(t, r1.PreferredOps)

	r2 := h.Evaluate(State{Prop: []int{0}})
	assert.Equal(t, r1, r2)
	assert.Len(t, h.cache, 1)
}

func TestLoadOptionsFillsDefaultsAndOverrides(t *testing.T) {
	doc := "max_number_pdb_states: 500\nmin_improvement: 3\n"
	cfg, err := LoadOptions(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.MaxNumberPDBStates)
	assert.Equal(t, 3, cfg.MinImprovement)
	assert.Equal(t, DefaultConfig().PatternMaxSize, cfg.PatternMaxSize)
}
