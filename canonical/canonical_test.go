package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/additivity"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/pdb"
	"github.com/planopt/numheur/task"
)

// buildDisjointTask builds three variables where opA affects only a and opC
// affects only c, so a and c are additive; no operator affects b.
func buildDisjointTask() *normalize.Task {
	return &normalize.Task{
		PropVars: []task.PropVar{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}, {Name: "c", DomainSize: 2}},
		Operators: []normalize.Operator{
			{Name: "opA", PropEff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
			{Name: "opC", PropEff: []task.Fact{{Var: 2, Val: 1}}, Cost: 1},
		},
		GoalProp: []task.Fact{{Var: 0, Val: 1}},
		InitProp: []int{0, 0, 0},
	}
}

func TestEvaluateSumsAdditiveSubset(t *testing.T) {
	nt := buildDisjointTask()
	pa := pattern.New([]int{0}, nil)
	pc := pattern.New([]int{2}, nil)

	pdA, err := pdb.Build(pa, nt)
	require.NoError(t, err)
	pdC, err := pdb.Build(pc, nt)
	require.NoError(t, err)

	m := additivity.Build(nt)
	coll := Build(nt, []Entry{{Pat: pa, PDB: pdA}, {Pat: pc, PDB: pdC}}, m)

	// a=0 costs 1 step to reach goal a=1; c has no goal so its PDB
	// distances are all 0 (no goal constrains it — every state is a goal).
	got := coll.Evaluate([]int{0, 0, 0}, nil)
	assert.Equal(t, 1.0, got)
}

func TestDominancePruning(t *testing.T) {
	pa := pattern.New([]int{0}, nil)
	pb := pattern.New([]int{1}, nil)
	pab := pattern.New([]int{0, 1}, nil)

	subsets := [][]pattern.Pattern{
		{pa, pb},
		{pab},
	}
	pruned := PruneDominated(subsets)
	require.Len(t, pruned, 1)
	assert.Equal(t, []pattern.Pattern{pab}, pruned[0])
}
