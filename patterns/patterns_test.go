package patterns

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/causalgraph"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/task"
)

// buildChainRaw constructs a 3-propositional-variable chain task: opA
// (requires b) sets a, opB (requires c) sets b, opC sets c; goal a=1.
// The causal graph chains a<-b<-c, so greedy/systematic growth from the
// goal variable a should reach b then c.
func buildChainRaw() *task.Task {
	return &task.Task{
		PropVars: []task.PropVar{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}, {Name: "c", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "opA", PropPre: []task.Fact{{Var: 1, Val: 1}}, PropEff: []task.Fact{{Var: 0, Val: 1}}, Cost: 1},
			{Name: "opB", PropPre: []task.Fact{{Var: 2, Val: 1}}, PropEff: []task.Fact{{Var: 1, Val: 1}}, Cost: 1},
			{Name: "opC", PropEff: []task.Fact{{Var: 2, Val: 1}}, Cost: 1},
		},
		GoalProp: []task.Fact{{Var: 0, Val: 1}},
		InitProp: []int{0, 0, 0},
	}
}

func buildChainNormalized(t *testing.T) *normalize.Task {
	nt, err := normalize.Normalize(buildChainRaw())
	require.NoError(t, err)
	return nt
}

func TestManualGeneratorReturnsExactPattern(t *testing.T) {
	p := pattern.New([]int{0, 1}, nil)
	gen := Manual(p)
	got, err := gen.Generate(nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(p))
}

func TestGreedyGrowsAlongCausalChain(t *testing.T) {
	nt := buildChainNormalized(t)
	g := causalgraph.Build(buildChainRaw())

	gen := Greedy(GreedyOptions{MaxStates: 100})
	got, err := gen.Generate(nt, g)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.True(t, got[0].ContainsRegular(0))
	assert.True(t, got[0].ContainsRegular(1))
	assert.True(t, got[0].ContainsRegular(2))
}

func TestSystematicEnumeratesWithoutDuplicates(t *testing.T) {
	nt := buildChainNormalized(t)
	g := causalgraph.Build(buildChainRaw())

	gen := Systematic(SystematicOptions{MaxSize: 2})
	got, err := gen.Generate(nt, g)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range got {
		assert.LessOrEqual(t, p.Size(), 2)
		key := setKeyForPattern(p)
		assert.False(t, seen[key], "duplicate pattern %v", p)
		seen[key] = true
	}
	assert.NotEmpty(t, got)
}

func setKeyForPattern(p pattern.Pattern) string {
	out := ""
	for _, v := range p.Regular {
		out += "r" + string(rune('0'+v))
	}
	for _, v := range p.Numeric {
		out += "n" + string(rune('0'+v))
	}
	return out
}

func TestHillClimbStopsWhenNoImprovement(t *testing.T) {
	nt := buildChainNormalized(t)
	g := causalgraph.Build(buildChainRaw())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seed := pattern.New([]int{0}, nil)
	coll, err := HillClimb(ctx, nt, g, []pattern.Pattern{seed}, HillClimbOptions{
		MaxPatternSize: 3, SampleCount: 10, WalkLength: 3, MinImprovement: 1,
	})
	require.NoError(t, err)
	assert.NotNil(t, coll)
	assert.NotEmpty(t, coll.Entries())
}
