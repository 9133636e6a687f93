package additivity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/task"
)

// buildS6 constructs a 3-propositional-variable scenario where opAB touches
// both a and b, leaving c additive to everything (mirrors the spec's S6
// additivity illustration).
func buildS6() *normalize.Task {
	return &normalize.Task{
		PropVars: []task.PropVar{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}, {Name: "c", DomainSize: 2}},
		Operators: []normalize.Operator{
			{Name: "opAB", PropEff: []task.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}, Cost: 1},
			{Name: "opC", PropEff: []task.Fact{{Var: 2, Val: 1}}, Cost: 1},
		},
		InitProp: []int{0, 0, 0},
	}
}

func TestAdditiveDetectsSharedEffect(t *testing.T) {
	nt := buildS6()
	m := Build(nt)

	pa := pattern.New([]int{0}, nil)
	pb := pattern.New([]int{1}, nil)
	pc := pattern.New([]int{2}, nil)

	assert.False(t, m.Additive(pa, pb), "a and b share opAB's effect")
	assert.True(t, m.Additive(pa, pc))
	assert.True(t, m.Additive(pb, pc))
}

func TestMaxCliquesFindsFullyConnectedTriple(t *testing.T) {
	nt := &normalize.Task{
		PropVars: []task.PropVar{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}, {Name: "c", DomainSize: 2}},
		InitProp: []int{0, 0, 0},
	}
	m := Build(nt)
	patterns := []pattern.Pattern{
		pattern.New([]int{0}, nil),
		pattern.New([]int{1}, nil),
		pattern.New([]int{2}, nil),
	}
	cliques := m.MaxCliques(patterns)

	require := func(ok bool) {
		if !ok {
			t.Fatalf("expected a single maximal clique covering all three patterns, got %v", cliques)
		}
	}
	require(len(cliques) == 1)
	sort.Ints(cliques[0])
	assert.Equal(t, []int{0, 1, 2}, cliques[0])
}

func TestRefineSubsetsDropsNonAdditive(t *testing.T) {
	nt := buildS6()
	m := Build(nt)
	patterns := []pattern.Pattern{
		pattern.New([]int{0}, nil), // a
		pattern.New([]int{1}, nil), // b
		pattern.New([]int{2}, nil), // c
	}
	subsets := [][]int{{0, 2}} // {a, c} additive together

	refined := m.RefineSubsets(patterns, subsets, 1) // add b

	assert.Contains(t, refined, []int{1})
	for _, s := range refined {
		if len(s) > 1 {
			t.Fatalf("b is not additive to a, so {a,c} should have been reduced to {c}, got %v", s)
		}
	}
}
