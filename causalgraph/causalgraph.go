// Package causalgraph implements the numeric causal graph over the union
// of a task's propositional and regular numeric variables.
//
// Variables are addressed through one compact, contiguous index space: a
// propositional variable v keeps its own id [0, numProp); a numeric
// variable v is addressed as numProp+v. This mirrors the original's
// "glob_var_id" unification (causal_graph.h) while staying simple enough
// to expose as plain sorted []int adjacency lists.
package causalgraph

import (
	"sort"

	"github.com/planopt/numheur/task"
)

// Graph is the causal graph for one task: pre->eff and eff<->eff arcs over
// the unified variable index space, sorted and deduplicated, queryable
// either as a whole or partitioned by propositional/numeric half.
type Graph struct {
	numProp int
	numNum  int

	preToEff map[int][]int // precondition var -> effect vars it reaches
	effToPre map[int][]int // reverse of preToEff
	effToEff map[int][]int // symmetric effect<->effect adjacency
}

// NumProp returns the propositional-variable count (the size of the
// propositional half of the unified index space).
func (g *Graph) NumProp() int { return g.numProp }

// NumNum returns the numeric-variable count.
func (g *Graph) NumNum() int { return g.numNum }

// PropIndex maps a propositional variable id into the unified index space.
func (g *Graph) PropIndex(v int) int { return v }

// NumIndex maps a numeric variable id into the unified index space.
func (g *Graph) NumIndex(v int) int { return g.numProp + v }

// IsNumeric reports whether a unified index refers to a numeric variable.
func (g *Graph) IsNumeric(idx int) bool { return idx >= g.numProp }

// SplitIndex converts a unified index back to (isNumeric, original id).
func (g *Graph) SplitIndex(idx int) (isNumeric bool, id int) {
	if idx >= g.numProp {
		return true, idx - g.numProp
	}
	return false, idx
}

// Build constructs the causal graph for t: for every operator, a pre->eff
// arc from every precondition variable to every effect variable
// (propositional, additive, or assign), and an eff<->eff arc between every
// pair of distinct effect variables. Additive effects with delta == 0 do
// not contribute arcs.
func Build(t *task.Task) *Graph {
	g := &Graph{
		numProp:  len(t.PropVars),
		numNum:   len(t.NumVars),
		preToEff: make(map[int][]int),
		effToPre: make(map[int][]int),
		effToEff: make(map[int][]int),
	}

	for _, op := range t.Operators {
		pres := make([]int, 0, len(op.PropPre))
		for _, f := range op.PropPre {
			pres = append(pres, g.PropIndex(f.Var))
		}

		effs := make([]int, 0, len(op.PropEff)+len(op.AdditiveEff)+len(op.AssignEff))
		for _, f := range op.PropEff {
			effs = append(effs, g.PropIndex(f.Var))
		}
		for v, delta := range op.AdditiveEff {
			if delta == 0 {
				continue
			}
			effs = append(effs, g.NumIndex(v))
		}
		for v := range op.AssignEff {
			effs = append(effs, g.NumIndex(v))
		}

		for _, p := range pres {
			for _, e := range effs {
				g.addPreToEff(p, e)
			}
		}
		for i, e1 := range effs {
			for j, e2 := range effs {
				if i != j && e1 != e2 {
					g.addEffToEff(e1, e2)
				}
			}
		}
	}

	g.sortAll()

	return g
}

func (g *Graph) addPreToEff(p, e int) {
	g.preToEff[p] = append(g.preToEff[p], e)
	g.effToPre[e] = append(g.effToPre[e], p)
}

func (g *Graph) addEffToEff(a, b int) {
	g.effToEff[a] = append(g.effToEff[a], b)
}

func (g *Graph) sortAll() {
	for _, m := range []map[int][]int{g.preToEff, g.effToPre, g.effToEff} {
		for k, vs := range m {
			m[k] = sortDedup(vs)
		}
	}
}

func sortDedup(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	cp := append([]int(nil), in...)
	sort.Ints(cp)
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// PreToEff returns the sorted, deduplicated list of effect variables (in
// the unified index space) reachable from var via a pre->eff arc.
func (g *Graph) PreToEff(varIdx int) []int { return g.preToEff[varIdx] }

// EffToPre returns the reverse: precondition variables that reach varIdx.
func (g *Graph) EffToPre(varIdx int) []int { return g.effToPre[varIdx] }

// EffToEff returns the effect variables that co-occur as effects of some
// operator together with varIdx.
func (g *Graph) EffToEff(varIdx int) []int { return g.effToEff[varIdx] }

// Neighbors returns the union of PreToEff, EffToPre and EffToEff for
// varIdx — the undirected causal-graph adjacency used by pattern
// generators (greedy and hill-climbing) to find "the next causal
// neighbor" when extending a pattern.
func (g *Graph) Neighbors(varIdx int) []int {
	all := append([]int(nil), g.preToEff[varIdx]...)
	all = append(all, g.effToPre[varIdx]...)
	all = append(all, g.effToEff[varIdx]...)
	return sortDedup(all)
}
