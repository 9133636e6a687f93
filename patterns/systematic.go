package patterns

import (
	"sort"
	"strconv"
	"strings"

	"github.com/planopt/numheur/causalgraph"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// SystematicOptions configures exhaustive connected-pattern enumeration.
type SystematicOptions struct {
	// MaxSize caps the number of variables (regular+numeric) in any
	// generated pattern.
	MaxSize int
}

// Systematic enumerates every connected induced subgraph of the causal
// graph, up to MaxSize variables, rooted at each goal variable: causal-
// graph-connected unions of goal-reachable variables, deduplicated. Two
// SGAs ("sub-graph of goal ancestors") that
// describe the same variable set are only reported once.
func Systematic(opts SystematicOptions) Generator {
	if opts.MaxSize <= 0 {
		opts.MaxSize = 3
	}
	return GeneratorFunc(func(nt *normalize.Task, g *causalgraph.Graph) ([]pattern.Pattern, error) {
		seeds := goalUnifiedVars(nt, g)
		seen := map[string]bool{}
		var out []pattern.Pattern

		for _, seed := range seeds {
			enumerateConnected(g, map[int]bool{seed: true}, neighborFrontier(g, map[int]bool{seed: true}), opts.MaxSize, seen, &out)
		}
		return out, nil
	})
}

// enumerateConnected is the classic reverse-search enumeration of
// connected induced subgraphs containing `included`: at each step, every
// vertex of the current frontier (neighbors not yet included) is tried as
// the next addition, recursing until MaxSize is reached or the frontier
// is empty. Every included set encountered (including the seed itself) is
// recorded as a candidate pattern.
func enumerateConnected(g *causalgraph.Graph, included map[int]bool, frontier []int, maxSize int, seen map[string]bool, out *[]pattern.Pattern) {
	recordIfNew(g, included, seen, out)
	if len(included) >= maxSize {
		return
	}
	for _, v := range frontier {
		next := cloneSet(included)
		next[v] = true
		nextFrontier := neighborFrontier(g, next)
		enumerateConnected(g, next, nextFrontier, maxSize, seen, out)
	}
}

func recordIfNew(g *causalgraph.Graph, included map[int]bool, seen map[string]bool, out *[]pattern.Pattern) {
	key := setKey(included)
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, patternFromUnified(g, included))
}

func neighborFrontier(g *causalgraph.Graph, included map[int]bool) []int {
	var frontier []int
	for idx := range included {
		for _, n := range g.Neighbors(idx) {
			if !included[n] {
				frontier = append(frontier, n)
			}
		}
	}
	return sortDedupInts(frontier)
}

func cloneSet(s map[int]bool) map[int]bool {
	out := make(map[int]bool, len(s)+1)
	for k := range s {
		out[k] = true
	}
	return out
}

func setKey(s map[int]bool) string {
	idxs := make([]int, 0, len(s))
	for idx := range s {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func sortDedupInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	sort.Ints(in)
	out := in[:1]
	for _, v := range in[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
