package additivity

import "github.com/planopt/numheur/pattern"

// MaxCliques enumerates every maximal clique of the additivity compatibility
// graph over patterns via Bron-Kerbosch. Each returned clique is a slice of
// indices into patterns.
func (m *Matrices) MaxCliques(patterns []pattern.Pattern) [][]int {
	n := len(patterns)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Additive(patterns[i], patterns[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	var cliques [][]int
	bronKerbosch(adj, nil, all, nil, &cliques)
	return cliques
}

// bronKerbosch is the classic R/P/X maximal-clique recursion (Bron, Kerbosch
// 1973), without pivoting — pattern counts in practice are small enough
// that pivoting is not worth the extra bookkeeping.
func bronKerbosch(adj [][]bool, r, p, x []int, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			clique := append([]int(nil), r...)
			*out = append(*out, clique)
		}
		return
	}

	pCopy := append([]int(nil), p...)
	for _, v := range pCopy {
		nr := append(append([]int(nil), r...), v)
		np := intersectNeighbors(adj, p, v)
		nx := intersectNeighbors(adj, x, v)
		bronKerbosch(adj, nr, np, nx, out)

		p = removeValue(p, v)
		x = append(x, v)
	}
}

func intersectNeighbors(adj [][]bool, set []int, v int) []int {
	var out []int
	for _, u := range set {
		if adj[v][u] {
			out = append(out, u)
		}
	}
	return out
}

func removeValue(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if u != v {
			out = append(out, u)
		}
	}
	return out
}

// RefineSubsets implements the incremental additive-subset update used by
// hill climbing: given the existing maximal additive subsets
// (as index sets into the collection being grown) and a newly-added
// candidate pattern at index newIdx, intersect each subset with the set of
// patterns additive to the candidate and drop subsets that become empty,
// then add the singleton {newIdx}.
func (m *Matrices) RefineSubsets(patterns []pattern.Pattern, subsets [][]int, newIdx int) [][]int {
	refined := make([][]int, 0, len(subsets)+1)
	for _, s := range subsets {
		var kept []int
		for _, idx := range s {
			if m.Additive(patterns[idx], patterns[newIdx]) {
				kept = append(kept, idx)
			}
		}
		if len(kept) > 0 {
			refined = append(refined, kept)
		}
	}
	refined = append(refined, []int{newIdx})
	return refined
}
