package canonical

import "github.com/planopt/numheur/pattern"

// Dominates reports whether subset a dominates subset b: every pattern in
// b has a pattern in a that is a superset of it. A dominating subset's
// heuristic value is never smaller.
func Dominates(a, b []pattern.Pattern) bool {
	for _, pb := range b {
		found := false
		for _, pa := range a {
			if pa.IsSupersetOf(pb) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PruneDominated removes every subset that is dominated by another subset
// in the list, keeping subsets in their original relative order — drops
// any additive subset whose contribution is subsumed by another's.
// Subsets equal to one already kept are treated as dominated to avoid
// duplicates.
func PruneDominated(subsets [][]pattern.Pattern) [][]pattern.Pattern {
	kept := make([]bool, len(subsets))
	for i := range subsets {
		kept[i] = true
	}
	for i, si := range subsets {
		if !kept[i] {
			continue
		}
		for j, sj := range subsets {
			if i == j || !kept[j] {
				continue
			}
			if Dominates(si, sj) && (len(si) != len(sj) || i < j) {
				kept[j] = false
			}
		}
	}

	var out [][]pattern.Pattern
	for i, s := range subsets {
		if kept[i] {
			out = append(out, s)
		}
	}
	return out
}
