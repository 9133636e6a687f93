// Package pattern defines the Pattern type and the abstract-state hashing
// helpers shared by every PDB-related component.
package pattern

import "sort"

// Pattern is a projection of the task onto a subset of propositional
// ("regular") and numeric variables. Both slices are sorted and
// deduplicated; the two sides are disjoint (a variable id space for
// propositional variables is distinct from the numeric variable id space,
// per task.PropVar/task.NumVar being separately indexed).
type Pattern struct {
	Regular []int
	Numeric []int
}

// New builds a Pattern, sorting and deduplicating both sides. Duplicate
// entries are silently dropped — the caller is expected to have already
// logged a warning at a higher layer.
func New(regular, numeric []int) Pattern {
	return Pattern{Regular: sortDedup(regular), Numeric: sortDedup(numeric)}
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

// Equal reports structural equality of two patterns.
func (p Pattern) Equal(other Pattern) bool {
	return intsEqual(p.Regular, other.Regular) && intsEqual(p.Numeric, other.Numeric)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Less provides a total order over patterns (regular then numeric,
// lexicographically), mirroring the original Pattern::operator<.
func (p Pattern) Less(other Pattern) bool {
	if c := compareInts(p.Regular, other.Regular); c != 0 {
		return c < 0
	}
	return compareInts(p.Numeric, other.Numeric) < 0
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ContainsRegular reports whether v (a propositional variable id) is part of the
// pattern's regular side.
func (p Pattern) ContainsRegular(v int) bool { return contains(p.Regular, v) }

// ContainsNumeric reports whether v (a numeric variable id) is part of the
// pattern's numeric side.
func (p Pattern) ContainsNumeric(v int) bool { return contains(p.Numeric, v) }

func contains(xs []int, v int) bool {
	i := sort.SearchInts(xs, v)
	return i < len(xs) && xs[i] == v
}

// IsSupersetOf reports whether p is a superset of other on both sides,
// used to detect dominance between patterns (p ⊇ p').
func (p Pattern) IsSupersetOf(other Pattern) bool {
	return isSubset(other.Regular, p.Regular) && isSubset(other.Numeric, p.Numeric)
}

func isSubset(small, big []int) bool {
	for _, v := range small {
		if !contains(big, v) {
			return false
		}
	}
	return true
}

// Empty reports whether the pattern has no variables on either side.
func (p Pattern) Empty() bool { return len(p.Regular) == 0 && len(p.Numeric) == 0 }

// Size returns the total variable count across both sides, used by
// pattern generators to compare pattern "size".
func (p Pattern) Size() int { return len(p.Regular) + len(p.Numeric) }

// AbstractState is one state of the projected task for a Pattern: the
// propositional values hashed into a single mixed-radix integer, plus the
// exact numeric values of the pattern's numeric variables.
type AbstractState struct {
	PropHash uint64
	NumState []float64
}

// Equal compares two abstract states by both components.
func (s AbstractState) Equal(other AbstractState) bool {
	if s.PropHash != other.PropHash || len(s.NumState) != len(other.NumState) {
		return false
	}
	for i := range s.NumState {
		if s.NumState[i] != other.NumState[i] {
			return false
		}
	}
	return true
}

// HashMultipliers computes the mixed-radix weight vector for a pattern's
// regular variables, given their domain sizes: hashMul[i] = product of
// domainSizes[j] for j < i. hashMul has one entry per pattern regular
// variable, in pattern order.
//
// Returns an error-free uint64 product unless it would overflow; overflow
// detection is the caller's responsibility (pdb package), since only there
// is the full pattern product known to be a fatal condition.
func HashMultipliers(domainSizes []int) []uint64 {
	mults := make([]uint64, len(domainSizes))
	acc := uint64(1)
	for i, d := range domainSizes {
		mults[i] = acc
		acc *= uint64(d)
	}
	return mults
}
