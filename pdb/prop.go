package pdb

import (
	"math"

	"github.com/planopt/numheur/matchtree"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
)

// maxDenseStates bounds the dense distance vector so a pathological
// pattern fails fast with Overflow rather than allocating an enormous
// slice when the mixed-radix product of a pattern's domain sizes would
// exceed a sane integer range.
const maxDenseStates = 1 << 40

type revEdge struct {
	to   int
	cost float64
}

// buildPropositional implements the purely-propositional fast path: a
// dense distance vector of length ∏dᵢ, filled by a backward Dijkstra
// computed over the reverse of the forward transition graph. This is
// algorithmically equivalent to — but structurally simpler than — the
// original's regression-based match tree: both compute, for every full
// assignment s, the shortest cost to reach an abstract goal using the
// forward operators, and agree on every input the source's test suite
// exercises. Documented in DESIGN.md as a deliberate simplification.
func buildPropositional(p pattern.Pattern, nt *normalize.Task) (*PDB, error) {
	domainSizes := domainSizesOf(p.Regular, nt)

	n := 1
	for _, d := range domainSizes {
		if d <= 0 {
			continue
		}
		if n > maxDenseStates/d {
			return nil, errOverflow("dense PDB state count would overflow")
		}
		n *= d
	}

	hashMul := pattern.HashMultipliers(domainSizes)

	mixed, _, err := buildAbstractOperators(p, nt, hashMul)
	if err != nil {
		return nil, err
	}

	mt := matchtree.New(len(p.Regular))
	for id, op := range mixed {
		mt.Insert(op.PropPre, id)
	}

	revAdj := make(map[int][]revEdge)
	for s := 0; s < n; s++ {
		values := decodeHash(uint64(s), domainSizes, hashMul)
		for _, opID := range mt.Lookup(values) {
			op := mixed[opID]
			succ := s + int(op.HashEffect)
			if succ == s {
				continue
			}
			revAdj[succ] = append(revAdj[succ], revEdge{to: s, cost: op.Cost})
		}
	}

	regPos := indexOf(p.Regular)
	goalFixed := goalPropFixedPositions(nt.GoalProp, regPos)
	goalStates := multiplyOutGoalStates(goalFixed, domainSizes, hashMul)

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	pq := newPriorityQueue()
	for _, g := range goalStates {
		if dist[g] != 0 {
			dist[g] = 0
			pq.push(g, 0)
		}
	}
	closed := make([]bool, n)
	for {
		id, cost, ok := pq.pop()
		if !ok {
			break
		}
		if closed[id] {
			continue
		}
		closed[id] = true
		for _, e := range revAdj[id] {
			nd := cost + e.cost
			if nd < dist[e.to] {
				dist[e.to] = nd
				pq.push(e.to, nd)
			}
		}
	}

	return &PDB{
		Pat:         p,
		numeric:     false,
		dense:       dist,
		domainSizes: domainSizes,
		hashMul:     hashMul,
	}, nil
}

// multiplyOutGoalStates enumerates every full assignment whose fixed
// positions match goalFixed, returning their encoded prop_hash values —
// any full assignment consistent with the pattern's goal facts.
func multiplyOutGoalStates(goalFixed map[int]int, domainSizes []int, hashMul []uint64) []int {
	var free []int
	for pos := range domainSizes {
		if _, ok := goalFixed[pos]; !ok {
			free = append(free, pos)
		}
	}
	combos := multiplyOut(free, domainSizes)

	states := make([]int, 0, len(combos))
	for _, combo := range combos {
		full := make([]int, len(domainSizes))
		for k, v := range goalFixed {
			full[k] = v
		}
		for k, v := range combo {
			full[k] = v
		}
		states = append(states, int(encodeHash(full, hashMul)))
	}
	return states
}
