package pdb

import (
	"math"

	"github.com/planopt/numheur/matchtree"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/stateregistry"
)

type backArc struct {
	from int
	cost float64
}

// buildMixed implements the bounded-forward / backward-Dijkstra scheme for
// a pattern with at least one numeric variable.
//
// Reached-state counting convention: a state counts against the budget
// the first time it is interned in the registry — equivalently, the
// first time it is pushed onto the forward open list — not on every
// subsequent re-discovery. Once the budget is
// hit, no further NEW states are created, but states already enqueued
// continue to be popped and expanded against existing successors; this
// keeps the forward phase's cost ordering meaningful right up to the cutoff
// rather than stopping mid-frontier.
func buildMixed(p pattern.Pattern, nt *normalize.Task, opts Options) (*PDB, error) {
	domainSizes := domainSizesOf(p.Regular, nt)
	hashMul := pattern.HashMultipliers(domainSizes)

	mixedOps, numericOps, err := buildAbstractOperators(p, nt, hashMul)
	if err != nil {
		return nil, err
	}

	minActionCost := math.Inf(1)
	for _, op := range mixedOps {
		if op.Cost < minActionCost {
			minActionCost = op.Cost
		}
	}
	for _, op := range numericOps {
		if op.Cost < minActionCost {
			minActionCost = op.Cost
		}
	}
	if math.IsInf(minActionCost, 1) {
		minActionCost = 0
	}

	mt := matchtree.New(len(p.Regular))
	for id, op := range mixedOps {
		mt.Insert(op.PropPre, id)
	}

	regPos := indexOf(p.Regular)
	numPos := indexOf(p.Numeric)
	goalFixed := goalPropFixedPositions(nt.GoalProp, regPos)
	goalNum := goalNumFiltered(nt.GoalNum, numPos)

	initValues := make([]int, len(p.Regular))
	for i, v := range p.Regular {
		initValues[i] = nt.InitProp[v]
	}
	initNumState := make([]float64, len(p.Numeric))
	for i, v := range p.Numeric {
		initNumState[i] = nt.InitNum[v]
	}
	initState := pattern.AbstractState{PropHash: encodeHash(initValues, hashMul), NumState: initNumState}

	registry := stateregistry.New()
	initID := registry.GetOrInsert(initState)

	budget := opts.MaxNumberStates
	reached := 1

	open := map[int]bool{initID: true}
	closed := map[int]bool{}
	goalSet := map[int]bool{}
	backArcs := map[int][]backArc{}
	budgetHit := false

	pq := newPriorityQueue()
	pq.push(initID, 0)

	for pq.Len() > 0 {
		id, cost, ok := pq.pop()
		if !ok {
			break
		}
		if closed[id] {
			continue
		}
		closed[id] = true
		delete(open, id)

		s := registry.Lookup(id)
		if goalSatisfied(s.PropHash, s.NumState, goalFixed, domainSizes, hashMul, goalNum, numPos) {
			goalSet[id] = true
		}

		values := decodeHash(s.PropHash, domainSizes, hashMul)
		for _, opID := range mt.Lookup(values) {
			op := mixedOps[opID]
			if !numPreSatisfied(op.NumPre, s.NumState, numPos) {
				continue
			}
			succHash := uint64(int64(s.PropHash) + op.HashEffect)
			succNum := applyNumericEffects(s.NumState, op)
			registerSuccessor(registry, &reached, budget, &budgetHit, open, backArcs, pq, id, cost, op.Cost, succHash, succNum, s)
		}
		for _, op := range numericOps {
			if !numPreSatisfied(op.NumPre, s.NumState, numPos) {
				continue
			}
			succNum := applyNumericEffects(s.NumState, op)
			registerSuccessor(registry, &reached, budget, &budgetHit, open, backArcs, pq, id, cost, op.Cost, s.PropHash, succNum, s)
		}
	}

	// exhausted ("space exhausted" in PDB result metadata) holds iff the
	// forward phase ran to completion without ever dropping a new-state
	// candidate for lack of budget, regardless of whether the open set
	// happens to be empty.
	exhausted := !budgetHit

	// Fringe states left in the open set at termination are seeded at 0
	// (if they happen to be goals) or min_action_cost otherwise, matching
	// a backward Dijkstra pass rooted at the goal states.
	dist := make(map[int]float64, registry.Size())
	bpq := newPriorityQueue()
	for id := range goalSet {
		dist[id] = 0
		bpq.push(id, 0)
	}
	for id := range open {
		if _, ok := dist[id]; ok {
			continue
		}
		s := registry.Lookup(id)
		if goalSatisfied(s.PropHash, s.NumState, goalFixed, domainSizes, hashMul, goalNum, numPos) {
			dist[id] = 0
		} else {
			dist[id] = minActionCost
		}
		bpq.push(id, dist[id])
	}

	closedB := make(map[int]bool, registry.Size())
	for {
		id, cost, ok := bpq.pop()
		if !ok {
			break
		}
		if closedB[id] {
			continue
		}
		closedB[id] = true
		dist[id] = cost
		for _, a := range backArcs[id] {
			nd := cost + a.cost
			if existing, ok := dist[a.from]; !ok || nd < existing {
				dist[a.from] = nd
				bpq.push(a.from, nd)
			}
		}
	}

	registry, dist = compact(registry, dist)

	distSlice := make([]float64, registry.Size())
	for i := range distSlice {
		if d, ok := dist[i]; ok {
			distSlice[i] = d
		} else {
			distSlice[i] = math.Inf(1)
		}
	}

	return &PDB{
		Pat:            p,
		numeric:        true,
		domainSizes:    domainSizes,
		hashMul:        hashMul,
		registry:       registry,
		dist:           distSlice,
		exhausted:      exhausted,
		minActionCost:  minActionCost,
		goalPropFixed:  goalFixed,
		goalNum:        goalNum,
		numPosOfGlobal: numPos,
	}, nil
}

func applyNumericEffects(numState []float64, op AbstractOperator) []float64 {
	if len(op.AdditiveEff) == 0 && len(op.AssignEff) == 0 {
		return numState
	}
	out := append([]float64(nil), numState...)
	for pos, delta := range op.AdditiveEff {
		out[pos] += delta
	}
	for pos, val := range op.AssignEff {
		out[pos] = val
	}
	return out
}

func registerSuccessor(
	registry *stateregistry.Registry, reached *int, budget int, budgetHit *bool,
	open map[int]bool, backArcs map[int][]backArc, pq *priorityQueue,
	fromID int, fromCost, opCost float64, succHash uint64, succNum []float64, fromState pattern.AbstractState,
) {
	succ := pattern.AbstractState{PropHash: succHash, NumState: succNum}
	if succ.Equal(fromState) {
		return // self-loop
	}

	if id, ok := registry.Contains(succ); ok {
		backArcs[id] = append(backArcs[id], backArc{from: fromID, cost: opCost})
		return
	}
	if *reached >= budget {
		*budgetHit = true
		return // new state would exceed the budget; dropped, not enqueued
	}
	id := registry.GetOrInsert(succ)
	*reached++
	open[id] = true
	backArcs[id] = append(backArcs[id], backArc{from: fromID, cost: opCost})
	pq.push(id, fromCost+opCost)
}

// compact rebuilds the registry keeping only finitely-reachable states
// when fewer than 75% of enumerated states ended finite.
func compact(registry *stateregistry.Registry, dist map[int]float64) (*stateregistry.Registry, map[int]float64) {
	total := registry.Size()
	if total == 0 {
		return registry, dist
	}
	finite := 0
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			finite++
		}
	}
	if float64(finite) >= 0.75*float64(total) {
		return registry, dist
	}

	newReg := stateregistry.New()
	newDist := make(map[int]float64, finite)
	for oldID, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		newID := newReg.GetOrInsert(registry.Lookup(oldID))
		newDist[newID] = d
	}
	return newReg, newDist
}
