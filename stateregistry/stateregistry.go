// Package stateregistry implements content-addressed deduplication of
// abstract states, assigning each distinct (propHash, numState) pair a
// stable integer id.
//
// The engine is single-threaded; the registry carries no synchronization,
// matching that model rather than the teacher's lock-guarded core.Graph,
// which serves a library meant for concurrent callers.
package stateregistry

import (
	"math"

	"github.com/planopt/numheur/pattern"
)

// Registry deduplicates pattern.AbstractState values and hands out dense,
// stable ids starting at 0, in insertion order.
type Registry struct {
	states  []pattern.AbstractState
	buckets map[uint64][]int // hash -> candidate ids sharing that hash
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{buckets: make(map[uint64][]int)}
}

// GetOrInsert returns the stable id for s, inserting it if this is the
// first time it has been seen.
func (r *Registry) GetOrInsert(s pattern.AbstractState) int {
	if id, ok := r.Contains(s); ok {
		return id
	}
	id := len(r.states)
	r.states = append(r.states, s)
	r.buckets[hash(s)] = append(r.buckets[hash(s)], id)
	return id
}

// Contains reports whether s has already been interned, without inserting
// it. Used by PDB forward exploration to decide whether a successor state
// is new before deciding whether it fits the remaining state budget.
func (r *Registry) Contains(s pattern.AbstractState) (int, bool) {
	h := hash(s)
	for _, id := range r.buckets[h] {
		if r.states[id].Equal(s) {
			return id, true
		}
	}
	return 0, false
}

// Lookup returns the state for id. Callers must only pass ids previously
// returned by GetOrInsert on this registry.
func (r *Registry) Lookup(id int) pattern.AbstractState { return r.states[id] }

// Size returns the number of distinct states registered so far.
func (r *Registry) Size() int { return len(r.states) }

// States returns the full set of registered states in id order. Used by
// PDB compaction to rebuild a trimmed registry.
func (r *Registry) States() []pattern.AbstractState { return r.states }

// hash combines the propositional hash with a commutative fold over the
// numeric vector: the numeric component is never folded into PropHash
// itself, so the registry instead hashes the pair componentwise
// (propositional hash xor-combined with a commutative fold over the
// numeric vector). The fold is commutative by construction (plain XOR of
// per-element hashes) so that num_state order within one pattern — fixed
// by construction anyway — never causes spurious misses.
func hash(s pattern.AbstractState) uint64 {
	h := s.PropHash
	for _, v := range s.NumState {
		h ^= floatHash(v)
	}
	return h
}

func floatHash(v float64) uint64 {
	bits := math.Float64bits(v)
	// A cheap avalanche so that e.g. 1.0 and 2.0 (which differ in only a
	// few exponent bits) don't collide trivially under XOR-fold.
	bits ^= bits >> 33
	bits *= 0xff51afd7ed558ccd
	bits ^= bits >> 33
	return bits
}
