// Package numheur is a numeric pattern-database heuristic engine for
// classical planning over propositional and real-valued state variables.
//
// A task is normalized once (normalize.Normalize), after which its causal
// graph (causalgraph) and a collection of pattern databases (pdb) built
// over patterns chosen by a generator (patterns) feed a canonical
// heuristic (canonical) exposed to the outer search through one façade
// (heuristic.Heuristic).
//
// Package layout mirrors one flat package per algorithmic concern:
//
//	task/          raw task model supplied by the outer system
//	expr/          arithmetic expression trees (affine extraction, folding)
//	numcond/       single-variable numeric conditions
//	normalize/     normalized task model, auxiliary-variable synthesis
//	causalgraph/   unified prop+numeric causal graph, process-wide cache
//	pattern/       Pattern type and abstract-state hashing
//	matchtree/     trie-based successor generator over pattern states
//	stateregistry/ content-addressed dedup of numeric abstract states
//	pdb/           pattern database construction and lookup
//	additivity/    additivity matrices and maximal-clique enumeration
//	canonical/     canonical evaluation and dominance pruning
//	patterns/      pattern-collection generators
//	heuristic/     evaluation façade and configuration loading
//
//	go get github.com/planopt/numheur
package numheur
