package patterns

import (
	"context"
	"math/rand"

	"github.com/planopt/numheur/additivity"
	"github.com/planopt/numheur/canonical"
	"github.com/planopt/numheur/causalgraph"
	"github.com/planopt/numheur/internal/perr"
	"github.com/planopt/numheur/internal/randutil"
	"github.com/planopt/numheur/normalize"
	"github.com/planopt/numheur/pattern"
	"github.com/planopt/numheur/pdb"
)

const component = "patterns"

// HillClimbOptions configures Haslum-style incremental canonical PDB
// construction by greedily extending patterns one causal-graph neighbor
// at a time.
type HillClimbOptions struct {
	// MaxPatternSize caps variables per candidate pattern.
	MaxPatternSize int
	// MaxNumberStates bounds mixed-PDB construction, forwarded to pdb.Build.
	MaxNumberStates int
	// SampleCount is how many random-walk states score each candidate.
	SampleCount int
	// WalkLength is the number of operator applications per sampled walk.
	WalkLength int
	// MinImprovement is the minimum count of sampled states whose
	// heuristic value strictly increases for a candidate extension to be
	// accepted.
	MinImprovement int
	// Rand optionally seeds the sampler deterministically.
	Rand randutil.Source
}

// defaulted fills zero fields with the engine's defaults.
func (o HillClimbOptions) defaulted() HillClimbOptions {
	if o.MaxPatternSize <= 0 {
		o.MaxPatternSize = 3
	}
	if o.MaxNumberStates <= 0 {
		o.MaxNumberStates = 10_000
	}
	if o.SampleCount <= 0 {
		o.SampleCount = 30
	}
	if o.WalkLength <= 0 {
		o.WalkLength = 10
	}
	if o.MinImprovement <= 0 {
		o.MinImprovement = 1
	}
	return o
}

// HillClimb grows a canonical.Collection from a set of initial patterns by
// repeatedly extending a pattern with a causal-graph neighbor when doing
// so improves the heuristic's estimate on a sample of random-walk states
// for at least MinImprovement of them. It stops when no
// extension improves enough, or when ctx is cancelled (a deadline expiry
// is reported as perr.Timeout; the already-built collection is still
// returned alongside it, per perr.Timeout's "stop with current best"
// contract).
func HillClimb(ctx context.Context, nt *normalize.Task, g *causalgraph.Graph, initial []pattern.Pattern, opts HillClimbOptions) (*canonical.Collection, error) {
	opts = opts.defaulted()
	rnd := randutil.Resolve(opts.Rand).Rand

	m := additivity.Build(nt)
	samples := sampleStates(nt, rnd, opts.SampleCount, opts.WalkLength)

	entries, err := buildEntries(nt, initial, opts)
	if err != nil {
		return nil, err
	}
	coll := canonical.Build(nt, entries, m)

	for {
		select {
		case <-ctx.Done():
			return coll, perr.Wrap(perr.Timeout, component, "hill climbing time budget expired", ctx.Err())
		default:
		}

		bestIdx, bestCandidate, bestScore := -1, pattern.Pattern{}, -1
		for i, e := range entries {
			for _, v := range patternUnifiedVars(g, e.Pat) {
				for _, nIdx := range g.Neighbors(v) {
					cand := extend(g, e.Pat, nIdx)
					if cand.Size() > opts.MaxPatternSize || cand.Equal(e.Pat) {
						continue
					}
					candPDB, err := pdb.Build(cand, nt, pdb.WithMaxNumberStates(opts.MaxNumberStates))
					if err != nil {
						continue
					}
					score := scoreCandidate(nt, m, coll, entries, i, canonical.Entry{Pat: cand, PDB: candPDB}, samples)
					if score > bestScore {
						bestIdx, bestCandidate, bestScore = i, cand, score
					}
				}
			}
		}

		if bestScore < opts.MinImprovement {
			return coll, nil
		}

		candPDB, err := pdb.Build(bestCandidate, nt, pdb.WithMaxNumberStates(opts.MaxNumberStates))
		if err != nil {
			return coll, nil
		}
		entries[bestIdx] = canonical.Entry{Pat: bestCandidate, PDB: candPDB}
		coll = canonical.Build(nt, entries, m)
	}
}

func buildEntries(nt *normalize.Task, ps []pattern.Pattern, opts HillClimbOptions) ([]canonical.Entry, error) {
	entries := make([]canonical.Entry, 0, len(ps))
	for _, p := range ps {
		pd, err := pdb.Build(p, nt, pdb.WithMaxNumberStates(opts.MaxNumberStates))
		if err != nil {
			return nil, err
		}
		entries = append(entries, canonical.Entry{Pat: p, PDB: pd})
	}
	return entries, nil
}

func extend(g *causalgraph.Graph, p pattern.Pattern, unifiedVar int) pattern.Pattern {
	isNum, id := g.SplitIndex(unifiedVar)
	if isNum {
		return pattern.New(p.Regular, append(append([]int(nil), p.Numeric...), id))
	}
	return pattern.New(append(append([]int(nil), p.Regular...), id), p.Numeric)
}

func patternUnifiedVars(g *causalgraph.Graph, p pattern.Pattern) []int {
	out := make([]int, 0, p.Size())
	for _, v := range p.Regular {
		out = append(out, g.PropIndex(v))
	}
	for _, v := range p.Numeric {
		out = append(out, g.NumIndex(v))
	}
	return out
}

// scoreCandidate counts how many sampled states get a strictly larger
// heuristic estimate when entries[idx] is replaced by candidate.
func scoreCandidate(nt *normalize.Task, m *additivity.Matrices, base *canonical.Collection, entries []canonical.Entry, idx int, candidate canonical.Entry, samples []sampledState) int {
	trial := append([]canonical.Entry(nil), entries...)
	trial[idx] = candidate
	trialColl := canonical.Build(nt, trial, m)

	score := 0
	for _, s := range samples {
		if trialColl.Evaluate(s.prop, s.num) > base.Evaluate(s.prop, s.num) {
			score++
		}
	}
	return score
}

type sampledState struct {
	prop []int
	num  []float64
}

// sampleStates performs count random walks of length steps from the task's
// initial state, applying a uniformly-chosen applicable operator at each
// step (Haslum et al.'s random-walk sampling). Walks that reach
// a step with no applicable operator stop early; the state at that point
// is still sampled.
func sampleStates(nt *normalize.Task, rnd *rand.Rand, count, steps int) []sampledState {
	samples := make([]sampledState, 0, count)
	for i := 0; i < count; i++ {
		prop := append([]int(nil), nt.InitProp...)
		num := append([]float64(nil), nt.InitNum...)
		for s := 0; s < steps; s++ {
			applicable := applicableOperators(nt, prop, num)
			if len(applicable) == 0 {
				break
			}
			op := nt.Operators[applicable[rnd.Intn(len(applicable))]]
			applyOperator(op, prop, num)
		}
		samples = append(samples, sampledState{prop: prop, num: num})
	}
	return samples
}

func applicableOperators(nt *normalize.Task, prop []int, num []float64) []int {
	var out []int
	for i, op := range nt.Operators {
		ok := true
		for _, f := range op.PropPre {
			if prop[f.Var] != f.Val {
				ok = false
				break
			}
		}
		if ok {
			for _, c := range op.NumPre {
				vid := c.VarID()
				var val float64
				if vid >= 0 {
					val = num[vid]
				}
				if !c.Satisfied(val) {
					ok = false
					break
				}
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func applyOperator(op normalize.Operator, prop []int, num []float64) {
	for _, f := range op.PropEff {
		prop[f.Var] = f.Val
	}
	for v, delta := range op.AdditiveEff {
		num[v] += delta
	}
	for v, val := range op.AssignEff {
		num[v] = val
	}
}
