package normalize

import (
	"github.com/planopt/numheur/expr"
	"github.com/planopt/numheur/numcond"
	"github.com/planopt/numheur/task"
)

// Normalize verifies the raw task only uses the two permitted axiom shapes
// and no conditional effects, resolves comparison-axiom-backed
// preconditions into RegularNumericConditions, synthesizes auxiliary
// variables where a comparison still references two regular variables
// after simplification, and rewrites every operator into the canonical
// shape.
func Normalize(raw *task.Task) (*Task, error) {
	n := &Task{
		PropVars:         append([]task.PropVar(nil), raw.PropVars...),
		NumVars:          append([]task.NumVar(nil), raw.NumVars...),
		InitProp:         append([]int(nil), raw.InitProp...),
		InitNum:          append([]float64(nil), raw.InitNum...),
		approxDomainSize: make(map[int]int),
	}

	if err := validateRawOperators(raw); err != nil {
		return nil, err
	}

	aux := newAuxBuilder(raw, n)

	for _, f := range raw.GoalProp {
		if raw.PropVars[f.Var].Axiom != nil {
			cond, err := aux.resolveComparison(*raw.PropVars[f.Var].Axiom, f.Val)
			if err != nil {
				return nil, err
			}
			n.GoalNum = append(n.GoalNum, cond)
			continue
		}
		n.GoalProp = append(n.GoalProp, f)
	}
	for _, c := range raw.GoalNum {
		cond, err := aux.liftComparison(c)
		if err != nil {
			return nil, err
		}
		n.GoalNum = append(n.GoalNum, cond)
	}

	for _, op := range raw.Operators {
		nop := Operator{
			Name:        op.Name,
			AdditiveEff: cloneFloatMap(op.AdditiveEff),
			AssignEff:   cloneFloatMap(op.AssignEff),
			Cost:        op.Cost,
			PropEff:     append([]task.Fact(nil), op.PropEff...),
		}
		for _, f := range op.PropPre {
			if raw.PropVars[f.Var].Axiom != nil {
				cond, err := aux.resolveComparison(*raw.PropVars[f.Var].Axiom, f.Val)
				if err != nil {
					return nil, err
				}
				nop.NumPre = append(nop.NumPre, cond)
				continue
			}
			nop.PropPre = append(nop.PropPre, f)
		}

		n.Operators = append(n.Operators, nop)
	}

	// Auxiliary variables that depend on an operator's effects give it an
	// implicit additive effect. This runs after every precondition has been
	// resolved, so auxiliaries introduced by a later operator are covered.
	for i, op := range raw.Operators {
		if err := aux.applyImplicitEffects(&n.Operators[i], op); err != nil {
			return nil, err
		}
	}

	n.NumVars = aux.numVars
	n.InitNum = aux.initNum

	return n, nil
}

func cloneFloatMap(m map[int]float64) map[int]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[int]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// validateRawOperators enforces the two operator-level Unsupported
// invariants: no operator may carry conditional effects (not
// representable in task.Operator at all, so nothing to check there), and
// no operator may assign and additively-effect the same variable.
func validateRawOperators(raw *task.Task) error {
	for _, op := range raw.Operators {
		for v := range op.AssignEff {
			if _, ok := op.AdditiveEff[v]; ok {
				return errUnsupported("operator " + op.Name + " both assigns and additively effects the same variable")
			}
		}
	}
	return nil
}

// auxBuilder synthesizes and deduplicates auxiliary variables while
// normalizing a task.
type auxBuilder struct {
	raw *task.Task
	n   *Task

	numVars []task.NumVar
	initNum []float64

	byName map[string]int    // defining-expression signature -> aux numeric var id
	defs   map[int]expr.Expr // aux numeric var id -> defining expression
}

func newAuxBuilder(raw *task.Task, n *Task) *auxBuilder {
	return &auxBuilder{
		raw:     raw,
		n:       n,
		numVars: append([]task.NumVar(nil), raw.NumVars...),
		initNum: append([]float64(nil), raw.InitNum...),
		byName:  make(map[string]int),
		defs:    make(map[int]expr.Expr),
	}
}

// liftOperand recursively lifts a raw task.Operand into an expr.Expr,
// following the assignment-axiom DAG for Derived variables: the DAG that
// defines each side is walked recursively rather than evaluated eagerly.
func (a *auxBuilder) liftOperand(op task.Operand, visiting map[int]bool) (expr.Expr, error) {
	if op.IsConst() {
		return expr.NewConst(op.Const), nil
	}
	v := a.raw.NumVars[op.VarID]
	if v.Type != task.Derived {
		// Regular, Constant, Instrumentation and (pre-existing) Auxiliary
		// variables are all leaves from expr's point of view.
		if v.Type == task.Constant {
			return expr.NewConst(a.raw.InitNum[op.VarID]), nil
		}
		return expr.NewVar(op.VarID), nil
	}
	if visiting[op.VarID] {
		return nil, errUnsupported("cyclic assignment-axiom DAG at numeric variable " + v.Name)
	}
	if v.Axiom == nil {
		return nil, errInternal("derived numeric variable " + v.Name + " has no assignment axiom")
	}
	visiting[op.VarID] = true
	lhs, err := a.liftOperand(v.Axiom.Lhs, visiting)
	if err != nil {
		return nil, err
	}
	rhs, err := a.liftOperand(v.Axiom.Rhs, visiting)
	if err != nil {
		return nil, err
	}
	delete(visiting, op.VarID)

	return expr.NewBinOp(lhs, toExprOp(v.Axiom.Op), rhs), nil
}

func toExprOp(o task.ArithOp) expr.Op {
	switch o {
	case task.Add:
		return expr.OpAdd
	case task.Sub:
		return expr.OpSub
	case task.Mul:
		return expr.OpMul
	case task.Div:
		return expr.OpDiv
	default:
		return expr.OpAdd
	}
}

func toExprCmp(o task.CompOp) numcond.Op {
	switch o {
	case task.LT:
		return numcond.LT
	case task.LE:
		return numcond.LE
	case task.EQ:
		return numcond.EQ
	case task.GE:
		return numcond.GE
	case task.GT:
		return numcond.GT
	default:
		return numcond.EQ
	}
}

// negate returns the comparison operator for "not (a Op b)", when
// expressible in the same five-operator closed form. EQ has no such
// single-operator negation and is reported Unsupported.
func negate(op numcond.Op) (numcond.Op, bool) {
	switch op {
	case numcond.LT:
		return numcond.GE, true
	case numcond.LE:
		return numcond.GT, true
	case numcond.GE:
		return numcond.LT, true
	case numcond.GT:
		return numcond.LE, true
	default:
		return 0, false
	}
}

// liftComparison lifts a task.ComparisonAxiom into a numcond.Condition,
// synthesizing an auxiliary variable if both sides still reference a
// regular variable after simplification.
func (a *auxBuilder) liftComparison(c task.ComparisonAxiom) (numcond.Condition, error) {
	lhs, err := a.liftOperand(c.Lhs, map[int]bool{})
	if err != nil {
		return numcond.Condition{}, err
	}
	rhs, err := a.liftOperand(c.Rhs, map[int]bool{})
	if err != nil {
		return numcond.Condition{}, err
	}
	op := toExprCmp(c.Op)

	lhsS, rhsS := lhs.Simplify(), rhs.Simplify()
	vars := unionVars(lhsS.Vars(), rhsS.Vars())
	if len(vars) <= 1 {
		return numcond.New(lhsS, op, rhsS), nil
	}

	// Both sides still reference a (distinct) regular variable: synthesize
	// z := lhs - rhs and rewrite the comparison as z Op 0.
	id := a.synthesize(lhsS, rhsS)
	return numcond.New(expr.NewVar(id), op, expr.NewConst(0)), nil
}

// resolveComparison lifts a comparison axiom for a propositional
// precondition/goal fact with value val: val==1 means the axiom holds as
// written, val==0 means its negation.
func (a *auxBuilder) resolveComparison(c task.ComparisonAxiom, val int) (numcond.Condition, error) {
	if val == 1 {
		return a.liftComparison(c)
	}
	negOp, ok := negate(toExprCmp(c.Op))
	if !ok {
		return numcond.Condition{}, errUnsupported("comparison axiom negation for EQ is not expressible")
	}
	negated := c
	negated.Op = fromExprCmp(negOp)
	return a.liftComparison(negated)
}

func fromExprCmp(o numcond.Op) task.CompOp {
	switch o {
	case numcond.LT:
		return task.LT
	case numcond.LE:
		return task.LE
	case numcond.EQ:
		return task.EQ
	case numcond.GE:
		return task.GE
	case numcond.GT:
		return task.GT
	default:
		return task.EQ
	}
}

func unionVars(a, b []int) []int {
	seen := map[int]struct{}{}
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		seen[v] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

// synthesize creates (or reuses, by textual signature) an auxiliary
// variable defined as lhs - rhs, seeded with its initial-state value.
// Auxiliary variables are deduplicated by their textual expression
// signature.
func (a *auxBuilder) synthesize(lhs, rhs expr.Expr) int {
	def := expr.NewBinOp(lhs, expr.OpSub, rhs)
	name := def.Name()
	if id, ok := a.byName[name]; ok {
		return id
	}

	id := len(a.numVars)
	a.numVars = append(a.numVars, task.NumVar{
		Name: "aux(" + name + ")",
		Type: task.Auxiliary,
	})
	initVal := def.EvaluateVec(a.initNum)
	a.initNum = append(a.initNum, initVal)

	a.byName[name] = id
	a.defs[id] = def

	return id
}

// applyImplicitEffects computes, for each synthesized auxiliary variable
// whose defining expression references a variable this operator mutates,
// the induced additive effect by evaluating its expression over the
// operator's effect vector, ignoring additive constants. Mixing an
// assignment effect with auxiliary-variable dependence is Unsupported.
func (a *auxBuilder) applyImplicitEffects(nop *Operator, raw task.Operator) error {
	if len(a.defs) == 0 {
		return nil
	}
	effVec := make([]float64, len(a.numVars))
	for v, delta := range raw.AdditiveEff {
		effVec[v] = delta
	}

	for id, def := range a.defs {
		touched := false
		assigned := false
		for _, v := range def.Vars() {
			if _, ok := raw.AdditiveEff[v]; ok {
				touched = true
			}
			if _, ok := raw.AssignEff[v]; ok {
				assigned = true
			}
		}
		if assigned {
			return errUnsupported("operator mixes an assignment effect with a dependency of auxiliary variable " + a.numVars[id].Name)
		}
		if !touched {
			continue
		}
		delta := def.EvaluateIgnoreAdditiveConsts(effVec)
		if delta == 0 {
			continue
		}
		if nop.AdditiveEff == nil {
			nop.AdditiveEff = map[int]float64{}
		}
		nop.AdditiveEff[id] = delta
	}
	return nil
}
