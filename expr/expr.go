// Package expr implements lazy symbolic arithmetic expressions over at
// most one regular numeric variable, plus constants. Expressions form an
// immutable DAG built once during normalization and shared by reference
// thereafter.
//
// The type hierarchy is a closed sum type — Var | Const | BinOp —
// dispatched through the Expr interface, preferring a closed sum type
// over open inheritance.
package expr

import (
	"fmt"
	"sort"
)

// Expr is an arithmetic expression tree node. Every Expr contains at most
// one distinct regular-variable reference; callers that violate this when
// building a BinOp get a well-defined Vars() result but Multiplier/Summand
// report ErrTwoVariables.
type Expr interface {
	// Vars returns the sorted, deduplicated set of regular variable ids
	// referenced anywhere in this expression.
	Vars() []int

	// Evaluate substitutes value for the expression's single variable (if
	// any) and returns the result. Safe to call on a pure constant, which
	// ignores value.
	Evaluate(value float64) float64

	// EvaluateVec evaluates against a full numeric-state vector indexed by
	// global numeric variable id (one entry per numeric variable, not just
	// regular ones).
	EvaluateVec(numValues []float64) float64

	// EvaluateIgnoreAdditiveConsts evaluates the expression as an additive
	// effect contribution: constant subtrees combined by +/- are dropped
	// rather than added in, so that e.g. (x + 5) - y contributes only
	// (x - y)'s additive delta. Used when lifting an auxiliary variable's
	// additive effect from an operator's raw effect vector.
	EvaluateIgnoreAdditiveConsts(numValues []float64) float64

	// Simplify folds constant subtrees. It mirrors the original
	// implementation's intentionally shallow fold: a BinOp node folds to a
	// Const only when BOTH children are already constant; otherwise it
	// simplifies its children in place and keeps its own shape (no
	// associative re-arrangement). See simplify.go.
	Simplify() Expr

	// IsConstant reports whether no variable appears anywhere in the tree.
	IsConstant() bool

	// Multiplier returns m for the affine form m*v + s. It is only
	// meaningful when exactly one variable appears; otherwise it returns
	// ErrNotAffine (pure constant) or ErrTwoVariables.
	Multiplier() (float64, error)

	// Summand returns s for the affine form m*v + s under the same
	// conditions as Multiplier.
	Summand() (float64, error)

	// Name renders a deterministic textual signature, used to deduplicate
	// synthesized auxiliary variables by expression identity.
	Name() string
}

// Var is a leaf expression referencing a single regular numeric variable.
type Var struct{ ID int }

// NewVar builds a variable-reference leaf. id is the global regular numeric
// variable id.
func NewVar(id int) Var { return Var{ID: id} }

func (v Var) Vars() []int { return []int{v.ID} }

func (v Var) Evaluate(value float64) float64 { return value }

func (v Var) EvaluateVec(numValues []float64) float64 { return numValues[v.ID] }

func (v Var) EvaluateIgnoreAdditiveConsts(numValues []float64) float64 { return numValues[v.ID] }

func (v Var) Simplify() Expr { return v }

func (v Var) IsConstant() bool { return false }

func (v Var) Multiplier() (float64, error) { return 1, nil }

func (v Var) Summand() (float64, error) { return 0, nil }

func (v Var) Name() string { return fmt.Sprintf("var%d", v.ID) }

// Const is a leaf expression with no variable reference.
type Const struct{ Value float64 }

// NewConst builds a constant leaf.
func NewConst(value float64) Const { return Const{Value: value} }

func (c Const) Vars() []int { return nil }

func (c Const) Evaluate(float64) float64 { return c.Value }

func (c Const) EvaluateVec([]float64) float64 { return c.Value }

func (c Const) EvaluateIgnoreAdditiveConsts([]float64) float64 { return 0 }

func (c Const) Simplify() Expr { return c }

func (c Const) IsConstant() bool { return true }

func (c Const) Multiplier() (float64, error) { return 0, ErrNotAffine }

func (c Const) Summand() (float64, error) { return 0, ErrNotAffine }

func (c Const) Name() string { return fmt.Sprintf("%g", c.Value) }

// BinOp is an internal node combining lhs and rhs with an arithmetic
// operator. At most one side may reference a variable for Multiplier and
// Summand to be defined (the single-variable invariant is enforced by the
// caller that builds the tree, typically normalize's comparison/assignment
// lifting).
type BinOp struct {
	Lhs Expr
	Op  Op
	Rhs Expr
}

// Op mirrors task.ArithOp inside expr to avoid a hard dependency from expr
// on the task package; normalize translates between the two.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// NewBinOp builds an internal arithmetic node.
func NewBinOp(lhs Expr, op Op, rhs Expr) *BinOp { return &BinOp{Lhs: lhs, Op: op, Rhs: rhs} }

func (b *BinOp) Vars() []int {
	seen := map[int]struct{}{}
	for _, id := range b.Lhs.Vars() {
		seen[id] = struct{}{}
	}
	for _, id := range b.Rhs.Vars() {
		seen[id] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

func (b *BinOp) apply(l, r float64) float64 {
	switch b.Op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		panic(fmt.Sprintf("expr: unknown operator %v", b.Op))
	}
}

func (b *BinOp) Evaluate(value float64) float64 {
	return b.apply(b.Lhs.Evaluate(value), b.Rhs.Evaluate(value))
}

func (b *BinOp) EvaluateVec(numValues []float64) float64 {
	return b.apply(b.Lhs.EvaluateVec(numValues), b.Rhs.EvaluateVec(numValues))
}

func (b *BinOp) EvaluateIgnoreAdditiveConsts(numValues []float64) float64 {
	lConst, rConst := b.Lhs.IsConstant(), b.Rhs.IsConstant()
	switch b.Op {
	case OpAdd:
		if lConst {
			return b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
		}
		if rConst {
			return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues)
		}
		return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) + b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
	case OpSub:
		if lConst {
			return -b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
		}
		if rConst {
			return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues)
		}
		return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) - b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
	case OpMul:
		if lConst {
			return b.Lhs.Evaluate(0) * b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
		}
		if rConst {
			return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) * b.Rhs.Evaluate(0)
		}
		return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) * b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
	case OpDiv:
		if rConst {
			return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) / b.Rhs.Evaluate(0)
		}
		return b.Lhs.EvaluateIgnoreAdditiveConsts(numValues) / b.Rhs.EvaluateIgnoreAdditiveConsts(numValues)
	default:
		panic(fmt.Sprintf("expr: unknown operator %v", b.Op))
	}
}

func (b *BinOp) IsConstant() bool { return b.Lhs.IsConstant() && b.Rhs.IsConstant() }

func (b *BinOp) Name() string {
	return fmt.Sprintf("%s%s%s", b.Lhs.Name(), b.Op, b.Rhs.Name())
}
