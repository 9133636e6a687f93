// Package numcond implements a regular numeric condition — a comparison
// `lhs cmp rhs` that, after simplification, reduces to `var cmp const`
// because the two sides together reference at most one regular numeric
// variable.
package numcond

import (
	"fmt"

	"github.com/planopt/numheur/expr"
)

// Op mirrors task.CompOp without importing task, matching expr's Op split.
type Op int

const (
	LT Op = iota
	LE
	EQ
	GE
	GT
)

func (o Op) String() string {
	switch o {
	case LT:
		return "<"
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	case GT:
		return ">"
	default:
		return "?"
	}
}

// Condition is lhs `Op` rhs, with both sides already simplified.
type Condition struct {
	Lhs expr.Expr
	Op  Op
	Rhs expr.Expr
}

// New builds a Condition, simplifying both sides up front exactly as the
// original RegularNumericCondition constructor does (lhs->simplify(),
// rhs->simplify() in its initializer list).
func New(lhs expr.Expr, op Op, rhs expr.Expr) Condition {
	return Condition{Lhs: lhs.Simplify(), Op: op, Rhs: rhs.Simplify()}
}

// VarID returns the regular variable id this condition constrains, or -1 if
// the condition is constant.
func (c Condition) VarID() int {
	lv := c.Lhs.Vars()
	if len(lv) > 0 {
		return lv[0]
	}
	rv := c.Rhs.Vars()
	if len(rv) > 0 {
		return rv[0]
	}
	return -1
}

// IsConstant reports whether neither side references a variable.
func (c Condition) IsConstant() bool {
	return len(c.Lhs.Vars()) == 0 && len(c.Rhs.Vars()) == 0
}

// Satisfied evaluates both sides with value substituted for the condition's
// single variable and applies Op.
func (c Condition) Satisfied(value float64) bool {
	l := c.Lhs.Evaluate(value)
	r := c.Rhs.Evaluate(value)
	switch c.Op {
	case LT:
		return l < r
	case LE:
		return l <= r
	case EQ:
		return l == r
	case GE:
		return l >= r
	case GT:
		return l > r
	default:
		panic(fmt.Sprintf("numcond: unknown comparison operator %v", c.Op))
	}
}

// GetConstant returns the constant c of the normalized form `var Op c`,
// folding the affine coefficients of whichever side carries the variable
// through the comparison. Returns (0, false) when the condition is
// constant (no variable on either side).
//
// expr.Multiplier/Summand report the forward affine form evaluate(v) =
// m*v + s, so solving evaluate(v) Op c for v gives v = (c - s) / m.
func (c Condition) GetConstant() (float64, bool) {
	if lv := c.Lhs.Vars(); len(lv) > 0 {
		rc := c.Rhs.Evaluate(0)
		m, err := c.Lhs.Multiplier()
		if err != nil || m == 0 {
			return 0, false
		}
		s, err := c.Lhs.Summand()
		if err != nil {
			return 0, false
		}
		return (rc - s) / m, true
	}
	if rv := c.Rhs.Vars(); len(rv) > 0 {
		lc := c.Lhs.Evaluate(0)
		m, err := c.Rhs.Multiplier()
		if err != nil || m == 0 {
			return 0, false
		}
		s, err := c.Rhs.Summand()
		if err != nil {
			return 0, false
		}
		return (lc - s) / m, true
	}
	return 0, false
}

// Name renders a deterministic textual signature for auxiliary-variable
// expression deduplication.
func (c Condition) Name() string {
	return fmt.Sprintf("%s%s%s", c.Lhs.Name(), c.Op, c.Rhs.Name())
}
