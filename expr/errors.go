package expr

import "errors"

// Sentinel errors for the expr package, following the error-reporting
// discipline of lvlath/builder/errors.go: only package-level sentinels are
// exposed; callers branch with errors.Is, never string comparison.
var (
	// ErrTwoVariables indicates an expression still references two
	// distinct regular variables after Simplify — violates the
	// single-variable invariant every Expr is expected to uphold.
	ErrTwoVariables = errors.New("expr: expression references more than one regular variable")

	// ErrDivisionByZero indicates Multiplier or Summand met a constant
	// divisor equal to zero. Simplify does not report it: folding a
	// constant division by zero yields ±Inf or NaN.
	ErrDivisionByZero = errors.New("expr: division by zero during simplification")

	// ErrNotAffine indicates Multiplier/Summand was called on an
	// expression that is not reducible to the affine form m*v + s (e.g. a
	// pure constant, which should use Evaluate() instead).
	ErrNotAffine = errors.New("expr: expression is not affine in a single variable")
)
