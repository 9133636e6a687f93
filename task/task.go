// Package task defines the raw planning-task model consumed by this module.
// It is supplied by an external collaborator —
// an input-file parser or an in-memory task builder — and is treated as
// read-only from the moment normalize.Normalize takes ownership of it.
package task

// CompOp enumerates the five comparison operators a RegularNumericCondition
// (numcond package) may carry.
type CompOp int

const (
	LT CompOp = iota
	LE
	EQ
	GE
	GT
)

// String renders the mathematical symbol for diagnostics and Name() output.
func (c CompOp) String() string {
	switch c {
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

// ArithOp enumerates the four arithmetic combinators an assignment axiom or
// an arithmetic-expression internal node may carry.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

func (o ArithOp) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// NumVarType classifies a numeric variable.
type NumVarType int

const (
	// Regular is an unbounded real, mutated by operators.
	Regular NumVarType = iota
	// Constant is immutable.
	Constant
	// Derived is defined by an assignment-axiom tree.
	Derived
	// Instrumentation is a metric/cost accumulator, ignored by PDBs.
	Instrumentation
	// Auxiliary is synthesized during normalization; behaves as Regular
	// downstream of normalize.
	Auxiliary
)

// Operand is one side of an axiom: either a reference to a numeric
// variable (VarID >= 0) or a literal constant (VarID == -1).
type Operand struct {
	VarID int     // -1 means "this operand is the literal Const"
	Const float64 // only meaningful when VarID == -1
}

// ConstOperand builds a literal-constant operand.
func ConstOperand(c float64) Operand { return Operand{VarID: -1, Const: c} }

// VarOperand builds a variable-reference operand.
func VarOperand(id int) Operand { return Operand{VarID: id} }

// IsConst reports whether this operand is a literal constant.
func (o Operand) IsConst() bool { return o.VarID < 0 }

// AssignmentAxiom defines a Derived numeric variable as an arithmetic
// combination of two operands.
type AssignmentAxiom struct {
	Lhs Operand
	Op  ArithOp
	Rhs Operand
}

// ComparisonAxiom defines a derived propositional ("comparison") fact as
// lhs `Op` rhs over two numeric operands.
type ComparisonAxiom struct {
	Lhs Operand
	Op  CompOp
	Rhs Operand
}

// PropVar is one finite-domain propositional variable.
type PropVar struct {
	Name       string
	DomainSize int
	// Axiom is non-nil when this variable's truth value is produced by a
	// comparison axiom rather than set directly by operator effects.
	Axiom *ComparisonAxiom
}

// NumVar is one numeric variable.
type NumVar struct {
	Name string
	Type NumVarType
	// Axiom is non-nil iff Type == Derived.
	Axiom *AssignmentAxiom
}

// Fact is a propositional assignment (var, value).
type Fact struct {
	Var int
	Val int
}

// Operator is one raw, ground planning operator. normalize.Operator
// describes the *post*-normalization shape; this is the pre-normalization
// raw input with the same effect categories but propositional
// preconditions that may still reference comparison-axiom variables.
type Operator struct {
	Name string
	// PropPre are propositional preconditions, possibly over a PropVar
	// backed by a ComparisonAxiom.
	PropPre []Fact
	// PropEff are unconditional propositional effects.
	PropEff []Fact
	// AdditiveEff maps a Regular numeric-variable id to the delta applied
	// as v <- v + delta.
	AdditiveEff map[int]float64
	// AssignEff maps a Regular numeric-variable id to the value applied as
	// a full assignment v <- value.
	AssignEff map[int]float64
	Cost      float64
}

// Task is the raw, externally supplied planning task.
type Task struct {
	PropVars  []PropVar
	NumVars   []NumVar
	Operators []Operator

	GoalProp []Fact
	// GoalNum are comparison axioms over numeric operands that must hold
	// in the goal, evaluated against a numeric state laid out like
	// InitNum. At most one numeric-goal aggregator
	// axiom is expected per task.
	GoalNum []ComparisonAxiom

	InitProp []int
	InitNum  []float64
}
