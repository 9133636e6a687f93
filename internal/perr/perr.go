// Package perr defines the fatal error-kind taxonomy shared by every
// component of the numeric PDB engine. Every package in this module
// reports failures through a *perr.Error carrying one of the kinds below
// instead of bare strings, so the outer caller can branch with
// errors.Is/errors.As rather than string matching.
package perr

import "fmt"

// Kind classifies a fatal construction-time failure. There is no recovery
// at this layer: every Kind aborts the operation that discovered it.
type Kind int

const (
	// Unsupported marks a task feature this engine cannot represent:
	// non-standard axiom shapes, conditional effects, non-linear numeric
	// effects, or assign+additive effects on the same variable in one
	// operator.
	Unsupported Kind = iota
	// InvalidArgument marks an out-of-bounds option or an out-of-range
	// pattern variable.
	InvalidArgument
	// Overflow marks a mixed-radix hash product exceeding the integer range.
	Overflow
	// NumericError marks a division by zero during constant folding.
	NumericError
	// Internal marks a switch case the type system failed to rule out.
	Internal
	// Timeout marks a cooperative countdown-timer expiry; callers treat it
	// as "stop with the current best result", not as a fatal abort.
	Timeout
)

// String renders a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case InvalidArgument:
		return "invalid_argument"
	case Overflow:
		return "overflow"
	case NumericError:
		return "numeric_error"
	case Internal:
		return "internal"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every fatal failure path in this
// module. It pairs a Kind with the originating component and a message.
type Error struct {
	Kind      Kind
	Component string // e.g. "normalize", "pdb", "causalgraph"
	Msg       string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Component, e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// New builds a *Error with no wrapped cause.
func New(kind Kind, component, msg string) *Error {
	return &Error{Kind: kind, Component: component, Msg: msg}
}

// Wrap builds a *Error around an existing cause.
func Wrap(kind Kind, component, msg string, cause error) *Error {
	return &Error{Kind: kind, Component: component, Msg: msg, Cause: cause}
}

// Is reports whether err carries the given Kind, looking through wrapping.
func Is(err error, kind Kind) bool {
	var pe *Error
	for err != nil {
		if p, ok := err.(*Error); ok {
			pe = p
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return pe != nil && pe.Kind == kind
}
