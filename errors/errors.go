package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConvert   Phase = "convert"   // narrowing conversion
	PhaseConstruct Phase = "construct" // property/handle construction
	PhaseLookup    Phase = "lookup"    // table access by handle
	PhaseParse     Phase = "parse"     // textual input
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow     Kind = "overflow"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindStale        Kind = "stale"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Phase  Phase
	Kind   Kind
	From   string
	To     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.From != "" || e.To != "" {
		b.WriteString(": ")
		if e.From != "" && e.To != "" {
			b.WriteString(e.From)
			b.WriteString(" -> ")
			b.WriteString(e.To)
		} else if e.From != "" {
			b.WriteString("from ")
			b.WriteString(e.From)
		} else {
			b.WriteString("to ")
			b.WriteString(e.To)
		}
	}

	if e.Detail != "" {
		if e.From != "" || e.To != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Overflow creates an error for a value that does not survive conversion
// from one representation to another
func Overflow(phase Phase, value any, from, to string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		From:   from,
		To:     to,
		Detail: fmt.Sprintf("value %v is not representable as %s", value, to),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ElementCount creates an error for a single-value initializer that
// carries the wrong number of elements
func ElementCount(phase Phase, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("single-value initializer needs exactly 1 element, got %d", got),
		Value:  got,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// Stale creates an error for a handle whose slot has been reused
func Stale(phase Phase, id any, want, got uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStale,
		Detail: fmt.Sprintf("handle %v has generation %d, slot is at %d", id, want, got),
		Value:  id,
	}
}
