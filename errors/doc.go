// Package errors provides structured error types for the handle library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending value, the source and target type names
// and a human-readable detail.
//
// Use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseConvert, 300, "int64", "uint8")
//	err := errors.ElementCount(errors.PhaseConstruct, 2)
//
// Or the Builder for anything else:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidInput).
//		Value(s).
//		Detail("%q is not a number", s).
//		Build()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
