package narrow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/handle/errors"
)

// Integer is the set of Go integer representations.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating point representations.
type Float interface {
	~float32 | ~float64
}

// Number is any representation Cast can convert between.
type Number interface {
	Integer | Float
}

// Cast converts v to To and panics if converting the result back to From
// does not reproduce v. The panic value is an *errors.Error.
//
// When built with the handle_nocheck tag the check is skipped and Cast is a
// plain conversion.
func Cast[To, From Number](v From) To {
	to := To(v)
	if Checked && From(to) != v {
		err := overflow(v, to)
		Logger().Error("narrowing conversion lost information",
			zap.String("from", err.From),
			zap.String("to", err.To),
			zap.Any("value", v),
			zap.Any("result", to))
		panic(err)
	}
	return to
}

// TryCast converts v to To and returns an overflow error if the conversion
// is lossy. It ignores the handle_nocheck tag.
func TryCast[To, From Number](v From) (To, error) {
	to := To(v)
	if From(to) != v {
		return 0, overflow(v, to)
	}
	return to, nil
}

// Lossless reports whether v survives a round trip through To.
func Lossless[To, From Number](v From) bool {
	return From(To(v)) == v
}

// Must unwraps the result of TryCast, panicking on error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func overflow[To, From Number](v From, to To) *errors.Error {
	err := errors.Overflow(errors.PhaseConvert, v, fmt.Sprintf("%T", v), fmt.Sprintf("%T", to))
	err.Detail = fmt.Sprintf("value %v round-trips as %v", v, From(to))
	return err
}
