package handle

import (
	"github.com/wippyai/handle/errors"
	"github.com/wippyai/handle/narrow"
)

// single validates a single-value initializer and narrows its element
// into a raw Value.
func single[T narrow.Number](vals []T) (Value, error) {
	if len(vals) != 1 {
		return 0, errors.ElementCount(errors.PhaseConstruct, len(vals))
	}
	return narrow.TryCast[Value](vals[0])
}

// mustSingle is single under contract semantics: a malformed initializer
// always panics, a lossy element panics unless checks are compiled out.
func mustSingle[T narrow.Number](vals []T) Value {
	if len(vals) != 1 {
		err := errors.ElementCount(errors.PhaseConstruct, len(vals))
		Logger().Error("malformed single-value initializer", fieldCount(len(vals)))
		panic(err)
	}
	return narrow.Cast[Value](vals[0])
}
