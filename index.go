package handle

import (
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/handle/narrow"
)

// Index is the default property: a single raw index.
//
// The struct wrapper keeps untyped constants and plain integers from being
// used where an Index is expected; Raw is the only way out and NewIndex or
// IndexOf the only ways in.
type Index struct {
	v Value
}

// NewIndex returns an Index holding v.
func NewIndex(v Value) Index {
	return Index{v: v}
}

// IndexOf builds an Index from a single-value initializer. It panics if
// vals does not hold exactly one element or the element does not narrow
// losslessly into Value.
func IndexOf[T narrow.Number](vals ...T) Index {
	return Index{v: mustSingle(vals)}
}

// ParseIndex is IndexOf returning the contract violations as errors.
func ParseIndex[T narrow.Number](vals ...T) (Index, error) {
	v, err := single(vals)
	if err != nil {
		return Index{}, err
	}
	return Index{v: v}, nil
}

// FromRaw returns an Index holding v.
func (Index) FromRaw(v Value) Index {
	return Index{v: v}
}

// Raw returns the stored index.
func (i Index) Raw() Value {
	return i.v
}

// Inc increments the index in place and returns the new value.
func (i *Index) Inc() Index {
	i.v++
	return *i
}

// PostInc increments the index in place and returns the old value.
func (i *Index) PostInc() Index {
	old := *i
	i.v++
	return old
}

// Dec decrements the index in place and returns the new value.
func (i *Index) Dec() Index {
	i.v--
	return *i
}

// PostDec decrements the index in place and returns the old value.
func (i *Index) PostDec() Index {
	old := *i
	i.v--
	return old
}

// AddAssign offsets the index forward in place.
func (i *Index) AddAssign(d Difference) Index {
	i.v += d
	return *i
}

// SubAssign offsets the index backward in place.
func (i *Index) SubAssign(d Difference) Index {
	i.v -= d
	return *i
}

// Add returns a copy offset forward by d. Arithmetic wraps like uint64.
func (i Index) Add(d Difference) Index {
	i.v += d
	return i
}

// Sub returns a copy offset backward by d. Arithmetic wraps like uint64.
func (i Index) Sub(d Difference) Index {
	i.v -= d
	return i
}

// Equal reports whether both indices hold the same raw value.
func (i Index) Equal(other Index) bool {
	return i.v == other.v
}

// NotEqual is the negation of Equal.
func (i Index) NotEqual(other Index) bool {
	return !i.Equal(other)
}

// Less reports whether i orders before other.
func (i Index) Less(other Index) bool {
	return i.v < other.v
}

// Greater reports whether other orders before i.
func (i Index) Greater(other Index) bool {
	return other.Less(i)
}

// LessEqual reports whether i does not order after other.
func (i Index) LessEqual(other Index) bool {
	return !i.Greater(other)
}

// GreaterEqual reports whether i does not order before other.
func (i Index) GreaterEqual(other Index) bool {
	return !i.Less(other)
}

// Compare returns -1, 0 or +1 in the order of the raw values.
func (i Index) Compare(other Index) int {
	switch {
	case i.Less(other):
		return -1
	case other.Less(i):
		return 1
	}
	return 0
}

// String renders the raw value in decimal.
func (i Index) String() string {
	return strconv.FormatUint(i.v, 10)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (i Index) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("index", i.v)
	return nil
}
