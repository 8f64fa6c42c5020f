package handle

import (
	"fmt"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/handle/narrow"
)

// Handle is a typed index into the identifier space selected by S.
//
// S is a marker type that is never instantiated; use an empty struct.
// It must be comparable so every Handle is comparable and usable as a map
// key. Handles with different S are distinct types with different
// underlying types, so they cannot be assigned, converted or compared to
// each other. P stores the raw value and implements its arithmetic.
type Handle[S comparable, P Property[P]] struct {
	_    [0]S
	prop P
}

// Of is a Handle using the default Index property.
type Of[S comparable] = Handle[S, Index]

// Wrap returns a handle holding p.
func Wrap[S comparable, P Property[P]](p P) Handle[S, P] {
	return Handle[S, P]{prop: p}
}

// New returns a handle whose property is built from the raw value v.
func New[S comparable, P Property[P]](v Value) Handle[S, P] {
	var zero P
	return Handle[S, P]{prop: zero.FromRaw(v)}
}

// Make returns an Index handle holding v.
func Make[S comparable](v Value) Of[S] {
	return Of[S]{prop: NewIndex(v)}
}

// From builds a handle from a single-value initializer. It panics if vals
// does not hold exactly one element or the element does not narrow
// losslessly into Value.
func From[S comparable, P Property[P], T narrow.Number](vals ...T) Handle[S, P] {
	return New[S, P](mustSingle(vals))
}

// Parse is From returning the contract violations as errors.
func Parse[S comparable, P Property[P], T narrow.Number](vals ...T) (Handle[S, P], error) {
	v, err := single(vals)
	if err != nil {
		return Handle[S, P]{}, err
	}
	return New[S, P](v), nil
}

// Raw returns the raw index of the wrapped property.
func (h Handle[S, P]) Raw() Value {
	return h.prop.Raw()
}

// Property returns the wrapped property.
func (h Handle[S, P]) Property() P {
	return h.prop
}

// Set replaces the wrapped property.
func (h *Handle[S, P]) Set(p P) {
	h.prop = p
}

// SetRaw replaces the wrapped property with one built from v.
func (h *Handle[S, P]) SetRaw(v Value) {
	h.prop = h.prop.FromRaw(v)
}

// Inc increments the handle in place and returns the new value.
func (h *Handle[S, P]) Inc() Handle[S, P] {
	h.prop = h.prop.Add(1)
	return *h
}

// PostInc increments the handle in place and returns the old value.
func (h *Handle[S, P]) PostInc() Handle[S, P] {
	old := *h
	h.prop = h.prop.Add(1)
	return old
}

// Dec decrements the handle in place and returns the new value.
func (h *Handle[S, P]) Dec() Handle[S, P] {
	h.prop = h.prop.Sub(1)
	return *h
}

// PostDec decrements the handle in place and returns the old value.
func (h *Handle[S, P]) PostDec() Handle[S, P] {
	old := *h
	h.prop = h.prop.Sub(1)
	return old
}

// AddAssign offsets the handle forward in place.
func (h *Handle[S, P]) AddAssign(d Difference) Handle[S, P] {
	h.prop = h.prop.Add(d)
	return *h
}

// SubAssign offsets the handle backward in place.
func (h *Handle[S, P]) SubAssign(d Difference) Handle[S, P] {
	h.prop = h.prop.Sub(d)
	return *h
}

// Add returns a copy offset forward by d.
func (h Handle[S, P]) Add(d Difference) Handle[S, P] {
	h.prop = h.prop.Add(d)
	return h
}

// Sub returns a copy offset backward by d.
func (h Handle[S, P]) Sub(d Difference) Handle[S, P] {
	h.prop = h.prop.Sub(d)
	return h
}

// Equal reports whether both handles wrap equal properties.
func (h Handle[S, P]) Equal(other Handle[S, P]) bool {
	return h.prop == other.prop
}

// NotEqual is the negation of Equal.
func (h Handle[S, P]) NotEqual(other Handle[S, P]) bool {
	return !h.Equal(other)
}

// Less reports whether h orders before other by the property's Less.
func (h Handle[S, P]) Less(other Handle[S, P]) bool {
	return h.prop.Less(other.prop)
}

// Greater reports whether other orders before h.
func (h Handle[S, P]) Greater(other Handle[S, P]) bool {
	return other.Less(h)
}

// LessEqual reports whether h does not order after other.
func (h Handle[S, P]) LessEqual(other Handle[S, P]) bool {
	return !h.Greater(other)
}

// GreaterEqual reports whether h does not order before other.
func (h Handle[S, P]) GreaterEqual(other Handle[S, P]) bool {
	return !h.Less(other)
}

// Compare returns -1, 0 or +1 following the property's order. It can be
// passed to slices.SortFunc.
func (h Handle[S, P]) Compare(other Handle[S, P]) int {
	switch {
	case h.Less(other):
		return -1
	case other.Less(h):
		return 1
	}
	return 0
}

// String renders the property through fmt.Stringer, or the raw value.
func (h Handle[S, P]) String() string {
	if s, ok := any(h.prop).(fmt.Stringer); ok {
		return s.String()
	}
	return strconv.FormatUint(h.prop.Raw(), 10)
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Properties that
// marshal themselves are delegated to.
func (h Handle[S, P]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if m, ok := any(h.prop).(zapcore.ObjectMarshaler); ok {
		return m.MarshalLogObject(enc)
	}
	enc.AddUint64("index", h.prop.Raw())
	return nil
}
