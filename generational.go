package handle

import (
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/handle/narrow"
)

// Generational is a property that pairs a 32-bit slot index with a 32-bit
// generation. Storage that reuses slots bumps the generation on reuse, so a
// handle to the previous occupant no longer compares equal to the new one.
//
// Raw returns the slot index only. Arithmetic moves the index and keeps the
// generation; results outside the uint32 range are contract violations.
type Generational struct {
	index uint32
	gen   uint32
}

// NewGenerational returns a property for slot index at generation gen.
func NewGenerational(index, gen uint32) Generational {
	return Generational{index: index, gen: gen}
}

// FromRaw returns generation zero of slot v. It panics if v does not fit
// in 32 bits.
func (Generational) FromRaw(v Value) Generational {
	return Generational{index: narrow.Cast[uint32](v)}
}

// Raw returns the slot index.
func (g Generational) Raw() Value {
	return Value(g.index)
}

// Generation returns the generation counter.
func (g Generational) Generation() uint32 {
	return g.gen
}

// Bump returns the same slot at the next generation.
func (g Generational) Bump() Generational {
	g.gen++
	return g
}

// Add offsets the slot index forward by d and keeps the generation.
// It panics if the index leaves the uint32 range.
func (g Generational) Add(d Difference) Generational {
	g.index = narrow.Cast[uint32](Value(g.index) + d)
	return g
}

// Sub offsets the slot index backward by d and keeps the generation.
// It panics if the index leaves the uint32 range.
func (g Generational) Sub(d Difference) Generational {
	g.index = narrow.Cast[uint32](Value(g.index) - d)
	return g
}

// Less orders by index, then by generation.
func (g Generational) Less(other Generational) bool {
	if g.index != other.index {
		return g.index < other.index
	}
	return g.gen < other.gen
}

// String renders the slot as index#generation.
func (g Generational) String() string {
	return strconv.FormatUint(uint64(g.index), 10) + "#" + strconv.FormatUint(uint64(g.gen), 10)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (g Generational) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("index", g.index)
	enc.AddUint32("generation", g.gen)
	return nil
}
