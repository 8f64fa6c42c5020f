package handle

// Value is the raw representation stored by a property.
type Value = uint64

// Difference is the offset type used by property arithmetic.
type Difference = uint64

// Property is the constraint satisfied by every type a Handle can wrap.
//
// Methods are pure: they never modify the receiver. The zero value of a
// property is its default (raw zero for Index). FromRaw is called on the
// zero value to build a property from a raw value.
type Property[P any] interface {
	comparable

	// FromRaw returns a property holding v.
	FromRaw(v Value) P

	// Raw returns the raw index used to address external storage.
	Raw() Value

	// Add returns a copy offset forward by d.
	Add(d Difference) P

	// Sub returns a copy offset backward by d.
	Sub(d Difference) P

	// Less reports whether the receiver orders strictly before other.
	Less(other P) bool
}
