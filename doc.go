// Package handle provides strongly typed indices into external storage.
//
// A Handle wraps a raw integer that identifies an entity (a node, a slot,
// an element) in some arena or table owned by the caller. Handles are
// parameterized by a tag type that selects the identifier space:
//
//	type node struct{}
//	type edge struct{}
//
//	n := handle.Make[node](3)
//	e := handle.Make[edge](3)
//
//	n == e                     // does not compile
//	handle.Of[edge](n)         // does not compile
//	nodes[n.Raw()]             // the only way back to the raw index
//
// The tag is never instantiated and has no runtime cost. It must be a
// comparable type; an empty struct is the convention.
//
// # Architecture Overview
//
//	handle/       Handle, the Property constraint and its implementations
//	├── narrow/   Checked numeric conversions
//	├── table/    Generation-checked slot table addressed by handles
//	├── errors/   Structured error types
//	└── cmd/      The narrow explorer CLI
//
// # Properties
//
// The raw value is stored in a property type. Index is the default and
// holds a single uint64. Generational packs a 32-bit index with a 32-bit
// generation so a slot can be reused without stale handles matching it.
// Any type satisfying Property can be plugged in:
//
//	type Slot = handle.Handle[slot, handle.Generational]
//
// # Arithmetic and Ordering
//
// Go has no operator overloading, so each operator is a method:
//
//	++h      h.Inc()
//	h++      h.PostInc()
//	h += 5   h.AddAssign(5)
//	h + 5    h.Add(5)
//	a < b    a.Less(b)
//	a >= b   a.GreaterEqual(b)
//
// Handles with the same tag and property are comparable with == and can be
// used as map keys directly.
//
// # Single-Value Initializers
//
// From and IndexOf accept a variadic single-value initializer and narrow it
// into the raw representation:
//
//	h := handle.From[node, handle.Index](int32(5))
//
// Passing zero or more than one value, or a value that does not fit, is a
// contract violation and panics. Parse and ParseIndex return the same
// conditions as errors instead.
package handle
