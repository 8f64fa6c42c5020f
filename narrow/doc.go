// Package narrow implements checked numeric conversions.
//
// A conversion from one numeric representation to another is lossless when
// converting the result back reproduces the original value exactly:
//
//	b := narrow.Cast[uint8](int64(200))  // ok, 200
//	c := narrow.Cast[uint8](int64(300))  // panics: 300 -> 44 -> 44
//
// Cast treats a lossy conversion as a programming error and panics. TryCast
// is the result-returning form for values that come from outside the
// program:
//
//	v, err := narrow.TryCast[uint32](userInput)
//	if err != nil {
//	    return err // *errors.Error with Kind == errors.KindOverflow
//	}
//
// # Contract checks
//
// The round-trip check in Cast is a contract assertion. Building with the
// handle_nocheck tag compiles it out:
//
//	go build -tags handle_nocheck ./...
//
// With checks disabled Cast behaves exactly like a plain Go conversion and
// silently truncates lossy values. TryCast and Lossless always check.
//
// Only the round trip is compared. A negative signed value converted to an
// unsigned type of the same width and back reproduces itself, so
// Cast[uint64](int64(-1)) yields math.MaxUint64 without failing.
package narrow
