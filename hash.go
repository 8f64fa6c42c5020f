package handle

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the seeded hash of the handle. It equals
// maphash.Comparable(seed, h.Raw()), so a handle hashes like its raw index.
func (h Handle[S, P]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, h.Raw())
}

// Sum64 returns the unseeded xxhash of the handle. It equals
// RawSum64(h.Raw()).
func (h Handle[S, P]) Sum64() uint64 {
	return RawSum64(h.Raw())
}

// RawSum64 returns the xxhash of v encoded as 8 little-endian bytes.
func RawSum64(v Value) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}
