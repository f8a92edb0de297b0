package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher defines a hash function and an equivalence relation over keys.
//
// Implementations must be consistent: Equal(a, b) implies Hash(a) == Hash(b).
// Hash must be deterministic for the lifetime of the process.
type Hasher[K any] interface {
	// Hash returns the hash code of key.
	Hash(key K) uint64

	// Equal reports whether a and b are the same key.
	Equal(a, b K) bool
}

// processSeed is shared by every ComparableHasher so that equal keys hash
// identically across tables within one process.
var processSeed = maphash.MakeSeed()

// ComparableHasher hashes any comparable type using hash/maphash.
// Its Equal method is consistent with ==.
type ComparableHasher[K comparable] struct{}

// Hash implements Hasher.
func (ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(processSeed, key)
}

// Equal implements Hasher.
func (ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

// StringHasher hashes strings with xxHash64. Unlike ComparableHasher its
// output does not depend on a process seed.
type StringHasher struct{}

// Hash implements Hasher.
func (StringHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Equal implements Hasher.
func (StringHasher) Equal(a, b string) bool {
	return a == b
}

// HasherFunc adapts a pair of functions to the Hasher interface.
type HasherFunc[K any] struct {
	HashFn  func(K) uint64
	EqualFn func(a, b K) bool
}

// Hash implements Hasher.
func (h HasherFunc[K]) Hash(key K) uint64 {
	return h.HashFn(key)
}

// Equal implements Hasher.
func (h HasherFunc[K]) Equal(a, b K) bool {
	return h.EqualFn(a, b)
}
