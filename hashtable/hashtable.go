package hashtable

import (
	"iter"
	"slices"
)

const (
	// InitialBuckets is the bucket count of a freshly created table.
	InitialBuckets = 1

	// LoadFactor is the maximum ratio of entries to buckets. An insert that
	// finds the table at or above this ratio doubles the bucket count first.
	LoadFactor = 0.75

	// growthFactor is applied to the bucket count on every resize.
	growthFactor = 2
)

// Pair is a key/value entry returned by Pairs.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// bucket holds the entries whose hash maps to one slot, in insertion order.
type bucket[K, V any] []Pair[K, V]

// HashTable maps keys to values using separate chaining.
//
// The zero value is not usable; create tables with New or NewWithHasher.
type HashTable[K, V any] struct {
	hasher  Hasher[K]
	buckets []bucket[K, V]
	size    int
}

// New creates an empty table for a comparable key type.
func New[K comparable, V any]() *HashTable[K, V] {
	return NewWithHasher[K, V](ComparableHasher[K]{})
}

// NewWithHasher creates an empty table that hashes and compares keys with h.
// It panics if h is nil.
func NewWithHasher[K, V any](h Hasher[K]) *HashTable[K, V] {
	if h == nil {
		panic("hashtable: nil Hasher")
	}
	return &HashTable[K, V]{
		hasher:  h,
		buckets: make([]bucket[K, V], InitialBuckets),
	}
}

// Size returns the number of entries in the table.
func (t *HashTable[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the table holds no entries.
func (t *HashTable[K, V]) IsEmpty() bool {
	return t.size == 0
}

// BucketCount returns the current number of buckets. It is always positive.
func (t *HashTable[K, V]) BucketCount() int {
	return len(t.buckets)
}

// Insert stores val under key.
//
// If key was already present its value is replaced and the previous value is
// returned with true. Otherwise the entry is appended to its bucket and Insert
// returns the zero value and false.
func (t *HashTable[K, V]) Insert(key K, val V) (V, bool) {
	if float64(len(t.buckets))*LoadFactor <= float64(t.size) {
		t.resize()
	}

	b := t.bucketIndex(key)
	if i := t.find(key, t.buckets[b]); i >= 0 {
		prev := t.buckets[b][i].Value
		t.buckets[b][i].Value = val
		return prev, true
	}

	t.buckets[b] = append(t.buckets[b], Pair[K, V]{Key: key, Value: val})
	t.size++
	var zero V
	return zero, false
}

// Lookup returns a pointer to the value stored under key, or nil and false.
//
// The pointer refers to the table's own storage and may be used to update the
// value in place. It is invalidated by the next Insert or Remove.
func (t *HashTable[K, V]) Lookup(key K) (*V, bool) {
	b := t.bucketIndex(key)
	if i := t.find(key, t.buckets[b]); i >= 0 {
		return &t.buckets[b][i].Value, true
	}
	return nil, false
}

// Get returns a copy of the value stored under key.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	if v, ok := t.Lookup(key); ok {
		return *v, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *HashTable[K, V]) Contains(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Remove deletes key and returns its value with true, or the zero value and
// false if key was absent. Other entries in the same bucket keep their
// relative order. The bucket count never shrinks.
func (t *HashTable[K, V]) Remove(key K) (V, bool) {
	b := t.bucketIndex(key)
	i := t.find(key, t.buckets[b])
	if i < 0 {
		var zero V
		return zero, false
	}

	val := t.buckets[b][i].Value
	t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
	t.size--
	return val, true
}

// Pairs returns every entry in bucket order, then insertion order within a
// bucket. An empty table yields an empty, non-nil slice.
func (t *HashTable[K, V]) Pairs() []Pair[K, V] {
	res := make([]Pair[K, V], 0, t.size)
	for _, b := range t.buckets {
		res = append(res, b...)
	}
	return res
}

// All yields every key/value entry in the same order as Pairs.
// The table must not be modified while iterating.
func (t *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, p := range b {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}
	}
}

// Keys yields every key in the same order as Pairs.
func (t *HashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// resize doubles the bucket count and redistributes every entry. The new
// bucket slice is fully built before it replaces the old one.
func (t *HashTable[K, V]) resize() {
	next := make([]bucket[K, V], len(t.buckets)*growthFactor)
	for _, b := range t.buckets {
		for _, p := range b {
			i := t.hasher.Hash(p.Key) % uint64(len(next))
			next[i] = append(next[i], p)
		}
	}
	t.buckets = next
}

// bucketIndex maps key to a slot in the current bucket slice.
func (t *HashTable[K, V]) bucketIndex(key K) uint64 {
	return t.hasher.Hash(key) % uint64(len(t.buckets))
}

// find returns the index of key in b, or -1.
func (t *HashTable[K, V]) find(key K, b bucket[K, V]) int {
	for i, p := range b {
		if t.hasher.Equal(p.Key, key) {
			return i
		}
	}
	return -1
}
