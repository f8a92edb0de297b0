// Package hashtable provides a generic hash table with separate chaining.
//
// Entries that hash to the same slot are kept together in a bucket and found
// by a linear scan. The table starts with a single bucket and doubles its
// bucket count whenever an insert would push the load factor past 0.75.
// There is no shrink path: removals never reduce the bucket count.
//
// # Basic Usage
//
// Any comparable key type works out of the box:
//
//	t := hashtable.New[string, int]()
//	t.Insert("potato", 1)
//	if v, ok := t.Lookup("potato"); ok {
//	    *v++ // update in place
//	}
//	prev, existed := t.Remove("potato")
//
// # Hashers
//
// Keys are hashed through the Hasher interface. New uses ComparableHasher,
// which is seeded once per process, so bucket placement (and therefore the
// order returned by Pairs and All) is deterministic within a run but may differ
// between runs. For string keys, StringHasher gives placement that is stable
// across runs:
//
//	t := hashtable.NewWithHasher[string, int](hashtable.StringHasher{})
//
// Keys that are not comparable with == can still be stored by supplying a
// Hasher whose Equal method defines key equality.
//
// # Iteration
//
// Pairs returns every entry as a slice; All yields the same entries lazily.
// Both walk the buckets in index order and each bucket in insertion order.
// The order is not sorted and changes when the table resizes.
//
// # Concurrency
//
// A HashTable is not safe for concurrent use. Callers that share a table
// between goroutines must provide their own locking.
package hashtable
