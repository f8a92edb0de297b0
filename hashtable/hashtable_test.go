package hashtable

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collidingHasher sends every key to the same bucket.
func collidingHasher() Hasher[string] {
	return HasherFunc[string]{
		HashFn:  func(string) uint64 { return 7 },
		EqualFn: func(a, b string) bool { return a == b },
	}
}

func bucketLengthSum[K, V any](t *HashTable[K, V]) int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}
	return n
}

func TestNew(t *testing.T) {
	ht := New[string, int]()

	assert.Equal(t, 0, ht.Size())
	assert.True(t, ht.IsEmpty())
	assert.Equal(t, InitialBuckets, ht.BucketCount())
}

func TestNewWithHasher_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewWithHasher[string, int](nil)
	})
}

func TestInsert(t *testing.T) {
	ht := New[string, int]()

	prev, existed := ht.Insert("Potato", 10)
	assert.False(t, existed)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 1, ht.Size())
	assert.False(t, ht.IsEmpty())
}

func TestInsert_Overwrite(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("Potato", 10)

	prev, existed := ht.Insert("Potato", 20)
	assert.True(t, existed)
	assert.Equal(t, 10, prev)
	assert.Equal(t, 1, ht.Size())

	got, ok := ht.Get("Potato")
	require.True(t, ok)
	assert.Equal(t, 20, got)
}

func TestInsert_ZeroValueIsDistinguishable(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("zero", 0)

	prev, existed := ht.Insert("zero", 5)
	assert.True(t, existed, "a stored zero must still report the key as present")
	assert.Equal(t, 0, prev)

	_, ok := ht.Get("missing")
	assert.False(t, ok)
}

func TestInsert_ResizeSchedule(t *testing.T) {
	ht := New[int, int]()

	// Bucket count observed after each insert, starting from one bucket.
	want := []int{1, 2, 4, 8, 8, 8, 16, 16, 16, 16, 16, 16, 32}
	for i, buckets := range want {
		ht.Insert(i, i)
		assert.Equal(t, buckets, ht.BucketCount(), "after insert #%d", i+1)
	}
}

func TestInsert_ResizePreservesEntries(t *testing.T) {
	ht := New[string, int]()
	words := []string{"Potato", "Tomato", "Dylan", "Hamlet", "Pillow", "Century"}

	for _, w := range words {
		ht.Insert(w, 1)
	}

	assert.Equal(t, len(words), ht.Size())
	assert.Greater(t, ht.BucketCount(), InitialBuckets)
	for _, w := range words {
		v, ok := ht.Lookup(w)
		require.True(t, ok, "missing %q", w)
		assert.Equal(t, 1, *v)
	}
}

func TestInsert_OverwriteLoadCheck(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		ht := New[string, int]()
		for i, k := range []string{"a", "b", "c", "d"} {
			ht.Insert(k, i)
		}
		require.Equal(t, 8, ht.BucketCount())

		ht.Insert("a", 10)
		assert.Equal(t, 8, ht.BucketCount())
		assert.Equal(t, 4, ht.Size())
	})

	t.Run("at threshold", func(t *testing.T) {
		ht := New[string, int]()
		for i, k := range []string{"a", "b", "c"} {
			ht.Insert(k, i)
		}
		require.Equal(t, 4, ht.BucketCount())

		// The load check runs before the key is looked up.
		ht.Insert("a", 10)
		assert.Equal(t, 8, ht.BucketCount())
		assert.Equal(t, 3, ht.Size())
	})
}

func TestLookup(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("Tomato", 3)

	tests := []struct {
		name  string
		key   string
		want  int
		found bool
	}{
		{name: "present", key: "Tomato", want: 3, found: true},
		{name: "absent", key: "Potato", found: false},
		{name: "case sensitive", key: "tomato", found: false},
		{name: "empty key", key: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ht.Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, v)
				assert.Equal(t, tt.want, *v)
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestLookup_UpdateInPlace(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("word", 1)

	v, ok := ht.Lookup("word")
	require.True(t, ok)
	*v++

	got, _ := ht.Get("word")
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, ht.Size())
}

func TestLookup_Idempotent(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("x", 42)

	first, ok1 := ht.Lookup("x")
	second, ok2 := ht.Lookup("x")
	assert.Equal(t, ok1, ok2)
	assert.Same(t, first, second)
	assert.Equal(t, 1, ht.Size())
}

func TestRemove(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("Hamlet", 4)
	ht.Insert("Pillow", 5)

	val, ok := ht.Remove("Hamlet")
	assert.True(t, ok)
	assert.Equal(t, 4, val)
	assert.Equal(t, 1, ht.Size())
	assert.False(t, ht.Contains("Hamlet"))
	assert.True(t, ht.Contains("Pillow"))
}

func TestRemove_Absent(t *testing.T) {
	ht := New[string, int]()
	ht.Insert("Dylan", 1)

	val, ok := ht.Remove("Century")
	assert.False(t, ok)
	assert.Equal(t, 0, val)
	assert.Equal(t, 1, ht.Size())
}

func TestRemove_NeverShrinks(t *testing.T) {
	ht := New[int, string]()
	for i := 0; i < 20; i++ {
		ht.Insert(i, fmt.Sprint(i))
	}
	buckets := ht.BucketCount()

	for i := 0; i < 20; i++ {
		ht.Remove(i)
	}
	assert.True(t, ht.IsEmpty())
	assert.Equal(t, buckets, ht.BucketCount())
}

func TestRemove_PreservesBucketOrder(t *testing.T) {
	ht := NewWithHasher[string, int](collidingHasher())
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		ht.Insert(k, i)
	}

	ht.Remove("b")
	ht.Remove("d")

	var keys []string
	for k := range ht.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "c", "e"}, keys)
	assert.Equal(t, 3, ht.Size())
	assert.Equal(t, ht.Size(), bucketLengthSum(ht))
}

func TestPairs(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		ht := New[string, int]()
		pairs := ht.Pairs()
		assert.NotNil(t, pairs)
		assert.Empty(t, pairs)
	})

	t.Run("single bucket keeps insertion order", func(t *testing.T) {
		ht := NewWithHasher[string, int](collidingHasher())
		ht.Insert("one", 1)
		ht.Insert("two", 2)
		ht.Insert("three", 3)

		assert.Equal(t, []Pair[string, int]{
			{Key: "one", Value: 1},
			{Key: "two", Value: 2},
			{Key: "three", Value: 3},
		}, ht.Pairs())
	})

	t.Run("bucket-major order", func(t *testing.T) {
		// Key length decides the bucket, so the order is predictable.
		h := HasherFunc[string]{
			HashFn:  func(s string) uint64 { return uint64(len(s)) },
			EqualFn: func(a, b string) bool { return a == b },
		}
		ht := NewWithHasher[string, int](h)
		for _, k := range []string{"ccc", "a", "bb", "d"} {
			ht.Insert(k, len(k))
		}
		require.Equal(t, 8, ht.BucketCount())

		var keys []string
		for _, p := range ht.Pairs() {
			keys = append(keys, p.Key)
		}
		assert.Equal(t, []string{"a", "d", "bb", "ccc"}, keys)
	})

	t.Run("matches all", func(t *testing.T) {
		ht := New[string, int]()
		for i := 0; i < 50; i++ {
			ht.Insert(strings.Repeat("x", i), i)
		}

		var fromAll []Pair[string, int]
		for k, v := range ht.All() {
			fromAll = append(fromAll, Pair[string, int]{Key: k, Value: v})
		}
		assert.Equal(t, ht.Pairs(), fromAll)
		assert.Len(t, fromAll, 50)
	})
}

func TestAll_StopsEarly(t *testing.T) {
	ht := New[int, int]()
	for i := 0; i < 10; i++ {
		ht.Insert(i, i)
	}

	seen := 0
	for range ht.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestStringHasher(t *testing.T) {
	ht := NewWithHasher[string, int](StringHasher{})
	for i := 0; i < 100; i++ {
		ht.Insert(fmt.Sprintf("key-%d", i), i)
	}

	assert.Equal(t, 100, ht.Size())
	for i := 0; i < 100; i++ {
		v, ok := ht.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	h := StringHasher{}
	assert.Equal(t, h.Hash("stable"), h.Hash("stable"))
	assert.True(t, h.Equal("a", "a"))
	assert.False(t, h.Equal("a", "b"))
}

func TestComparableHasher_StructKeys(t *testing.T) {
	type point struct{ X, Y int }
	ht := New[point, string]()

	ht.Insert(point{1, 2}, "a")
	ht.Insert(point{2, 1}, "b")
	ht.Insert(point{1, 2}, "c")

	assert.Equal(t, 2, ht.Size())
	got, ok := ht.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestHasherFunc_CustomEquality(t *testing.T) {
	// Case-insensitive keys: equal keys must hash the same.
	h := HasherFunc[string]{
		HashFn:  func(s string) uint64 { return StringHasher{}.Hash(strings.ToLower(s)) },
		EqualFn: strings.EqualFold,
	}
	ht := NewWithHasher[string, int](h)

	ht.Insert("Word", 1)
	prev, existed := ht.Insert("WORD", 2)

	assert.True(t, existed)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 1, ht.Size())
	// The original key is kept, only the value changes.
	assert.Equal(t, []Pair[string, int]{{Key: "Word", Value: 2}}, ht.Pairs())
}
