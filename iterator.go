package tombmap

import "iter"

// Iterator is a stateful cursor over a Map's live entries (spec §4.6).
// Zero value is not usable; obtain one via Map.Iterator.
//
// Any mutation that can resize the table (Put, PutNoClobber, GetOrInsert,
// FetchPut, EnsureCapacity, ReduceMemory, ClearAndRelease) invalidates
// every live Iterator over that map; using one afterwards is undefined.
// Update, Remove, FetchRemove, and ClearRetainCapacity do not invalidate
// iterators.
type Iterator[K comparable, V any] struct {
	m     *Map[K, V]
	index uint64
}

// Iterator returns a new cursor positioned before the first live slot.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Next advances the cursor to the next live slot and returns its key and
// value. ok is false once every live slot has been visited.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	slots := it.m.slots
	length := slots.length()

	for it.index < length {
		i := it.index
		it.index++
		if slots.tags[i] == tagLive {
			e := slots.entries[i]
			return e.key, e.value, true
		}
	}

	return key, value, false
}

// Reset rewinds the cursor to the beginning.
func (it *Iterator[K, V]) Reset() {
	it.index = 0
}

// All returns a range-over-func iterator (iter.Seq2) over the map's live
// entries, a Go 1.23+-idiomatic alternative to the stateful Iterator type,
// grounded on schraf/collections.FixedBlockMap.Iter. Subject to the same
// invalidation rules as Iterator: do not mutate the map in a way that can
// resize it from within the loop body.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, tag := range m.slots.tags {
			if tag != tagLive {
				continue
			}
			e := m.slots.entries[i]
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
