package tombmap

import "hash/maphash"

// Map is a generic, single-threaded, open-addressed K -> V table. See
// spec.md §1-§4 for the full data model; this type is the public
// MapProtocol (§4.5).
//
// K must satisfy comparable. Go's generics have no negative constraint to
// exclude float32/float64 or sum-type keys whose discriminant isn't part
// of structural equality; spec.md asks for that rejection "at the
// type-definition layer, not by a runtime check" but the type system
// cannot express it for an arbitrary K, so this is a documented limitation
// rather than a guessed-at runtime check (see DESIGN.md, Open Question 5).
// Avoid float keys: NaN never compares equal to itself, so an entry keyed
// by NaN can become permanently unreachable.
type Map[K comparable, V any] struct {
	controller[K, V]
}

// New constructs an empty map at capacity class 0 (8 slots), per spec §3's
// lifecycle. Use NewWithCapacity to pre-size the table.
func New[K comparable, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	m := &Map[K, V]{}
	m.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	m.alloc = goAllocator[K, V]{}
	m.metrics = noopMetrics{}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.init(); err != nil {
		return nil, err
	}

	return m, nil
}

// NewWithCapacity constructs a map and immediately raises its class so it
// can hold at least capacity entries without a further grow, via
// EnsureCapacity.
func NewWithCapacity[K comparable, V any](capacity int, opts ...Option[K, V]) (*Map[K, V], error) {
	m, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	if capacity > 0 {
		if err := m.EnsureCapacity(capacity); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Map[K, V]) hash(key K) uint64 {
	return m.hashFunc(key)
}

// insertLive writes key/value into idx, adjusting the tombstone counter if
// the site was reclaimed from a tombstone, and increments live.
func (m *Map[K, V]) insertLive(idx uint64, key K, value V) {
	if m.slots.tags[idx] == tagTombstone {
		m.tombstones--
	}
	m.slots.tags[idx] = tagLive
	m.slots.entries[idx] = entry[K, V]{key: key, value: value}
	m.live++
}

// Put inserts key/value, replacing any existing value for key.
func (m *Map[K, V]) Put(key K, value V) error {
	if err := m.adjustBeforeInsert(); err != nil {
		return err
	}

	idx, found := findOrInsertSlot(m.slots, m.hash(key), key)
	if found {
		m.slots.entries[idx].value = value
		return nil
	}

	m.insertLive(idx, key, value)
	return nil
}

// PutNoClobber inserts key/value only if key is absent. Reports whether an
// insertion happened.
func (m *Map[K, V]) PutNoClobber(key K, value V) (inserted bool, err error) {
	if err := m.adjustBeforeInsert(); err != nil {
		return false, err
	}

	idx, found := findOrInsertSlot(m.slots, m.hash(key), key)
	if found {
		return false, nil
	}

	m.insertLive(idx, key, value)
	return true, nil
}

// Update replaces the value for an existing key only; it never inserts and
// so never invokes the grow/rebuild gate. Reports whether key was present.
func (m *Map[K, V]) Update(key K, value V) bool {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		return false
	}
	m.slots.entries[idx].value = value
	return true
}

// FetchPut inserts or replaces key/value and returns the previous value,
// if any.
func (m *Map[K, V]) FetchPut(key K, value V) (previous V, hadPrevious bool, err error) {
	if err := m.adjustBeforeInsert(); err != nil {
		var zero V
		return zero, false, err
	}

	idx, found := findOrInsertSlot(m.slots, m.hash(key), key)
	if found {
		previous = m.slots.entries[idx].value
		m.slots.entries[idx].value = value
		return previous, true, nil
	}

	m.insertLive(idx, key, value)
	var zero V
	return zero, false, nil
}

// PutAssumeCapacity inserts or replaces key/value without ever resizing
// the table. Returns false (and leaves the map unchanged) if the table is
// structurally full.
func (m *Map[K, V]) PutAssumeCapacity(key K, value V) bool {
	idx, found := findOrInsertSlot(m.slots, m.hash(key), key)
	if found {
		m.slots.entries[idx].value = value
		return true
	}

	if m.slots.tags[idx] == tagLive {
		// findOrInsertSlot only returns a non-live insertion site;
		// tagLive here means the probe exhausted without finding
		// room (structurally full).
		return false
	}

	m.insertLive(idx, key, value)
	return true
}

// GetOrInsert ensures a slot exists for key and returns a pointer to its
// value together with whether the key was already present. When
// foundExisting is false the value has just been reserved at its zero
// value; per spec §4.5 the caller is expected to write through the
// returned pointer before any subsequent lookup (see DESIGN.md Open
// Question 3 for why Go's zero-initialization doesn't fully replace that
// contract).
func (m *Map[K, V]) GetOrInsert(key K) (value *V, foundExisting bool, err error) {
	if err := m.adjustBeforeInsert(); err != nil {
		return nil, false, err
	}

	idx, found := findOrInsertSlot(m.slots, m.hash(key), key)
	if found {
		return &m.slots.entries[idx].value, true, nil
	}

	var zero V
	m.insertLive(idx, key, zero)
	return &m.slots.entries[idx].value, false, nil
}

// Get looks up key, returning its value and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots.entries[idx].value, true
}

// GetRef looks up key, returning a pointer into the live slot. The pointer
// is valid only until the next mutation that can resize the table (see
// Iterator's invalidation rules, which apply identically here).
func (m *Map[K, V]) GetRef(key K) (*V, bool) {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		return nil, false
	}
	return &m.slots.entries[idx].value, true
}

// GetEntry looks up key, returning a copy of its (key, value) entry.
func (m *Map[K, V]) GetEntry(key K) (k K, v V, ok bool) {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		return k, v, false
	}
	e := m.slots.entries[idx]
	return e.key, e.value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := findSlot(m.slots, m.hash(key), key)
	return found
}

// Remove deletes key if present, marking its slot a tombstone. Reports
// whether key was present. It never invokes the grow/rebuild gate since it
// cannot raise live count.
func (m *Map[K, V]) Remove(key K) bool {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		return false
	}
	m.slots.tags[idx] = tagTombstone
	m.live--
	m.tombstones++
	return true
}

// FetchRemove deletes key if present, returning the removed value.
func (m *Map[K, V]) FetchRemove(key K) (V, bool) {
	idx, found := findSlot(m.slots, m.hash(key), key)
	if !found {
		var zero V
		return zero, false
	}
	v := m.slots.entries[idx].value
	var zeroEntry entry[K, V]
	m.slots.tags[idx] = tagTombstone
	m.slots.entries[idx] = zeroEntry
	m.live--
	m.tombstones++
	return v, true
}

// ClearRetainCapacity empties the table; the capacity class is unchanged.
func (m *Map[K, V]) ClearRetainCapacity() {
	m.clearRetainCapacity()
}

// Reset is an alias for ClearRetainCapacity, matching the teacher's naming
// (homier/stablemap.StableMap.Reset).
func (m *Map[K, V]) Reset() {
	m.clearRetainCapacity()
}

// ClearAndRelease empties the table and shrinks its class to 0.
func (m *Map[K, V]) ClearAndRelease() error {
	return m.clearAndRelease()
}

// EnsureCapacity raises the class so the table can hold at least n entries
// without a further grow.
func (m *Map[K, V]) EnsureCapacity(n int) error {
	if n <= 0 {
		return nil
	}
	return m.ensureCapacity(uint64(n))
}

// ReduceMemory shrinks the class per the §4.4 shrink rule, if eligible.
func (m *Map[K, V]) ReduceMemory() error {
	return m.reduceMemory()
}

// Count returns the number of live entries.
func (m *Map[K, V]) Count() int {
	return int(m.live)
}

// Capacity returns the current slot array length.
func (m *Map[K, V]) Capacity() int {
	return int(m.length())
}

// Clone deep-copies the map: a new, independently owned slot array at the
// same class, with every live entry copied by value. Subsequent mutations
// on either map never affect the other.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	clone := &Map[K, V]{}
	clone.hashFunc = m.hashFunc
	clone.alloc = m.alloc
	clone.logger = m.logger
	clone.metrics = noopMetrics{}

	slots, err := newSlotArray[K, V](clone.alloc, ladder[m.class])
	if err != nil {
		return nil, ErrAllocationFailed
	}
	clone.slots = slots
	clone.class = m.class

	for i, tag := range m.slots.tags {
		if tag != tagLive {
			continue
		}
		e := m.slots.entries[i]
		insertOnly(clone.slots, clone.hash(e.key), e.key, e.value)
	}
	clone.live = m.live
	clone.tombstones = 0

	return clone, nil
}
