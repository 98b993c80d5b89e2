package tombmap

// slotTag is the three-state tag of a single slot (§3 Data Model). A
// tagged-union slot is realised here as a small tag byte parallel to the
// (key, value) payload, rather than as a Go sum type (the language has
// none): see DESIGN.md "Core table / slot.go".
type slotTag uint8

const (
	tagEmpty slotTag = iota
	tagTombstone
	tagLive
)

// entry is the payload of a live slot.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// slotArray is the contiguous, exclusively-owned backing storage for one
// table generation. Indexed access is unchecked: callers mask indices to
// (length-1) themselves, exactly as spec §4.1 requires.
//
// tags and entries are parallel slices rather than a single slice of
// structs: tag bytes are scanned far more often than payloads are touched
// (every probe step reads a tag; only a matching or inserting step touches
// the entry), so keeping them in separate backing arrays keeps the hot
// scan dense. This is the layout spec §9's Design Notes calls out as an
// alternative to a single tagged struct per slot.
type slotArray[K comparable, V any] struct {
	tags    []slotTag
	entries []entry[K, V]
}

// newSlotArray allocates a slot array of the given length (always a ladder
// entry), all slots Empty, via the supplied allocator.
func newSlotArray[K comparable, V any](alloc Allocator[K, V], length uint64) (*slotArray[K, V], error) {
	tags, entries, err := alloc.Allocate(int(length))
	if err != nil {
		return nil, err
	}
	return &slotArray[K, V]{tags: tags, entries: entries}, nil
}

func (s *slotArray[K, V]) length() uint64 {
	return uint64(len(s.tags))
}

func (s *slotArray[K, V]) release(alloc Allocator[K, V]) {
	alloc.Release(s.tags, s.entries)
	s.tags = nil
	s.entries = nil
}

// fillEmpty resets every slot in place to Empty, without reallocating.
func (s *slotArray[K, V]) fillEmpty() {
	var zero entry[K, V]
	for i := range s.tags {
		s.tags[i] = tagEmpty
		s.entries[i] = zero
	}
}
