package tombmap

// findOrInsertSlot implements spec §4.3's find_or_insert_slot: linear
// probing, step 1, wrapping modulo length, preferring the first tombstone
// discovered on the chain over a later empty slot (bounds probe length
// over time by reclaiming deleted slots as soon as they're seen).
//
// Returns (index, found). found is true iff a live slot holding key was
// located, in which case index is that slot. Otherwise index is the site
// at which key can be inserted (first tombstone if one was seen, else the
// terminating empty slot).
func findOrInsertSlot[K comparable, V any](s *slotArray[K, V], hash uint64, key K) (index uint64, found bool) {
	length := s.length()
	mask := length - 1
	home := hash & mask

	firstTombstone := int64(-1)

	for step := uint64(0); step <= length; step++ {
		i := (home + step) & mask

		switch s.tags[i] {
		case tagEmpty:
			if firstTombstone >= 0 {
				return uint64(firstTombstone), false
			}
			return i, false

		case tagTombstone:
			if firstTombstone < 0 {
				firstTombstone = int64(i)
			}

		case tagLive:
			if s.entries[i].key == key {
				return i, true
			}
		}
	}

	// Structurally full: forbidden by I3 for normal insertions; only
	// reachable via PutAssumeCapacity, which interprets this as "no room".
	if firstTombstone >= 0 {
		return uint64(firstTombstone), false
	}
	return 0, false
}

// findSlot implements the read-only half of the probe: lookup without an
// insertion fallback. Used by get/contains/remove, which never need an
// insertion site.
func findSlot[K comparable, V any](s *slotArray[K, V], hash uint64, key K) (index uint64, found bool) {
	length := s.length()
	mask := length - 1
	home := hash & mask

	for step := uint64(0); step <= length; step++ {
		i := (home + step) & mask

		switch s.tags[i] {
		case tagEmpty:
			return 0, false
		case tagLive:
			if s.entries[i].key == key {
				return i, true
			}
		}
		// tagTombstone: keep walking, it does not terminate the probe (I5).
	}

	return 0, false
}

// insertOnly is the "assume capacity, insert-only" path used by rebuilds
// and by Clone: the destination table is freshly allocated and known to
// have room, so it never walks past an empty slot and never needs to
// check for an existing key (both only ever copy live, unique keys).
func insertOnly[K comparable, V any](s *slotArray[K, V], hash uint64, key K, value V) bool {
	length := s.length()
	mask := length - 1
	home := hash & mask

	for step := uint64(0); step <= length; step++ {
		i := (home + step) & mask
		if s.tags[i] == tagEmpty {
			s.tags[i] = tagLive
			s.entries[i] = entry[K, V]{key: key, value: value}
			return true
		}
	}

	return false
}
