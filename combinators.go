package tombmap

// Union returns a new map containing every entry from both m and other.
// Per spec §4.7 the clone is made from the larger side and the smaller
// side's entries are put into it; that means for duplicate keys the value
// from the smaller map wins (m's when m is the smaller, other's when other
// is the smaller or both have the same count). This is a documented bias,
// not a bug: the smaller side overwrites into the clone of the larger.
func (m *Map[K, V]) Union(other *Map[K, V]) (*Map[K, V], error) {
	larger, smaller := m, other
	if m.Count() < other.Count() {
		larger, smaller = other, m
	}

	result, err := larger.Clone()
	if err != nil {
		return nil, err
	}

	it := smaller.Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if err := result.Put(k, v); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Intersection returns a new map containing only the entries whose keys
// are present in both m and other, with values taken from the smaller
// side's clone (per spec §4.7: clone the smaller, then drop any entry
// whose key the larger side lacks).
func (m *Map[K, V]) Intersection(other *Map[K, V]) (*Map[K, V], error) {
	smaller, larger := m, other
	if m.Count() > other.Count() {
		smaller, larger = other, m
	}

	result, err := smaller.Clone()
	if err != nil {
		return nil, err
	}

	it := smaller.Iterator()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		if !larger.Contains(k) {
			result.Remove(k)
		}
	}

	return result, nil
}

// SymmetricDifference returns a new map containing the entries whose keys
// appear in exactly one of m or other. Per spec §4.7, it clones the larger
// side, then for each entry in the smaller side: GetOrInsert on the clone;
// if the key was already there (present in both), drop it; otherwise the
// newly-inserted entry is left in place.
func (m *Map[K, V]) SymmetricDifference(other *Map[K, V]) (*Map[K, V], error) {
	larger, smaller := m, other
	if m.Count() < other.Count() {
		larger, smaller = other, m
	}

	result, err := larger.Clone()
	if err != nil {
		return nil, err
	}

	it := smaller.Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}

		value, foundExisting, err := result.GetOrInsert(k)
		if err != nil {
			return nil, err
		}
		if foundExisting {
			result.Remove(k)
		} else {
			*value = v
		}
	}

	return result, nil
}

// RelativeComplement returns a new map containing the entries of m whose
// keys are absent from other (m \ other), per spec §4.7: clone self, then
// drop every entry whose key other also holds.
func (m *Map[K, V]) RelativeComplement(other *Map[K, V]) (*Map[K, V], error) {
	result, err := m.Clone()
	if err != nil {
		return nil, err
	}

	it := m.Iterator()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		if other.Contains(k) {
			result.Remove(k)
		}
	}

	return result, nil
}
