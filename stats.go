package tombmap

// Stats is a read-only diagnostic snapshot, extending spec's bare
// count()/capacity() queries with the load and tombstone ratios a caller
// needs to decide whether to call ReduceMemory. Named and shaped after the
// teacher's Stats type (homier/stablemap/stats.go). EffectiveCapacity
// reports the 0.8 load ceiling rather than the teacher's 7/8; it is a
// diagnostic figure only, since the table grows once it is structurally
// full (see loadBreached), not at 0.8.
type Stats struct {
	Size                    int
	Tombstones              int
	Capacity                int
	EffectiveCapacity       int
	TombstonesCapacityRatio float32
	LoadFactor              float32
}

// Stats returns a snapshot of the map's current counters.
func (m *Map[K, V]) Stats() Stats {
	length := m.length()

	var tombstonesCapacityRatio, loadFactor float32
	if length > 0 {
		tombstonesCapacityRatio = float32(m.tombstones) / float32(length)
		loadFactor = float32(m.live) / float32(length)
	}

	return Stats{
		Size:                    int(m.live),
		Tombstones:              int(m.tombstones),
		Capacity:                int(length),
		EffectiveCapacity:       int(length * loadCeilingNum / loadCeilingDen),
		TombstonesCapacityRatio: tombstonesCapacityRatio,
		LoadFactor:              loadFactor,
	}
}
