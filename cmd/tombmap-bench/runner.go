package main

import (
	"time"

	"github.com/arlen-kade/tombmap"
)

// result holds one implementation's measurement for one mix.
type result struct {
	impl      string
	mixName   string
	elapsed   time.Duration
	opsPerSec float64
}

func newResult(impl, mixName string, n int, elapsed time.Duration) result {
	return result{
		impl:      impl,
		mixName:   mixName,
		elapsed:   elapsed,
		opsPerSec: float64(n) / elapsed.Seconds(),
	}
}

// runTombmap executes seq against a freshly seeded tombmap.Map and returns
// the wall-clock duration. The map is pre-sized to the working set so the
// timed region measures the mix, not a string of grow-rebuilds.
func runTombmap(seq opSequence, workingSet int) (time.Duration, error) {
	m, err := tombmap.NewWithCapacity[int, int](workingSet)
	if err != nil {
		return 0, err
	}

	for i := 0; i < workingSet/2; i++ {
		if err := m.Put(i, i); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	for i, o := range seq.ops {
		key := seq.keys[i]
		switch o {
		case opRead:
			m.Get(key)
		case opInsert:
			if err := m.Put(key, key); err != nil {
				return 0, err
			}
		case opDelete:
			m.Remove(key)
		case opUpdate:
			m.Update(key, key+1)
		}
	}
	return time.Since(start), nil
}

// runBuiltin executes seq against a plain Go map with the same seeding.
func runBuiltin(seq opSequence, workingSet int) time.Duration {
	m := make(map[int]int, workingSet)
	for i := 0; i < workingSet/2; i++ {
		m[i] = i
	}

	start := time.Now()
	for i, o := range seq.ops {
		key := seq.keys[i]
		switch o {
		case opRead:
			_ = m[key]
		case opInsert:
			m[key] = key
		case opDelete:
			delete(m, key)
		case opUpdate:
			if _, ok := m[key]; ok {
				m[key] = key + 1
			}
		}
	}
	return time.Since(start)
}
