package main

import "math/rand"

// op identifies one of the four operation kinds a mix can draw from.
type op int

const (
	opRead op = iota
	opInsert
	opDelete
	opUpdate
)

// mix describes a workload as relative weights over the four op kinds.
// Weights need not sum to 100 (EXH below sums to 198); each mix is
// normalized against its own total, not against a shared scale.
type mix struct {
	name                         string
	read, insert, delete, update int
}

var mixes = []mix{
	{name: "RH", read: 98, insert: 1, delete: 1, update: 0},
	{name: "EX", read: 10, insert: 40, delete: 40, update: 10},
	{name: "EXH", read: 1, insert: 98, delete: 98, update: 1},
	{name: "RG", read: 5, insert: 80, delete: 5, update: 10},
}

// total is the sum of a mix's weights, used to normalize a draw.
func (m mix) total() int {
	return m.read + m.insert + m.delete + m.update
}

// pick draws a single op according to the mix's weights.
func (m mix) pick(rng *rand.Rand) op {
	n := rng.Intn(m.total())
	switch {
	case n < m.read:
		return opRead
	case n < m.read+m.insert:
		return opInsert
	case n < m.read+m.insert+m.delete:
		return opDelete
	default:
		return opUpdate
	}
}

// opSequence pre-generates n (op, key) pairs for a mix against a working
// set of the given size, so timed runs never pay for random-number
// generation inside the measured loop.
type opSequence struct {
	ops  []op
	keys []int
}

func generateSequence(m mix, n, workingSet int, rng *rand.Rand) opSequence {
	seq := opSequence{
		ops:  make([]op, n),
		keys: make([]int, n),
	}
	for i := 0; i < n; i++ {
		seq.ops[i] = m.pick(rng)
		seq.keys[i] = rng.Intn(workingSet)
	}
	return seq
}
