package tombmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc computes a deterministic-per-process 64-bit hash of a key.
// Spec §1 fixes a non-cryptographic, 64-bit, seeded algorithm for its
// correctness analysis but leaves the exact mixer interchangeable; this is
// exposed as a plain function type so callers can swap it via WithHashFunc.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns the default hasher: maphash.Comparable over
// a process-local seed. This is the same approach the teacher
// (homier/stablemap) uses and matches spec's "deterministic per process"
// requirement without requiring K to implement any interface.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// goldenRatioMix is the SplitMix64-style finisher used by
// schraf/collections' FixedBlockKey.FromString to spread bits from a
// 64-bit hash across the full word before use. 0x9e3779b97f4a7c15 is the
// 64-bit golden ratio constant that source uses.
func goldenRatioMix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0x9e3779b97f4a7c15
	h ^= h >> 33
	return h
}

// DefaultStringHashFunc returns an xxHash-backed HashFunc[string], seeded
// so that two processes (or two maps in the same process) do not share a
// hash unless they share a seed. Grounded on
// schraf/collections.FixedBlockKey.FromString, which hashes with xxhash
// and then runs the same golden-ratio mixer for extra avalanche.
func DefaultStringHashFunc(seed uint64) HashFunc[string] {
	return func(s string) uint64 {
		h := xxhash.Sum64String(s) ^ seed
		return goldenRatioMix(h)
	}
}
