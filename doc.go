// Package tombmap implements a generic, single-threaded, open-addressed
// associative container. Entries live in a single contiguous slot array
// addressed by linear probing; the table rebuilds itself both on load and
// on tombstone saturation, which keeps probe chains short under workloads
// that churn through inserts and removals.
//
// The public surface is Map[K, V], its Iterator, and four set-algebra
// combinators (Union, Intersection, SymmetricDifference, RelativeComplement)
// layered on top of the map protocol.
package tombmap
