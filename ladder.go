package tombmap

// maxCapacityClass is the top index into ladder; growing past it is
// capacity-exhausted. The ladder is pinned at 41 entries per spec Design
// Notes, spanning lengths 8 .. 2^43 (see DESIGN.md "Open Questions
// resolved", item 1).
const maxCapacityClass = 40

// ladder is the fixed power-of-two capacity ladder. ladder[c] is the slot
// array length for capacity class c.
var ladder [maxCapacityClass + 1]uint64

func init() {
	for c := 0; c <= maxCapacityClass; c++ {
		ladder[c] = uint64(1) << uint(c+3)
	}
}

// loadCeilingNum/Den express the 0.8 load ceiling (I3) as an integer
// fraction. Stats().EffectiveCapacity reports this ceiling for diagnostic
// purposes; the grow trigger itself (loadBreached, below) uses the stronger
// "table is structurally full" condition, not this fraction directly — see
// DESIGN.md's grow-policy reconciliation note.
//
// shrinkThresholdNum/Den and shrinkTargetNum/Den express the 0.4 shrink
// threshold and 1.25 shrink target (§4.4) as integer fractions so the hot
// path never touches floating point.
const (
	loadCeilingNum = 4
	loadCeilingDen = 5

	shrinkThresholdNum = 2
	shrinkThresholdDen = 5

	shrinkTargetNum = 5
	shrinkTargetDen = 4
)

// classForLength returns the ladder index whose length equals the given
// slot count. The caller must pass a length that is actually on the ladder.
func classForLength(length uint64) int {
	class := 0
	for ladder[class] < length {
		class++
	}
	return class
}

// classForTarget returns the smallest class c such that ladder[c] >= target.
func classForTarget(target uint64) int {
	for c := 0; c <= maxCapacityClass; c++ {
		if ladder[c] >= target {
			return c
		}
	}
	return maxCapacityClass + 1 // signals capacity-exhausted to the caller
}

// loadBreached reports whether the table must grow before accepting one
// more live entry. The table is only ever grown once it is structurally
// full (live == length): every empty slot has already been claimed, so the
// next insert would otherwise have nowhere to land. This is stricter than
// the fractional 0.8 ceiling I3 describes in the abstract, but it is the
// reading §8's pinned boundary scenarios (B1, S5) actually require — both
// name an 8-slot class-0 table that accepts all 8 of its first inserts
// before growing on the 9th. A fractional pre-emptive ceiling can never
// satisfy that for length 8 (0.8*8 = 6.4, so it would always breach before
// the 8th insert, not after), so the ceiling is honored as "never let live
// exceed length", not as early slack. See DESIGN.md.
func loadBreached(live, length uint64) bool {
	return live >= length
}

// shrinkEligible reports whether live is low enough, relative to length,
// that reduceMemory should rebuild at a smaller class (I3/§4.4).
func shrinkEligible(live, length uint64) bool {
	return live*shrinkThresholdDen < length*shrinkThresholdNum
}

// shrinkTargetClass computes the smallest class whose length is >= 1.25 * live.
func shrinkTargetClass(live uint64) int {
	target := (live*shrinkTargetNum + shrinkTargetDen - 1) / shrinkTargetDen
	if target < ladder[0] {
		target = ladder[0]
	}
	return classForTarget(target)
}
