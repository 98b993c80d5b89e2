package tombmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func mapFromRunes(t *testing.T, s string) *Map[rune, bool] {
	t.Helper()
	m, err := New[rune, bool]()
	require.NoError(t, err)
	for _, r := range s {
		require.NoError(t, m.Put(r, true))
	}
	return m
}

func runeKeys(t *testing.T, m *Map[rune, bool]) string {
	t.Helper()
	var keys []rune
	it := m.Iterator()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return string(keys)
}

// Scenario S4: A = {0-9, A, B} (12 elements), B = {4-9, A-J} (16 elements).
func TestCombinators_ScenarioS4(t *testing.T) {
	a := mapFromRunes(t, "0123456789AB")
	b := mapFromRunes(t, "456789ABCDEFGHIJ")

	union, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, "0123456789ABCDEFGHIJ", runeKeys(t, union))

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	require.Equal(t, "456789AB", runeKeys(t, inter))

	symDiff, err := a.SymmetricDifference(b)
	require.NoError(t, err)
	require.Equal(t, "0123CDEFGHIJ", runeKeys(t, symDiff))

	complement, err := a.RelativeComplement(b)
	require.NoError(t, err)
	require.Equal(t, "0123", runeKeys(t, complement))
}

func TestUnion_DisjointSetsKeepsBothSides(t *testing.T) {
	a := mapFromRunes(t, "abc")
	b := mapFromRunes(t, "xyz")

	u, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, 6, u.Count())
	require.Equal(t, "abcxyz", runeKeys(t, u))
}

func TestUnion_DuplicateKeyValueComesFromSmallerSide(t *testing.T) {
	// Documented bias: the clone is made from the larger side, then the
	// smaller side's entries are Put in, so the smaller side wins ties.
	larger, err := New[string, int]()
	require.NoError(t, err)
	require.NoError(t, larger.Put("a", 1))
	require.NoError(t, larger.Put("b", 2))
	require.NoError(t, larger.Put("c", 3))

	smaller, err := New[string, int]()
	require.NoError(t, err)
	require.NoError(t, smaller.Put("a", 999))

	u, err := larger.Union(smaller)
	require.NoError(t, err)
	v, ok := u.Get("a")
	require.True(t, ok)
	require.Equal(t, 999, v)
	require.Equal(t, 3, u.Count())
}

func TestIntersection_NoOverlapIsEmpty(t *testing.T) {
	a := mapFromRunes(t, "abc")
	b := mapFromRunes(t, "xyz")

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	require.Equal(t, 0, inter.Count())
}

func TestIntersection_IdenticalSetsReturnsSameElements(t *testing.T) {
	a := mapFromRunes(t, "abc")
	b := mapFromRunes(t, "abc")

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	require.Equal(t, "abc", runeKeys(t, inter))
}

func TestSymmetricDifference_IsCommutative(t *testing.T) {
	a := mapFromRunes(t, "0123456789AB")
	b := mapFromRunes(t, "456789ABCDEFGHIJ")

	ab, err := a.SymmetricDifference(b)
	require.NoError(t, err)
	ba, err := b.SymmetricDifference(a)
	require.NoError(t, err)

	require.Equal(t, runeKeys(t, ab), runeKeys(t, ba))
}

func TestRelativeComplement_IsNotCommutative(t *testing.T) {
	a := mapFromRunes(t, "0123456789AB")
	b := mapFromRunes(t, "456789ABCDEFGHIJ")

	aMinusB, err := a.RelativeComplement(b)
	require.NoError(t, err)
	bMinusA, err := b.RelativeComplement(a)
	require.NoError(t, err)

	require.Equal(t, "0123", runeKeys(t, aMinusB))
	require.Equal(t, "CDEFGHIJ", runeKeys(t, bMinusA))
}

func TestRelativeComplement_EmptyOtherReturnsCopyOfSelf(t *testing.T) {
	a := mapFromRunes(t, "abc")
	empty, err := New[rune, bool]()
	require.NoError(t, err)

	result, err := a.RelativeComplement(empty)
	require.NoError(t, err)
	require.Equal(t, "abc", runeKeys(t, result))
}

func TestCombinators_ResultIsIndependentOfOperands(t *testing.T) {
	a := mapFromRunes(t, "abc")
	b := mapFromRunes(t, "bcd")

	u, err := a.Union(b)
	require.NoError(t, err)

	require.NoError(t, u.Put('z', true))
	require.False(t, a.Contains('z'))
	require.False(t, b.Contains('z'))
}
