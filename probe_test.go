package tombmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindOrInsertSlot_EmptyTableInsertsAtHome(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	idx, found := findOrInsertSlot(s, 3, 3)
	require.False(t, found)
	require.Equal(t, uint64(3), idx)
}

func TestFindOrInsertSlot_PrefersFirstTombstoneOverLaterEmpty(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	// home index 1: mark it a tombstone, leave 2 and 3 empty.
	s.tags[1] = tagTombstone

	idx, found := findOrInsertSlot(s, 1, 99)
	require.False(t, found)
	require.Equal(t, uint64(1), idx, "first tombstone on the chain should be reused")
}

func TestFindOrInsertSlot_FindsExistingKey(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	s.tags[1] = tagLive
	s.entries[1] = entry[int, int]{key: 42, value: 1}

	idx, found := findOrInsertSlot(s, 1, 42)
	require.True(t, found)
	require.Equal(t, uint64(1), idx)
}

func TestFindOrInsertSlot_WalksPastTombstoneToFindLiveMatch(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	s.tags[0] = tagTombstone
	s.tags[1] = tagLive
	s.entries[1] = entry[int, int]{key: 7, value: 1}

	idx, found := findOrInsertSlot(s, 0, 7)
	require.True(t, found)
	require.Equal(t, uint64(1), idx)
}

func TestFindSlot_StopsAtEmptyWithoutInsertionSite(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	_, found := findSlot(s, 5, 123)
	require.False(t, found)
}

func TestFindSlot_DoesNotTerminateOnTombstone(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	s.tags[2] = tagTombstone
	s.tags[3] = tagLive
	s.entries[3] = entry[int, int]{key: 55, value: 9}

	idx, found := findSlot(s, 2, 55)
	require.True(t, found)
	require.Equal(t, uint64(3), idx)
}

func TestInsertOnly_FillsFirstEmptySlotOnChain(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 8)
	require.NoError(t, err)

	ok := insertOnly(s, 4, 10, 100)
	require.True(t, ok)
	require.Equal(t, tagLive, s.tags[4])
	require.Equal(t, entry[int, int]{key: 10, value: 100}, s.entries[4])
}

func TestInsertOnly_ReturnsFalseWhenFull(t *testing.T) {
	s, err := newSlotArray[int, int](goAllocator[int, int]{}, 2)
	require.NoError(t, err)

	require.True(t, insertOnly(s, 0, 1, 1))
	require.True(t, insertOnly(s, 0, 2, 2))

	require.False(t, insertOnly(s, 0, 3, 3))
}
