package tombmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoAllocator_AllocateZeroValued(t *testing.T) {
	var alloc goAllocator[string, int]

	tags, entries, err := alloc.Allocate(4)
	require.NoError(t, err)
	require.Len(t, tags, 4)
	require.Len(t, entries, 4)

	for _, tag := range tags {
		require.Equal(t, tagEmpty, tag)
	}
	for _, e := range entries {
		require.Equal(t, entry[string, int]{}, e)
	}
}

func TestGoAllocator_ReleaseIsNoop(t *testing.T) {
	var alloc goAllocator[int, int]
	tags, entries, err := alloc.Allocate(2)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		alloc.Release(tags, entries)
	})
}
