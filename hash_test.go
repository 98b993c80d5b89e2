package tombmap

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc_DeterministicPerSeed(t *testing.T) {
	seed := maphash.MakeSeed()
	f := MakeDefaultHashFunc[string](seed)

	require.Equal(t, f("hello"), f("hello"))
	require.Equal(t, maphash.Comparable(seed, "hello"), f("hello"))
}

func TestMakeDefaultHashFunc_DifferentKeysUsuallyDiffer(t *testing.T) {
	seed := maphash.MakeSeed()
	f := MakeDefaultHashFunc[string](seed)

	require.NotEqual(t, f("alpha"), f("beta"))
}

func TestDefaultStringHashFunc_Deterministic(t *testing.T) {
	f := DefaultStringHashFunc(12345)

	require.Equal(t, f("hello"), f("hello"))
	require.NotEqual(t, f("hello"), f("world"))
}

func TestDefaultStringHashFunc_SeedChangesOutput(t *testing.T) {
	a := DefaultStringHashFunc(1)
	b := DefaultStringHashFunc(2)

	require.NotEqual(t, a("same input"), b("same input"))
}

func TestGoldenRatioMix_Avalanche(t *testing.T) {
	a := goldenRatioMix(0)
	b := goldenRatioMix(1)

	require.NotEqual(t, a, b)
}
