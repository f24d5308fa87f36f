package ibf

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecoversEncodedSet(t *testing.T) {
	f, err := NewDefault(10, 3) // n = 15
	require.NoError(t, err)
	require.NoError(t, f.Encode([]uint64{5, 10, 15}))

	result, err := f.Decode()
	require.NoError(t, err)
	require.True(t, result.Decoded)

	sort.Slice(result.InB, func(i, j int) bool { return result.InB[i] < result.InB[j] })
	assert.Equal(t, []uint64{5, 10, 15}, result.InB)
	assert.Empty(t, result.InA)
}

func TestDecodeAfterSubtraction(t *testing.T) {
	a, err := NewDefault(10, 3)
	require.NoError(t, err)
	b, err := NewDefault(10, 3)
	require.NoError(t, err)
	r, err := NewDefault(10, 3)
	require.NoError(t, err)

	setA := []uint64{54, 99, 51, 95, 35, 86, 73, 41, 3, 33, 61, 19, 87, 93, 83}
	setB := []uint64{54, 99, 12, 95, 35, 4, 73, 41, 21, 33, 61, 19, 6, 93}
	require.NoError(t, a.Encode(setA))
	require.NoError(t, b.Encode(setB))

	require.NoError(t, a.Subtract(b, r))

	result, err := r.Decode()
	require.NoError(t, err)
	require.True(t, result.Decoded)

	sort.Slice(result.InB, func(i, j int) bool { return result.InB[i] < result.InB[j] })
	sort.Slice(result.InA, func(i, j int) bool { return result.InA[i] < result.InA[j] })

	assert.Equal(t, []uint64{3, 51, 83, 86, 87}, result.InB)
	assert.Equal(t, []uint64{4, 6, 12, 21}, result.InA)
}

func TestDecodeCapacityExceededReturnsFalse(t *testing.T) {
	a, err := NewDefault(10, 3) // n = 15
	require.NoError(t, err)
	b, err := NewDefault(10, 3)
	require.NoError(t, err)
	r, err := NewDefault(10, 3)
	require.NoError(t, err)

	setA := make([]uint64, 50)
	setB := make([]uint64, 50)
	for i := range setA {
		setA[i] = uint64(i)
		setB[i] = uint64(1000 + i)
	}
	require.NoError(t, a.Encode(setA))
	require.NoError(t, b.Encode(setB))
	require.NoError(t, a.Subtract(b, r))

	result, err := r.Decode()
	require.NoError(t, err)
	assert.False(t, result.Decoded, "symmetric difference of 100 elements must exceed n=15's capacity")
}

func TestDecodeIsDestructive(t *testing.T) {
	f, err := NewDefault(10, 3)
	require.NoError(t, err)
	require.NoError(t, f.Encode([]uint64{5, 10, 15}))

	_, err = f.Decode()
	require.NoError(t, err)

	for _, c := range f.table {
		assert.True(t, c.isZero(), "a fully decoded filter must be left at the zero table")
	}
}
