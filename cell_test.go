package ibf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellInsertRemoveReversibility(t *testing.T) {
	var c cell
	c.insert(42)
	require.False(t, c.isZero())

	c.remove(42, c.count)
	assert.True(t, c.isZero(), "inserting then removing the same element must restore the zero cell")
}

func TestCellSubtractIsInverseOfUnion(t *testing.T) {
	var a, b cell
	a.insert(1)
	a.insert(2)
	b.insert(2)

	a.subtract(b)
	assert.Equal(t, int32(1), a.count)
	assert.Equal(t, uint64(1), a.idSum)
}

func TestCellPurity(t *testing.T) {
	var c cell
	assert.False(t, c.isPure(), "zero cell is not pure")

	c.insert(7)
	assert.True(t, c.isPure())

	c.insert(8)
	assert.False(t, c.isPure(), "two contributions is not pure")
}

func TestCellJSONRoundTrip(t *testing.T) {
	c := cell{count: -3, idSum: 0xdeadbeef, hashSum: 123}
	data, err := c.MarshalJSON()
	require.NoError(t, err)

	var out cell
	require.NoError(t, out.UnmarshalJSON(data))
	assert.Equal(t, c, out)
}
