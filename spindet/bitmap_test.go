package spindet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapSetAlgebra(t *testing.T) {
	a := NewBitmap(0, 1)
	b := NewBitmap(0, 2)

	assert.Equal(t, []uint32{1, 2}, a.Xor(b).Orbitals())
	assert.Equal(t, []uint32{0}, a.And(b).Orbitals())
	assert.Equal(t, []uint32{0, 1, 2}, a.Or(b).Orbitals())
	assert.Equal(t, 0, a.Xor(a).Popcount())

	// Inputs are left untouched.
	assert.Equal(t, []uint32{0, 1}, a.Orbitals())
	assert.Equal(t, []uint32{0, 2}, b.Orbitals())
}

func TestBitmapLargeOrbitals(t *testing.T) {
	// Beyond the 64-orbital cap of the word form.
	a := NewBitmap(0, 100, 5000, 1<<20)
	b := NewBitmap(0, 100, 7000, 1<<20)

	assert.Equal(t, 1, a.ExcDegree(b))
	assert.Equal(t, []uint32{5000}, a.Holes(b).Orbitals())
	assert.Equal(t, []uint32{7000}, a.Particles(b).Orbitals())
}

func TestBitmapApplySingle(t *testing.T) {
	a := NewBitmap(0, 2, 3, 6, 7, 8)

	require.NoError(t, a.ApplySingle(3, 4))
	assert.Equal(t, []uint32{0, 2, 4, 6, 7, 8}, a.Orbitals())

	require.NoError(t, a.ApplySingle(7, 1))
	assert.Equal(t, []uint32{0, 1, 2, 4, 6, 8}, a.Orbitals())

	var excErr *ExcitationError
	err := a.ApplySingle(1, 2) // particle occupied
	require.ErrorAs(t, err, &excErr)
	assert.Equal(t, []uint32{0, 1, 2, 4, 6, 8}, a.Orbitals())
}

func TestBitmapApplyDouble(t *testing.T) {
	a := NewBitmap(0, 1, 2, 3)

	require.NoError(t, a.ApplyDouble(2, 4, 3, 5))
	assert.Equal(t, []uint32{0, 1, 4, 5}, a.Orbitals())

	var excErr *ExcitationError
	err := a.ApplyDouble(4, 6, 9, 10) // second hole vacant
	require.ErrorAs(t, err, &excErr)
	assert.Equal(t, []uint32{0, 1, 4, 5}, a.Orbitals())
}

func TestBitmapPhaseSingle(t *testing.T) {
	assert.Equal(t, 1, NewBitmap(0, 4, 6).PhaseSingle(4, 5))
	assert.Equal(t, -1, NewBitmap(0, 1, 8).PhaseSingle(1, 17))
	assert.Equal(t, 1, NewBitmap(0, 1, 4, 8).PhaseSingle(1, 17))
	assert.Equal(t, -1, NewBitmap(0, 1, 4, 7, 8).PhaseSingle(1, 17))

	// Rank queries hold up across container boundaries.
	assert.Equal(t, -1, NewBitmap(10, 70000).PhaseSingle(10, 100000))
}

func TestBitmapPhaseDouble(t *testing.T) {
	v := NewBitmap(0, 1, 2, 3, 4, 5, 6, 7, 8)

	assert.Equal(t, 1, v.PhaseDouble(2, 11, 3, 12))
	assert.Equal(t, -1, v.PhaseDouble(2, 11, 8, 17))
}

func TestBitmapConversionsAndEquality(t *testing.T) {
	m := NewBitmap(3, 1, 2, 3) // unordered with duplicate: bitmap normalizes
	assert.Equal(t, []uint32{1, 2, 3}, m.Orbitals())
	assert.True(t, m.Equal(NewBitmap(1, 2, 3)))
	assert.True(t, m.List().Equal(MustList(1, 2, 3)))

	c := m.Clone()
	require.NoError(t, c.ApplySingle(1, 9))
	assert.False(t, c.Equal(m))
	assert.Equal(t, []uint32{1, 2, 3}, m.Orbitals())
}
