package spindet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListValidation(t *testing.T) {
	l, err := NewList([]uint32{0, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Popcount())

	_, err = NewList([]uint32{1, 0})
	assert.ErrorIs(t, err, ErrNotSorted)

	_, err = NewList([]uint32{0, 0, 1})
	assert.ErrorIs(t, err, ErrNotSorted)

	empty, err := NewList(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Popcount())
}

func TestNewListCopiesInput(t *testing.T) {
	orbs := []uint32{0, 3}
	l, err := NewList(orbs)
	require.NoError(t, err)

	orbs[0] = 99
	assert.Equal(t, []uint32{0, 3}, l.Orbitals())
}

func TestListSetAlgebra(t *testing.T) {
	a := MustList(0, 1)
	b := MustList(0, 2)

	assert.Equal(t, []uint32{1, 2}, a.Xor(b).Orbitals())
	assert.Equal(t, []uint32{0}, a.And(b).Orbitals())
	assert.Equal(t, []uint32{0, 1, 2}, a.Or(b).Orbitals())
}

func TestListSelfAlgebra(t *testing.T) {
	a := MustList(0, 1)

	assert.Equal(t, 0, a.Xor(a).Popcount())
	assert.Equal(t, []uint32{0, 1}, a.And(a).Orbitals())
	assert.Equal(t, []uint32{0, 1}, a.Or(a).Orbitals())
}

func TestListDisjointAlgebra(t *testing.T) {
	a := MustList(0, 1)
	c := MustList(2, 3)

	assert.Equal(t, []uint32{0, 1, 2, 3}, a.Xor(c).Orbitals())
	assert.Equal(t, 0, a.And(c).Popcount())
	assert.Equal(t, []uint32{0, 1, 2, 3}, a.Or(c).Orbitals())
}

func TestListExcDegree(t *testing.T) {
	a := MustList(0, 1, 2, 3)
	b := MustList(0, 1, 2, 4)
	c := MustList(2, 3, 4, 5)

	assert.Equal(t, 0, a.ExcDegree(a))
	assert.Equal(t, 1, a.ExcDegree(b))
	assert.Equal(t, 2, a.ExcDegree(c))
	assert.Equal(t, a.ExcDegree(c), c.ExcDegree(a))
}

func TestListHolesParticles(t *testing.T) {
	a := MustList(0, 1, 2, 3)
	c := MustList(2, 3, 4, 5)

	holes := a.Holes(c)
	parts := a.Particles(c)
	assert.Equal(t, []uint32{0, 1}, holes.Orbitals())
	assert.Equal(t, []uint32{4, 5}, parts.Orbitals())

	// Symmetry: holes of a->c are the particles of c->a.
	assert.True(t, holes.Equal(c.Particles(a)))
	assert.Equal(t, a.ExcDegree(c), holes.Popcount())
	assert.Equal(t, a.ExcDegree(c), parts.Popcount())
}

func TestListContains(t *testing.T) {
	l := MustList(0, 4, 6)
	assert.True(t, l.Contains(4))
	assert.False(t, l.Contains(5))
	assert.False(t, l.Contains(100))
}

func TestListCloneIndependent(t *testing.T) {
	a := MustList(0, 2, 3)
	c := a.Clone()
	require.NoError(t, c.ApplySingle(2, 5))

	assert.Equal(t, []uint32{0, 2, 3}, a.Orbitals())
	assert.Equal(t, []uint32{0, 3, 5}, c.Orbitals())
}

func TestListBitsConversion(t *testing.T) {
	l := MustList(0, 2, 3, 5)
	b, err := l.Bits()
	require.NoError(t, err)
	assert.Equal(t, Bits(0b101101), b)
	assert.True(t, b.List().Equal(l))

	_, err = MustList(1, 64).Bits()
	assert.ErrorIs(t, err, ErrOrbitalRange)
}

func TestListBitmapConversion(t *testing.T) {
	l := MustList(0, 2, 100, 70000)
	m := l.Bitmap()
	assert.Equal(t, 4, m.Popcount())
	assert.True(t, m.List().Equal(l))
}
