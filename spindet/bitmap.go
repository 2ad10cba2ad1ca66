package spindet

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a spin determinant stored as a compressed roaring bitmap. It
// carries the same operation set as Bits without the 64-orbital cap, at the
// cost of heavier element access. Use it for large active spaces.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap builds a determinant occupying the given orbitals. The bitmap
// is an inherently ordered set, so the input may arrive in any order and
// duplicates collapse.
func NewBitmap(orbs ...uint32) *Bitmap {
	return &Bitmap{rb: roaring.BitmapOf(orbs...)}
}

// Popcount returns the number of occupied orbitals.
func (m *Bitmap) Popcount() int { return int(m.rb.GetCardinality()) }

// Contains reports whether orbital o is occupied.
func (m *Bitmap) Contains(o uint32) bool { return m.rb.Contains(o) }

// Clone returns a deep copy.
func (m *Bitmap) Clone() *Bitmap { return &Bitmap{rb: m.rb.Clone()} }

// Equal reports whether both determinants occupy the same orbitals.
func (m *Bitmap) Equal(o *Bitmap) bool { return m.rb.Equals(o.rb) }

func (m *Bitmap) String() string { return m.rb.String() }

// Xor returns the symmetric difference.
func (m *Bitmap) Xor(o *Bitmap) *Bitmap {
	c := m.rb.Clone()
	c.Xor(o.rb)
	return &Bitmap{rb: c}
}

// And returns the intersection.
func (m *Bitmap) And(o *Bitmap) *Bitmap {
	c := m.rb.Clone()
	c.And(o.rb)
	return &Bitmap{rb: c}
}

// Or returns the union.
func (m *Bitmap) Or(o *Bitmap) *Bitmap {
	c := m.rb.Clone()
	c.Or(o.rb)
	return &Bitmap{rb: c}
}

// ExcDegree returns the excitation degree between m and o.
func (m *Bitmap) ExcDegree(o *Bitmap) int { return m.Xor(o).Popcount() / 2 }

// Holes returns the orbitals occupied in m but not in o.
func (m *Bitmap) Holes(o *Bitmap) *Bitmap {
	c := m.rb.Clone()
	c.AndNot(o.rb)
	return &Bitmap{rb: c}
}

// Particles returns the orbitals occupied in o but not in m.
func (m *Bitmap) Particles(o *Bitmap) *Bitmap {
	c := o.rb.Clone()
	c.AndNot(m.rb)
	return &Bitmap{rb: c}
}

// ApplySingle applies the single-excitation operator a†_p a_h in place.
func (m *Bitmap) ApplySingle(h, p uint32) error {
	if err := checkSingle(m, h, p); err != nil {
		return err
	}
	m.rb.Remove(h)
	m.rb.Add(p)
	return nil
}

// ApplyDouble applies both legs of a double excitation in place, leaving m
// untouched on a precondition failure.
func (m *Bitmap) ApplyDouble(h1, p1, h2, p2 uint32) error {
	if err := checkDouble(m, h1, p1, h2, p2); err != nil {
		return err
	}
	m.rb.Remove(h1)
	m.rb.Add(p1)
	m.rb.Remove(h2)
	m.rb.Add(p2)
	return nil
}

// PhaseSingle returns the fermionic phase of the excitation h -> p against
// the current occupation, via two rank queries.
func (m *Bitmap) PhaseSingle(h, p uint32) int {
	lo, hi := minmax(h, p)
	// Elements strictly inside (lo, hi): rank is inclusive of its argument.
	between := int(m.rb.Rank(hi-1)) - int(m.rb.Rank(lo))
	return parity(between)
}

// PhaseDouble returns the fermionic phase of the double excitation
// (h1 -> p1, h2 -> p2) with both legs counted against the original bitmap.
func (m *Bitmap) PhaseDouble(h1, p1, h2, p2 uint32) int {
	return crossPhase(h1, p1, h2, p2) * m.PhaseSingle(h1, p1) * m.PhaseSingle(h2, p2)
}

// Orbitals returns the occupied orbital indices in ascending order.
func (m *Bitmap) Orbitals() []uint32 { return m.rb.ToArray() }

// List converts to the sorted-list form.
func (m *Bitmap) List() *List { return &List{orb: m.rb.ToArray()} }
