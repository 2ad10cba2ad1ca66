package spindet

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/detkit/detkit/internal/orbset"
)

// List is a spin determinant stored as a strictly ascending slice of
// occupied orbital indices. The universe of orbitals is unbounded.
//
// A List owns its backing slice. Values returned by combinators are new
// allocations; the excitation operators mutate in place and are the only
// mutators.
type List struct {
	orb []uint32
}

// NewList builds a determinant from the given occupied orbitals. The input
// must already be strictly ascending (and therefore free of duplicates);
// it is validated in O(n) and copied. ErrNotSorted is returned otherwise.
func NewList(orbs []uint32) (*List, error) {
	if !orbset.IsAscending(orbs) {
		return nil, fmt.Errorf("%w: %v", ErrNotSorted, orbs)
	}
	return &List{orb: slices.Clone(orbs)}, nil
}

// MustList is like NewList but panics on invalid input. Intended for
// literals in tests and examples.
func MustList(orbs ...uint32) *List {
	l, err := NewList(orbs)
	if err != nil {
		panic(err)
	}
	return l
}

// Popcount returns the number of occupied orbitals.
func (l *List) Popcount() int { return len(l.orb) }

// Contains reports whether orbital o is occupied.
func (l *List) Contains(o uint32) bool { return orbset.Contains(l.orb, o) }

// Orbitals returns a copy of the occupied orbital indices in ascending
// order.
func (l *List) Orbitals() []uint32 { return slices.Clone(l.orb) }

// Clone returns a deep copy.
func (l *List) Clone() *List { return &List{orb: slices.Clone(l.orb)} }

// Equal reports whether both determinants occupy the same orbitals.
func (l *List) Equal(o *List) bool { return slices.Equal(l.orb, o.orb) }

func (l *List) String() string { return fmt.Sprintf("%v", l.orb) }

// Xor returns the symmetric difference of the two determinants.
func (l *List) Xor(o *List) *List {
	return &List{orb: orbset.Xor(make([]uint32, 0, len(l.orb)+len(o.orb)), l.orb, o.orb)}
}

// And returns the intersection of the two determinants.
func (l *List) And(o *List) *List {
	return &List{orb: orbset.And(make([]uint32, 0, min(len(l.orb), len(o.orb))), l.orb, o.orb)}
}

// Or returns the union of the two determinants.
func (l *List) Or(o *List) *List {
	return &List{orb: orbset.Or(make([]uint32, 0, len(l.orb)+len(o.orb)), l.orb, o.orb)}
}

// ExcDegree returns the excitation degree between l and o, the number of
// orbital replacements separating the two. Both determinants must hold the
// same electron count for the degree to be meaningful.
func (l *List) ExcDegree(o *List) int {
	i, j, n := 0, 0, 0
	for i < len(l.orb) && j < len(o.orb) {
		switch {
		case l.orb[i] < o.orb[j]:
			i++
			n++
		case o.orb[j] < l.orb[i]:
			j++
			n++
		default:
			i++
			j++
		}
	}
	n += len(l.orb) - i + len(o.orb) - j
	return n / 2
}

// Holes returns the orbitals occupied in l but not in o: the holes of the
// excitation l -> o.
func (l *List) Holes(o *List) *List { return l.And(l.Xor(o)) }

// Particles returns the orbitals occupied in o but not in l: the particles
// of the excitation l -> o.
func (l *List) Particles(o *List) *List { return o.And(l.Xor(o)) }

// Bits converts to the 64-bit word form. ErrOrbitalRange is returned if any
// occupied orbital is above 63.
func (l *List) Bits() (Bits, error) {
	var w uint64
	for _, o := range l.orb {
		if o >= wordBits {
			return 0, fmt.Errorf("%w: orbital %d", ErrOrbitalRange, o)
		}
		w |= 1 << o
	}
	return Bits(w), nil
}

// Bitmap converts to the compressed bitmap form.
func (l *List) Bitmap() *Bitmap {
	return &Bitmap{rb: roaring.BitmapOf(l.orb...)}
}
