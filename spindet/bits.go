package spindet

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// wordBits is the orbital capacity of the Bits form.
const wordBits = 64

// Bits is a spin determinant stored as a single 64-bit word: bit k is set
// iff orbital k is occupied. Valid for active spaces of at most 64
// orbitals; use List or Bitmap beyond that.
type Bits uint64

// NewBits wraps an occupation word.
func NewBits(w uint64) Bits { return Bits(w) }

// Popcount returns the number of occupied orbitals.
func (b Bits) Popcount() int { return bits.OnesCount64(uint64(b)) }

// Contains reports whether orbital o is occupied. Orbitals beyond the word
// are vacant by definition.
func (b Bits) Contains(o uint32) bool {
	return o < wordBits && b&(1<<o) != 0
}

// Clone returns b; the word form has value semantics.
func (b Bits) Clone() Bits { return b }

// Equal reports whether both words occupy the same orbitals.
func (b Bits) Equal(o Bits) bool { return b == o }

func (b Bits) String() string { return fmt.Sprintf("%#x", uint64(b)) }

// Xor returns the symmetric difference.
func (b Bits) Xor(o Bits) Bits { return b ^ o }

// And returns the intersection.
func (b Bits) And(o Bits) Bits { return b & o }

// Or returns the union.
func (b Bits) Or(o Bits) Bits { return b | o }

// ExcDegree returns the excitation degree between b and o.
func (b Bits) ExcDegree(o Bits) int { return (b ^ o).Popcount() / 2 }

// Holes returns the orbitals occupied in b but not in o.
func (b Bits) Holes(o Bits) Bits { return b & (b ^ o) }

// Particles returns the orbitals occupied in o but not in b.
func (b Bits) Particles(o Bits) Bits { return o & (b ^ o) }

// ApplySingle applies the single-excitation operator a†_p a_h in place.
func (b *Bits) ApplySingle(h, p uint32) error {
	if h >= wordBits || p >= wordBits {
		return fmt.Errorf("%w: excitation %d -> %d on word form", ErrOrbitalRange, h, p)
	}
	if err := checkSingle(*b, h, p); err != nil {
		return err
	}
	*b = *b&^(1<<h) | 1<<p
	return nil
}

// ApplyDouble applies both legs of a double excitation in place, leaving b
// untouched on a precondition failure.
func (b *Bits) ApplyDouble(h1, p1, h2, p2 uint32) error {
	if h2 >= wordBits || p2 >= wordBits {
		return fmt.Errorf("%w: excitation %d -> %d on word form", ErrOrbitalRange, h2, p2)
	}
	if h1 >= wordBits || p1 >= wordBits {
		return fmt.Errorf("%w: excitation %d -> %d on word form", ErrOrbitalRange, h1, p1)
	}
	if err := checkDouble(*b, h1, p1, h2, p2); err != nil {
		return err
	}
	*b = *b&^(1<<h1) | 1<<p1
	*b = *b&^(1<<h2) | 1<<p2
	return nil
}

// PhaseSingle returns the fermionic phase of the excitation h -> p against
// the current occupation. Both orbitals must be below 64.
func (b Bits) PhaseSingle(h, p uint32) int {
	lo, hi := minmax(h, p)
	return parity(bits.OnesCount64(uint64(b) & betweenMask(lo, hi)))
}

// PhaseDouble returns the fermionic phase of the double excitation
// (h1 -> p1, h2 -> p2) with both legs counted against the original word.
func (b Bits) PhaseDouble(h1, p1, h2, p2 uint32) int {
	return crossPhase(h1, p1, h2, p2) * b.PhaseSingle(h1, p1) * b.PhaseSingle(h2, p2)
}

// betweenMask covers the bits strictly inside (lo, hi), lo < hi < 64.
func betweenMask(lo, hi uint32) uint64 {
	if hi-lo < 2 {
		return 0
	}
	return (uint64(1)<<hi - 1) &^ (uint64(1)<<(lo+1) - 1)
}

// Orbitals returns the occupied orbital indices in ascending order.
func (b Bits) Orbitals() []uint32 {
	orb := make([]uint32, 0, b.Popcount())
	for w := uint64(b); w != 0; w &= w - 1 {
		orb = append(orb, uint32(bits.TrailingZeros64(w)))
	}
	return orb
}

// List converts to the sorted-list form.
func (b Bits) List() *List {
	return &List{orb: b.Orbitals()}
}

// Bitmap converts to the compressed bitmap form.
func (b Bits) Bitmap() *Bitmap {
	rb := roaring.New()
	for w := uint64(b); w != 0; w &= w - 1 {
		rb.Add(uint32(bits.TrailingZeros64(w)))
	}
	return &Bitmap{rb: rb}
}
