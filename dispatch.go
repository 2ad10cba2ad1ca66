package detkit

import (
	"fmt"

	"github.com/detkit/detkit/spindet"
)

// Kind tags the representation of a determinant behind a handle. The tag
// space is closed; adding a representation means adding one branch per
// combinator below.
type Kind uint8

const (
	// KindInvalid is the zero Kind and never tags a live determinant.
	KindInvalid Kind = iota

	// KindBits selects the 64-bit word form (spindet.Bits).
	KindBits

	// KindList selects the sorted-list form (spindet.List).
	KindList

	// KindBitmap selects the compressed bitmap form (spindet.Bitmap).
	KindBitmap
)

func (k Kind) String() string {
	switch k {
	case KindBits:
		return "bits"
	case KindList:
		return "list"
	case KindBitmap:
		return "bitmap"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(k))
	}
}

// newDet constructs a determinant of the given kind occupying orbs.
func newDet(kind Kind, orbs []uint32) (any, error) {
	switch kind {
	case KindBits:
		var w spindet.Bits
		for _, o := range orbs {
			if o >= 64 {
				return nil, fmt.Errorf("%w: orbital %d", spindet.ErrOrbitalRange, o)
			}
			w |= 1 << o
		}
		return &w, nil
	case KindList:
		return spindet.NewList(orbs)
	case KindBitmap:
		return spindet.NewBitmap(orbs...), nil
	default:
		return nil, &ErrInvalidKind{Kind: kind}
	}
}

// combineOp enumerates the binary combinators routed through combine.
type combineOp uint8

const (
	opXor combineOp = iota
	opAnd
	opOr
	opHoles
	opParticles
)

func (op combineOp) String() string {
	switch op {
	case opXor:
		return "xor"
	case opAnd:
		return "and"
	case opOr:
		return "or"
	case opHoles:
		return "holes"
	case opParticles:
		return "particles"
	default:
		return "unknown"
	}
}

// combine pattern-matches one code path per representation. Callers
// guarantee a and b carry the same kind.
func combine(op combineOp, a, b any) any {
	switch av := a.(type) {
	case *spindet.Bits:
		r := combineBits(op, *av, *b.(*spindet.Bits))
		return &r
	case *spindet.List:
		return combineList(op, av, b.(*spindet.List))
	case *spindet.Bitmap:
		return combineBitmap(op, av, b.(*spindet.Bitmap))
	default:
		return nil
	}
}

func combineBits(op combineOp, a, b spindet.Bits) spindet.Bits {
	switch op {
	case opXor:
		return a.Xor(b)
	case opAnd:
		return a.And(b)
	case opOr:
		return a.Or(b)
	case opHoles:
		return a.Holes(b)
	default:
		return a.Particles(b)
	}
}

func combineList(op combineOp, a, b *spindet.List) *spindet.List {
	switch op {
	case opXor:
		return a.Xor(b)
	case opAnd:
		return a.And(b)
	case opOr:
		return a.Or(b)
	case opHoles:
		return a.Holes(b)
	default:
		return a.Particles(b)
	}
}

func combineBitmap(op combineOp, a, b *spindet.Bitmap) *spindet.Bitmap {
	switch op {
	case opXor:
		return a.Xor(b)
	case opAnd:
		return a.And(b)
	case opOr:
		return a.Or(b)
	case opHoles:
		return a.Holes(b)
	default:
		return a.Particles(b)
	}
}

// excDegree routes the degree query, again one branch per representation.
func excDegree(a, b any) int {
	switch av := a.(type) {
	case *spindet.Bits:
		return av.ExcDegree(*b.(*spindet.Bits))
	case *spindet.List:
		return av.ExcDegree(b.(*spindet.List))
	case *spindet.Bitmap:
		return av.ExcDegree(b.(*spindet.Bitmap))
	default:
		return 0
	}
}

// exciter is the uniform mutation and phase surface; every form implements
// it (Bits via its pointer receiver).
type exciter interface {
	Popcount() int
	ApplySingle(h, p uint32) error
	ApplyDouble(h1, p1, h2, p2 uint32) error
	PhaseSingle(h, p uint32) int
	PhaseDouble(h1, p1, h2, p2 uint32) int
	Orbitals() []uint32
}
