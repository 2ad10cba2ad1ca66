package detkit

import (
	"iter"

	"github.com/detkit/detkit/spindet"
)

// Spin is the operation set shared by every spin-determinant form. It is
// satisfied by *spindet.List, spindet.Bits and *spindet.Bitmap.
type Spin[S any] interface {
	Popcount() int
	Contains(orb uint32) bool
	Clone() S
	Xor(S) S
	And(S) S
	Or(S) S
	ExcDegree(S) int
	Holes(S) S
	Particles(S) S
}

// Determinant is a full Slater determinant: one spin determinant per spin
// channel. The two channels are independent values; every operation treats
// them separately.
type Determinant[S Spin[S]] struct {
	Alpha S
	Beta  S
}

// Electrons returns the total electron count across both channels.
func (d Determinant[S]) Electrons() int {
	return d.Alpha.Popcount() + d.Beta.Popcount()
}

// Clone returns a deep copy of both channels.
func (d Determinant[S]) Clone() Determinant[S] {
	return Determinant[S]{Alpha: d.Alpha.Clone(), Beta: d.Beta.Clone()}
}

// ExcDegree returns the excitation degree per spin channel. Each channel
// must hold the same electron count in d and o.
func (d Determinant[S]) ExcDegree(o Determinant[S]) (up, dn int) {
	return d.Alpha.ExcDegree(o.Alpha), d.Beta.ExcDegree(o.Beta)
}

// TotalExcDegree returns the number of orbital replacements separating d
// and o across both spin channels.
func (d Determinant[S]) TotalExcDegree(o Determinant[S]) int {
	up, dn := d.ExcDegree(o)
	return up + dn
}

// ListDeterminant is the sorted-list instantiation of Determinant, the
// form the excitation generators work on.
type ListDeterminant = Determinant[*spindet.List]

// Connected yields every determinant connected to d by at most a double
// excitation inside an active space of nOrb orbitals: all alpha and beta
// singles, all same-channel doubles, and the mixed alpha-single times
// beta-single block. d itself is not yielded.
func Connected(d ListDeterminant, nOrb uint32) iter.Seq[ListDeterminant] {
	return func(yield func(ListDeterminant) bool) {
		for a := range d.Alpha.Singles(nOrb) {
			if !yield(ListDeterminant{Alpha: a, Beta: d.Beta.Clone()}) {
				return
			}
		}
		for b := range d.Beta.Singles(nOrb) {
			if !yield(ListDeterminant{Alpha: d.Alpha.Clone(), Beta: b}) {
				return
			}
		}
		for a := range d.Alpha.Doubles(nOrb) {
			if !yield(ListDeterminant{Alpha: a, Beta: d.Beta.Clone()}) {
				return
			}
		}
		for b := range d.Beta.Doubles(nOrb) {
			if !yield(ListDeterminant{Alpha: d.Alpha.Clone(), Beta: b}) {
				return
			}
		}
		for a := range d.Alpha.Singles(nOrb) {
			for b := range d.Beta.Singles(nOrb) {
				if !yield(ListDeterminant{Alpha: a.Clone(), Beta: b}) {
					return
				}
			}
		}
	}
}
