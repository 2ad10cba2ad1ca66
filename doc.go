// Package detkit provides Slater spin-determinant kernels for
// configuration-interaction style codes in Go.
//
// A spin determinant enumerates the occupied spin-orbitals of one spin
// channel. Package spindet carries three interchangeable forms (64-bit
// word, sorted list, compressed bitmap) with set algebra, excitation
// degree, hole/particle extraction, in-place single and double excitation
// operators, and fermionic phases.
//
// # Quick Start
//
//	a := spindet.MustList(0, 2, 3, 6, 7, 8)
//	b := a.Clone()
//	_ = b.ApplySingle(3, 4)            // a†_4 a_3, order preserved in O(n)
//	ed := a.ExcDegree(b)               // 1
//	phase := a.PhaseSingle(3, 4)       // +1
//
// Full determinants pair one spin determinant per channel:
//
//	d := detkit.Determinant[*spindet.List]{
//	    Alpha: spindet.MustList(0, 1),
//	    Beta:  spindet.MustList(0, 1),
//	}
//	up, dn := d.ExcDegree(other)
//
// # Dispatch Table
//
// Language bindings address determinants through a Table, a kind-tagged
// handle registry with a flat create/destroy/op surface:
//
//	t := detkit.NewTable()
//	a, _ := t.Create(detkit.KindList, []uint32{0, 1})
//	b, _ := t.Create(detkit.KindList, []uint32{0, 2})
//	out, _ := t.Create(detkit.KindList, nil)
//	_ = t.Xor(a, b, out)               // out now holds {1, 2}
//
// The core is synchronous and allocation-light: combinators are pure
// functions of their inputs, excitation operators are the only mutators,
// and distinct determinants may be driven from distinct goroutines with no
// shared state in the library.
package detkit
