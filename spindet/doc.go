// Package spindet implements single-spin Slater determinants: the set of
// occupied spin-orbitals for one spin channel, indexed by non-negative
// integers.
//
// Three interchangeable forms are provided:
//
//   - Bits: a 64-bit machine word, bit k set iff orbital k is occupied.
//     The fastest form for active spaces of at most 64 orbitals.
//   - List: a strictly ascending slice of orbital indices. Unbounded
//     universe, cache-friendly merge-scan set algebra.
//   - Bitmap: a compressed roaring bitmap for large active spaces that
//     outgrow the single machine word.
//
// All forms share the same operation set: XOR/AND/OR/popcount, excitation
// degree, hole and particle extraction, in-place single and double
// excitation operators, and the fermionic phase those operators pick up
// under the canonical ascending orbital ordering.
//
// A full determinant is an (alpha, beta) pair of values from this package;
// see the root detkit package.
package spindet
