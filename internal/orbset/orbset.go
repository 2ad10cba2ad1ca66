// Package orbset implements merge-scan kernels over strictly ascending
// slices of orbital indices.
//
// Every function assumes its inputs are strictly ascending with no
// duplicates. The set combinators append to dst (pass dst[:0] to reuse a
// buffer) and their output is again strictly ascending.
package orbset

import "sort"

// Xor appends the symmetric difference of a and b to dst.
func Xor(dst, a, b []uint32) []uint32 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case b[j] < a[i]:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}

// And appends the intersection of a and b to dst.
func And(dst, a, b []uint32) []uint32 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	return dst
}

// Or appends the union of a and b to dst, emitting shared elements once.
func Or(dst, a, b []uint32) []uint32 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case b[j] < a[i]:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}

// IsAscending reports whether s is strictly ascending.
func IsAscending(s []uint32) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// Contains reports whether o is an element of s.
func Contains(s []uint32, o uint32) bool {
	i := sort.Search(len(s), func(k int) bool { return s[k] >= o })
	return i < len(s) && s[i] == o
}

// CountBetween returns the number of elements of s in the open
// interval (lo, hi).
func CountBetween(s []uint32, lo, hi uint32) int {
	i := sort.Search(len(s), func(k int) bool { return s[k] > lo })
	j := sort.Search(len(s), func(k int) bool { return s[k] >= hi })
	if j < i {
		return 0
	}
	return j - i
}

// Excite replaces the occupied orbital h with the unoccupied orbital p,
// shifting the elements between them so that s stays strictly ascending.
// The scan uses signed indices; a hole at position 0 cannot underflow.
//
// Preconditions (checked by the caller): h is in s, p is not, h != p.
func Excite(s []uint32, h, p uint32) {
	if h < p {
		i := 0
		for i < len(s) && s[i] < h {
			i++
		}
		for i+1 < len(s) && s[i+1] < p {
			s[i] = s[i+1]
			i++
		}
		s[i] = p
		return
	}
	i := len(s) - 1
	for i >= 0 && s[i] > h {
		i--
	}
	for i-1 >= 0 && s[i-1] > p {
		s[i] = s[i-1]
		i--
	}
	s[i] = p
}
