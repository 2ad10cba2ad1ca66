package spindet

import "iter"

// SingleExc decomposes a pair of determinants one excitation apart into its
// hole, particle and fermionic phase, all relative to l. It returns
// ErrNotSingleExcitation when the excitation degree is not exactly 1.
func SingleExc(l, o *List) (hole, particle uint32, phase int, err error) {
	x := l.Xor(o)
	if len(x.orb) != 2 {
		return 0, 0, 0, ErrNotSingleExcitation
	}
	holes := l.And(x)
	parts := o.And(x)
	if len(holes.orb) != 1 || len(parts.orb) != 1 {
		return 0, 0, 0, ErrNotSingleExcitation
	}
	hole, particle = holes.orb[0], parts.orb[0]
	return hole, particle, l.PhaseSingle(hole, particle), nil
}

// DoubleExc decomposes a pair of determinants two excitations apart. Holes
// and particles come back in ascending order and the phase follows the
// (h1 -> p1, h2 -> p2) pairing of those sorted indices.
func DoubleExc(l, o *List) (holes, particles [2]uint32, phase int, err error) {
	x := l.Xor(o)
	if len(x.orb) != 4 {
		return holes, particles, 0, ErrNotDoubleExcitation
	}
	h := l.And(x)
	p := o.And(x)
	if len(h.orb) != 2 || len(p.orb) != 2 {
		return holes, particles, 0, ErrNotDoubleExcitation
	}
	holes = [2]uint32{h.orb[0], h.orb[1]}
	particles = [2]uint32{p.orb[0], p.orb[1]}
	return holes, particles, l.PhaseDouble(holes[0], particles[0], holes[1], particles[1]), nil
}

// vacant returns the unoccupied orbitals of l below nOrb, ascending.
func (l *List) vacant(nOrb uint32) []uint32 {
	out := make([]uint32, 0, max(0, int(nOrb)-len(l.orb)))
	i := 0
	for p := uint32(0); p < nOrb; p++ {
		for i < len(l.orb) && l.orb[i] < p {
			i++
		}
		if i < len(l.orb) && l.orb[i] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Singles yields every determinant reachable from l by one excitation
// inside an active space of nOrb orbitals. Each yielded determinant is a
// fresh copy; l is never mutated.
func (l *List) Singles(nOrb uint32) iter.Seq[*List] {
	return func(yield func(*List) bool) {
		vac := l.vacant(nOrb)
		for _, h := range l.orb {
			for _, p := range vac {
				c := l.Clone()
				if err := c.ApplySingle(h, p); err != nil {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Doubles yields every determinant reachable from l by two excitations
// inside an active space of nOrb orbitals, each pair of holes and particles
// enumerated once.
func (l *List) Doubles(nOrb uint32) iter.Seq[*List] {
	return func(yield func(*List) bool) {
		vac := l.vacant(nOrb)
		for i := 0; i < len(l.orb); i++ {
			for j := i + 1; j < len(l.orb); j++ {
				for k := 0; k < len(vac); k++ {
					for q := k + 1; q < len(vac); q++ {
						c := l.Clone()
						if err := c.ApplyDouble(l.orb[i], vac[k], l.orb[j], vac[q]); err != nil {
							continue
						}
						if !yield(c) {
							return
						}
					}
				}
			}
		}
	}
}
