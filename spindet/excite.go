package spindet

import "github.com/detkit/detkit/internal/orbset"

// occupier is the minimal view the excitation precondition checks need.
type occupier interface {
	Contains(o uint32) bool
}

func checkSingle(v occupier, h, p uint32) error {
	switch {
	case h == p:
		return &ExcitationError{Hole: h, Particle: p, Reason: "hole and particle coincide"}
	case !v.Contains(h):
		return &ExcitationError{Hole: h, Particle: p, Reason: "hole is not occupied"}
	case v.Contains(p):
		return &ExcitationError{Hole: h, Particle: p, Reason: "particle is already occupied"}
	}
	return nil
}

// checkDouble validates both legs of a double excitation against the state
// the determinant will be in when each leg applies, without mutating v.
func checkDouble(v occupier, h1, p1, h2, p2 uint32) error {
	if err := checkSingle(v, h1, p1); err != nil {
		return err
	}
	// Occupation after the first leg: p1 filled, h1 emptied.
	occ := func(o uint32) bool {
		if o == p1 {
			return true
		}
		if o == h1 {
			return false
		}
		return v.Contains(o)
	}
	switch {
	case h2 == p2:
		return &ExcitationError{Hole: h2, Particle: p2, Reason: "hole and particle coincide"}
	case !occ(h2):
		return &ExcitationError{Hole: h2, Particle: p2, Reason: "hole is not occupied"}
	case occ(p2):
		return &ExcitationError{Hole: h2, Particle: p2, Reason: "particle is already occupied"}
	}
	return nil
}

// ApplySingle applies the single-excitation operator a†_p a_h in place,
// moving the electron at orbital h to orbital p. The slice is kept strictly
// ascending with a one-pass shift; no re-sort.
func (l *List) ApplySingle(h, p uint32) error {
	if err := checkSingle(l, h, p); err != nil {
		return err
	}
	orbset.Excite(l.orb, h, p)
	return nil
}

// ApplyDouble applies a†_p1 a_h1 followed by a†_p2 a_h2 in place. Both legs
// are validated before anything is written, so a failed call leaves the
// determinant untouched.
func (l *List) ApplyDouble(h1, p1, h2, p2 uint32) error {
	if err := checkDouble(l, h1, p1, h2, p2); err != nil {
		return err
	}
	orbset.Excite(l.orb, h1, p1)
	orbset.Excite(l.orb, h2, p2)
	return nil
}

// PhaseSingle returns the fermionic phase (+1 or -1) picked up by the
// single excitation h -> p on l, before the excitation is applied: (-1)^m
// with m the number of occupied orbitals strictly between h and p.
func (l *List) PhaseSingle(h, p uint32) int {
	lo, hi := minmax(h, p)
	return parity(orbset.CountBetween(l.orb, lo, hi))
}

// PhaseDouble returns the fermionic phase of the double excitation
// (h1 -> p1, h2 -> p2), with both legs counted against the determinant
// before either is applied. Interleaved pairs flip the sign.
func (l *List) PhaseDouble(h1, p1, h2, p2 uint32) int {
	return crossPhase(h1, p1, h2, p2) * l.PhaseSingle(h1, p1) * l.PhaseSingle(h2, p2)
}

func minmax(a, b uint32) (uint32, uint32) {
	if a < b {
		return a, b
	}
	return b, a
}

func parity(m int) int {
	if m&1 == 1 {
		return -1
	}
	return 1
}

// crossPhase is the reordering correction for a double excitation: one sign
// flip when h2 < p1 and one when p2 < h1.
func crossPhase(h1, p1, h2, p2 uint32) int {
	phase := 1
	if h2 < p1 {
		phase = -phase
	}
	if p2 < h1 {
		phase = -phase
	}
	return phase
}
