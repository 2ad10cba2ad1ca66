package spindet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSorted is returned by NewList when the input slice is not
	// strictly ascending. The constructor never sorts on the caller's
	// behalf; downstream kernels all assume the canonical order.
	ErrNotSorted = errors.New("orbital indices must be strictly ascending")

	// ErrOrbitalRange is returned when an orbital index does not fit the
	// representation, e.g. index >= 64 on the Bits form.
	ErrOrbitalRange = errors.New("orbital index out of range for representation")

	// ErrNotSingleExcitation is returned by SingleExc when the two
	// determinants do not differ by exactly one orbital.
	ErrNotSingleExcitation = errors.New("determinants are not a single excitation apart")

	// ErrNotDoubleExcitation is returned by DoubleExc when the two
	// determinants do not differ by exactly two orbitals.
	ErrNotDoubleExcitation = errors.New("determinants are not a double excitation apart")
)

// ExcitationError indicates an excitation operator whose preconditions do
// not hold: the hole must be occupied, the particle must be vacant, and the
// two must differ.
type ExcitationError struct {
	Hole     uint32
	Particle uint32
	Reason   string
}

func (e *ExcitationError) Error() string {
	return fmt.Sprintf("invalid excitation %d -> %d: %s", e.Hole, e.Particle, e.Reason)
}
