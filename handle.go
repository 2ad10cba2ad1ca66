package detkit

import (
	"sync"
	"time"
)

// Handle is an opaque reference to a determinant owned by a Table. The
// zero Handle is never issued.
type Handle uint64

// entry pairs a determinant with its representation tag. A destroyed
// entry keeps its tag and drops the payload, which makes Destroy
// idempotent and lets stale handles fail with ErrClosed instead of
// aliasing a recycled slot.
type entry struct {
	kind Kind
	det  any
}

// Table is the kind-tagged dispatch layer: a registry of determinant
// handles with one uniform entry point per combinator. It mirrors the flat
// create/destroy/op surface that array-based numerical runtimes bind
// against.
//
// A Table is safe for concurrent use. Operations on distinct determinants
// never contend beyond the registry lock; the excitation operators mutate
// the addressed determinant in place and are not reentrant on the same
// handle.
type Table struct {
	logger  *Logger
	metrics MetricsCollector

	mu   sync.RWMutex
	next Handle
	dets map[Handle]*entry
}

// NewTable creates an empty dispatch table.
func NewTable(opts ...Option) *Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table{
		logger:  o.logger,
		metrics: o.metrics,
		dets:    make(map[Handle]*entry),
	}
}

// Create registers a determinant of the given kind occupying orbs and
// returns its handle. For KindList the input must be strictly ascending;
// for KindBits every orbital must be below 64.
func (t *Table) Create(kind Kind, orbs []uint32) (Handle, error) {
	start := time.Now()
	det, err := newDet(kind, orbs)
	if err != nil {
		t.metrics.RecordCreate(kind, time.Since(start), err)
		t.logger.LogCreate(kind, 0, err)
		return 0, err
	}

	t.mu.Lock()
	t.next++
	h := t.next
	t.dets[h] = &entry{kind: kind, det: det}
	t.mu.Unlock()

	t.metrics.RecordCreate(kind, time.Since(start), nil)
	t.logger.LogCreate(kind, h, nil)
	return h, nil
}

// Destroy releases the determinant behind h. Destroying an already
// destroyed handle returns ErrClosed and is otherwise harmless.
func (t *Table) Destroy(h Handle) error {
	start := time.Now()

	t.mu.Lock()
	e, ok := t.dets[h]
	var err error
	switch {
	case !ok:
		err = ErrUnknownHandle
	case e.det == nil:
		err = ErrClosed
	default:
		e.det = nil
	}
	t.mu.Unlock()

	t.metrics.RecordDestroy(time.Since(start), err)
	return err
}

// lookup fetches a live entry under the read lock.
func (t *Table) lookup(h Handle) (*entry, error) {
	e, ok := t.dets[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	if e.det == nil {
		return nil, ErrClosed
	}
	return e, nil
}

// binary runs a combinator over two handles and writes the result into
// out, whose previous contents are discarded. All three handles must carry
// the same representation kind.
func (t *Table) binary(op combineOp, a, b, out Handle) error {
	start := time.Now()
	err := t.binaryLocked(op, a, b, out)
	t.metrics.RecordOp(op.String(), time.Since(start), err)
	t.logger.LogOp(op.String(), err)
	return err
}

func (t *Table) binaryLocked(op combineOp, a, b, out Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ea, err := t.lookup(a)
	if err != nil {
		return err
	}
	eb, err := t.lookup(b)
	if err != nil {
		return err
	}
	eo, err := t.lookup(out)
	if err != nil {
		return err
	}
	if ea.kind != eb.kind || ea.kind != eo.kind {
		return ErrKindMismatch
	}

	res := combine(op, ea.det, eb.det)
	if res == nil {
		return &ErrInvalidKind{Kind: ea.kind}
	}
	eo.det = res
	return nil
}

// Xor writes the symmetric difference of a and b into out.
func (t *Table) Xor(a, b, out Handle) error { return t.binary(opXor, a, b, out) }

// And writes the intersection of a and b into out.
func (t *Table) And(a, b, out Handle) error { return t.binary(opAnd, a, b, out) }

// Or writes the union of a and b into out.
func (t *Table) Or(a, b, out Handle) error { return t.binary(opOr, a, b, out) }

// Holes writes the orbitals occupied in a but not in b into out.
func (t *Table) Holes(a, b, out Handle) error { return t.binary(opHoles, a, b, out) }

// Particles writes the orbitals occupied in b but not in a into out.
func (t *Table) Particles(a, b, out Handle) error { return t.binary(opParticles, a, b, out) }

// Popcount returns the number of occupied orbitals behind h.
func (t *Table) Popcount(h Handle) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, err := t.lookup(h)
	if err != nil {
		return 0, err
	}
	return e.det.(exciter).Popcount(), nil
}

// ExcDegree returns the excitation degree between the determinants behind
// a and b, which must carry the same kind and electron count.
func (t *Table) ExcDegree(a, b Handle) (int, error) {
	start := time.Now()
	ed, err := t.excDegreeLocked(a, b)
	t.metrics.RecordOp("exc_degree", time.Since(start), err)
	return ed, err
}

func (t *Table) excDegreeLocked(a, b Handle) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ea, err := t.lookup(a)
	if err != nil {
		return 0, err
	}
	eb, err := t.lookup(b)
	if err != nil {
		return 0, err
	}
	if ea.kind != eb.kind {
		return 0, ErrKindMismatch
	}
	return excDegree(ea.det, eb.det), nil
}

// ApplySingle mutates the determinant behind h in place under the
// single-excitation operator a†_particle a_hole.
func (t *Table) ApplySingle(h Handle, hole, particle uint32) error {
	start := time.Now()
	err := t.withExciter(h, func(x exciter) error {
		return x.ApplySingle(hole, particle)
	})
	t.metrics.RecordOp("apply_single", time.Since(start), err)
	t.logger.LogOp("apply_single", err)
	return err
}

// ApplyDouble mutates the determinant behind h in place under two
// sequential single excitations.
func (t *Table) ApplyDouble(h Handle, h1, p1, h2, p2 uint32) error {
	start := time.Now()
	err := t.withExciter(h, func(x exciter) error {
		return x.ApplyDouble(h1, p1, h2, p2)
	})
	t.metrics.RecordOp("apply_double", time.Since(start), err)
	t.logger.LogOp("apply_double", err)
	return err
}

// PhaseSingle returns the fermionic phase of the excitation hole ->
// particle against the determinant behind h, before any mutation.
func (t *Table) PhaseSingle(h Handle, hole, particle uint32) (int, error) {
	start := time.Now()
	var phase int
	err := t.withExciter(h, func(x exciter) error {
		phase = x.PhaseSingle(hole, particle)
		return nil
	})
	t.metrics.RecordOp("phase_single", time.Since(start), err)
	return phase, err
}

// PhaseDouble returns the fermionic phase of the double excitation
// (h1 -> p1, h2 -> p2) against the determinant behind h.
func (t *Table) PhaseDouble(h Handle, h1, p1, h2, p2 uint32) (int, error) {
	start := time.Now()
	var phase int
	err := t.withExciter(h, func(x exciter) error {
		phase = x.PhaseDouble(h1, p1, h2, p2)
		return nil
	})
	t.metrics.RecordOp("phase_double", time.Since(start), err)
	return phase, err
}

// Orbitals returns a copy of the occupied orbitals behind h, ascending.
func (t *Table) Orbitals(h Handle) ([]uint32, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, err := t.lookup(h)
	if err != nil {
		return nil, err
	}
	return e.det.(exciter).Orbitals(), nil
}

func (t *Table) withExciter(h Handle, f func(exciter) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := t.lookup(h)
	if err != nil {
		return err
	}
	return f(e.det.(exciter))
}
