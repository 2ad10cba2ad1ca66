package detkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detkit/detkit/spindet"
)

func TestTableCreateDestroy(t *testing.T) {
	tbl := NewTable()

	h, err := tbl.Create(KindList, []uint32{0, 1, 2})
	require.NoError(t, err)
	require.NotZero(t, h)

	n, err := tbl.Popcount(h)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, tbl.Destroy(h))
	assert.ErrorIs(t, tbl.Destroy(h), ErrClosed)

	_, err = tbl.Popcount(h)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = tbl.Popcount(Handle(999))
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestTableCreateValidation(t *testing.T) {
	tbl := NewTable()

	_, err := tbl.Create(KindList, []uint32{2, 1})
	assert.ErrorIs(t, err, spindet.ErrNotSorted)

	_, err = tbl.Create(KindBits, []uint32{0, 64})
	assert.ErrorIs(t, err, spindet.ErrOrbitalRange)

	_, err = tbl.Create(Kind(42), []uint32{0})
	var invalid *ErrInvalidKind
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Kind(42), invalid.Kind)
}

func TestTableCombinators(t *testing.T) {
	for _, kind := range []Kind{KindBits, KindList, KindBitmap} {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := NewTable()

			a, err := tbl.Create(kind, []uint32{0, 1})
			require.NoError(t, err)
			b, err := tbl.Create(kind, []uint32{0, 2})
			require.NoError(t, err)
			out, err := tbl.Create(kind, nil)
			require.NoError(t, err)

			require.NoError(t, tbl.Xor(a, b, out))
			orbs, err := tbl.Orbitals(out)
			require.NoError(t, err)
			assert.Equal(t, []uint32{1, 2}, orbs)

			require.NoError(t, tbl.And(a, b, out))
			orbs, _ = tbl.Orbitals(out)
			assert.Equal(t, []uint32{0}, orbs)

			require.NoError(t, tbl.Or(a, b, out))
			orbs, _ = tbl.Orbitals(out)
			assert.Equal(t, []uint32{0, 1, 2}, orbs)

			ed, err := tbl.ExcDegree(a, b)
			require.NoError(t, err)
			assert.Equal(t, 1, ed)

			require.NoError(t, tbl.Holes(a, b, out))
			orbs, _ = tbl.Orbitals(out)
			assert.Equal(t, []uint32{1}, orbs)

			require.NoError(t, tbl.Particles(a, b, out))
			orbs, _ = tbl.Orbitals(out)
			assert.Equal(t, []uint32{2}, orbs)
		})
	}
}

func TestTableOutIsOverwritten(t *testing.T) {
	tbl := NewTable()

	a, _ := tbl.Create(KindList, []uint32{0, 1})
	b, _ := tbl.Create(KindList, []uint32{0, 2})
	out, _ := tbl.Create(KindList, []uint32{40, 41, 42})

	require.NoError(t, tbl.Xor(a, b, out))
	orbs, err := tbl.Orbitals(out)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, orbs)
}

func TestTableKindMismatch(t *testing.T) {
	tbl := NewTable()

	a, _ := tbl.Create(KindList, []uint32{0, 1})
	b, _ := tbl.Create(KindBits, []uint32{0, 2})
	out, _ := tbl.Create(KindList, nil)

	assert.ErrorIs(t, tbl.Xor(a, b, out), ErrKindMismatch)

	_, err := tbl.ExcDegree(a, b)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestTableExcitations(t *testing.T) {
	for _, kind := range []Kind{KindBits, KindList, KindBitmap} {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := NewTable()

			v, err := tbl.Create(kind, []uint32{0, 1, 2, 3})
			require.NoError(t, err)

			require.NoError(t, tbl.ApplySingle(v, 3, 4))
			orbs, _ := tbl.Orbitals(v)
			assert.Equal(t, []uint32{0, 1, 2, 4}, orbs)

			require.NoError(t, tbl.ApplyDouble(v, 2, 5, 4, 6))
			orbs, _ = tbl.Orbitals(v)
			assert.Equal(t, []uint32{0, 1, 5, 6}, orbs)

			var excErr *spindet.ExcitationError
			err = tbl.ApplySingle(v, 9, 10)
			require.ErrorAs(t, err, &excErr)
		})
	}
}

func TestTablePhases(t *testing.T) {
	for _, kind := range []Kind{KindBits, KindList, KindBitmap} {
		t.Run(kind.String(), func(t *testing.T) {
			tbl := NewTable()

			v, err := tbl.Create(kind, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8})
			require.NoError(t, err)

			phase, err := tbl.PhaseSingle(v, 4, 11)
			require.NoError(t, err)
			assert.Equal(t, 1, phase) // 5, 6, 7, 8 in between

			phase, err = tbl.PhaseDouble(v, 2, 11, 3, 12)
			require.NoError(t, err)
			assert.Equal(t, 1, phase)

			phase, err = tbl.PhaseDouble(v, 2, 11, 8, 17)
			require.NoError(t, err)
			assert.Equal(t, -1, phase)
		})
	}
}

func TestTableMetricsAndLogging(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	tbl := NewTable(WithMetrics(metrics), WithLogger(NoopLogger()))

	a, err := tbl.Create(KindList, []uint32{0, 1})
	require.NoError(t, err)
	b, err := tbl.Create(KindList, []uint32{0, 2})
	require.NoError(t, err)
	out, err := tbl.Create(KindList, nil)
	require.NoError(t, err)

	require.NoError(t, tbl.Xor(a, b, out))
	require.Error(t, tbl.Xor(a, b, Handle(999)))
	require.NoError(t, tbl.Destroy(out))

	assert.Equal(t, int64(3), metrics.CreateCount.Load())
	assert.Equal(t, int64(1), metrics.DestroyCount.Load())
	assert.Equal(t, int64(2), metrics.OpCount.Load())
	assert.Equal(t, int64(1), metrics.OpErrors.Load())
}
