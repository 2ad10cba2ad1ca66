package detkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// from a dispatch Table. Implement this interface to integrate with
// monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreate is called after each handle creation.
	// duration is the total time taken, err is nil if successful.
	RecordCreate(kind Kind, duration time.Duration, err error)

	// RecordDestroy is called after each handle destruction.
	RecordDestroy(duration time.Duration, err error)

	// RecordOp is called after each dispatched determinant operation
	// (xor, and, or, exc_degree, holes, particles, the excitation
	// operators and the phase queries).
	RecordOp(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(Kind, time.Duration, error) {}
func (NoopMetricsCollector) RecordDestroy(time.Duration, error)      {}
func (NoopMetricsCollector) RecordOp(string, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount   atomic.Int64
	CreateErrors  atomic.Int64
	DestroyCount  atomic.Int64
	DestroyErrors atomic.Int64
	OpCount       atomic.Int64
	OpErrors      atomic.Int64
	OpTotalNanos  atomic.Int64
}

func (m *BasicMetricsCollector) RecordCreate(_ Kind, _ time.Duration, err error) {
	m.CreateCount.Add(1)
	if err != nil {
		m.CreateErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordDestroy(_ time.Duration, err error) {
	m.DestroyCount.Add(1)
	if err != nil {
		m.DestroyErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordOp(_ string, duration time.Duration, err error) {
	m.OpCount.Add(1)
	m.OpTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.OpErrors.Add(1)
	}
}
