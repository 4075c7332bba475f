package stealpool

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the pool to report submission,
// execution and stealing activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncSubmitted increments the accepted-submissions counter.
	IncSubmitted()

	// IncExecuted increments the executed-tasks counter.
	IncExecuted()

	// IncStolen increments the stolen-tasks counter. A steal is also
	// counted as an execution by the stealing worker.
	IncStolen()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// submitted is the total number of accepted submissions.
	submitted atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// executed is the total number of tasks run to completion,
	// whether they succeeded, failed or panicked.
	executed atomic.Uint64

	_ [56]byte

	// stolen is the total number of tasks taken from a peer's queue.
	stolen atomic.Uint64
}

// Submitted returns the total number of accepted submissions.
// Intended for cold-path observation.
func (m *AtomicMetrics) Submitted() uint64 {
	return m.submitted.Load()
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Stolen returns the total number of stolen tasks.
func (m *AtomicMetrics) Stolen() uint64 {
	return m.stolen.Load()
}

// IncSubmitted increments the submitted counter by one.
func (m *AtomicMetrics) IncSubmitted() {
	m.submitted.Add(1)
}

// IncExecuted increments the executed counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncStolen increments the stolen counter by one.
func (m *AtomicMetrics) IncStolen() {
	m.stolen.Add(1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSubmitted() {}
func (m *NoopMetrics) IncExecuted() {}
func (m *NoopMetrics) IncStolen()   {}
