package stealpool

import "runtime"

const (
	minWorkers               = 1
	defaultSlotQueueCapacity = 256
)

// Options configure a Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Workers is the number of worker goroutines and therefore the
	// number of slots. 0 means "use the detected hardware concurrency".
	// The value is clamped to [1, max(128, 2*NumCPU)].
	Workers int

	// QueueCapacity is the initial capacity of each slot's deque.
	// Queues grow beyond it as needed.
	QueueCapacity int

	// PinWorkers locks each worker to an OS thread and pins it to a
	// CPU core. Linux only; a no-op elsewhere.
	PinWorkers bool

	// Metrics receives submit/execute/steal events. Defaults to
	// NoopMetrics.
	Metrics MetricsPolicy

	// OnTaskError is invoked with every task failure, including
	// recovered panics. Task errors never stop the pool; the handler
	// is observation only.
	OnTaskError func(error)
}

// FillDefaults normalizes the options in place.
func (o *Options) FillDefaults() {
	hw := runtime.NumCPU()
	maxWorkers := 2 * hw
	if maxWorkers < 128 {
		maxWorkers = 128
	}
	if o.Workers == 0 {
		o.Workers = hw
	}
	if o.Workers < minWorkers {
		o.Workers = minWorkers
	}
	if o.Workers > maxWorkers {
		o.Workers = maxWorkers
	}
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = defaultSlotQueueCapacity
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
