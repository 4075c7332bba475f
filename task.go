package stealpool

import (
	"context"
	"runtime/debug"
	"sync/atomic"
)

// ResultHandle is the caller-held side of a submitted task. It is
// fulfilled exactly once, when the task's unit of work has run.
type ResultHandle[R any] struct {
	done  chan struct{}
	value R
	err   error
}

// Get blocks until the task has executed, then returns its value or the
// failure it produced. A panicking task yields a *TaskPanicError.
func (h *ResultHandle[R]) Get() (R, error) {
	<-h.done
	return h.value, h.err
}

// GetContext is Get racing against ctx. The task itself keeps running;
// cancellation here only releases the waiting caller.
func (h *ResultHandle[R]) GetContext(ctx context.Context) (R, error) {
	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Done returns a channel closed once the result is available, for use
// in select statements.
func (h *ResultHandle[R]) Done() <-chan struct{} {
	return h.done
}

// unit is one queued invocation together with its logging metadata.
// Ownership moves from the submitter into exactly one slot's queue and
// from there into the executing worker's call frame.
type unit struct {
	id  string
	ctx context.Context
	run func() error
}

// newTask adapts fn into a single-shot unit of work paired with the
// handle its result is delivered through. The returned run function
// invokes fn exactly once, capturing the return value, the error, or a
// recovered panic into the handle before closing it.
//
// Exactly-once is structural: a unit is popped from its queue once and
// then discarded. The atomic guard turns an accidental second
// invocation into a loud failure instead of a silently corrupted handle.
func newTask[R any](fn func() (R, error)) (func() error, *ResultHandle[R]) {
	h := &ResultHandle[R]{done: make(chan struct{})}
	var invoked atomic.Bool

	run := func() (err error) {
		if !invoked.CompareAndSwap(false, true) {
			panic("stealpool: unit of work invoked twice")
		}
		defer func() {
			if r := recover(); r != nil {
				h.err = &TaskPanicError{Value: r, Stack: string(debug.Stack())}
				err = h.err
			}
			close(h.done)
		}()
		h.value, h.err = fn()
		return h.err
	}
	return run, h
}
