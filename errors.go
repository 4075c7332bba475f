package stealpool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolStopped is returned by Submit, SubmitContext and Go once
	// Close has begun. No unit of work is created or enqueued in that case.
	ErrPoolStopped = errors.New("stealpool: pool stopped")

	// ErrNilTask is returned when a nil function is submitted.
	ErrNilTask = errors.New("stealpool: task is nil")
)

// TaskPanicError wraps a panic recovered from a submitted task together
// with the stack trace captured at the point of recovery.
//
// For tasks submitted through Submit the error is delivered via the
// task's ResultHandle; for fire-and-forget tasks it is routed to the
// pool's OnTaskError handler.
type TaskPanicError struct {
	Value any
	Stack string
}

func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("stealpool: task panicked: %v", e.Value)
}
