package stealpool

import (
	"sync"
	"sync/atomic"
)

// slot is one worker's private state: its queue of pending units, the
// condition variable it parks on, and its liveness flag.
//
// running and queue are only inspected or mutated while mu is held.
// running transitions true to false exactly once, during Close, and
// never back. The deque carries its own internal lock as well; mu is
// what makes the running check and the queue operation atomic together.
type slot struct {
	mu      sync.Mutex
	wake    *sync.Cond
	queue   *Deque[unit]
	running bool

	// Counters are written on hot paths; reads happen only in Stats.
	enqueued atomic.Uint64
	executed atomic.Uint64
	stolen   atomic.Uint64
}

func newSlot(queueCapacity int) *slot {
	s := &slot{
		queue:   NewDeque[unit](queueCapacity),
		running: true,
	}
	s.wake = sync.NewCond(&s.mu)
	return s
}
