package stealpool

import "sync"

const defaultDequeCapacity = 64

// Deque is a mutex-guarded generic double-ended queue backed by a
// growable circular buffer.
//
// Every method acquires the internal lock for its full duration, so all
// observable mutations are atomic with respect to each other. Len and
// Empty are momentarily consistent, not stale reads. Pop and Peek on an
// empty deque return a zero value and false rather than blocking.
//
// Concurrent pushers serialize; no ordering is guaranteed among
// simultaneous pushers beyond each push being observed atomically.
type Deque[T any] struct {
	mu   sync.Mutex
	buf  []T
	head int
	size int
}

// NewDeque creates a deque with the given initial capacity.
// Non-positive capacities fall back to a small default; the buffer
// grows as needed.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = defaultDequeCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// PushFront inserts v at the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.mu.Lock()
	if d.size == len(d.buf) {
		d.grow()
	}
	d.head--
	if d.head < 0 {
		d.head = len(d.buf) - 1
	}
	d.buf[d.head] = v
	d.size++
	d.mu.Unlock()
}

// PushBack appends v at the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.mu.Lock()
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
	d.mu.Unlock()
}

// PopFront removes and returns the front element.
// The second result is false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.size == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return v, true
}

// PopBack removes and returns the back element.
// The second result is false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := (d.head + d.size - 1) % len(d.buf)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, true
}

// PeekFront returns the front element without removing it.
// The second result is false if the deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Len returns the current number of elements.
func (d *Deque[T]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size == 0
}

// Clear removes all elements. Buffer slots are zeroed so released
// elements do not keep their referents alive.
func (d *Deque[T]) Clear() {
	d.mu.Lock()
	var zero T
	for i := range d.buf {
		d.buf[i] = zero
	}
	d.head = 0
	d.size = 0
	d.mu.Unlock()
}

// grow doubles the buffer and linearizes the contents.
// Caller must hold d.mu.
func (d *Deque[T]) grow() {
	next := make([]T, 2*len(d.buf))
	for i := 0; i < d.size; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
