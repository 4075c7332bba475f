package stealpool

// dispatch selects a destination slot for u using round-robin plus
// shortest-of-two and enqueues it there. It returns the chosen slot
// index, or ErrPoolStopped if every candidate slot has already been
// stopped.
//
// The cursor advances once per submission, so over many submissions
// the candidate pair sweeps the whole slot set instead of oscillating
// between two slots. Comparing only the current and next candidate
// keeps dispatch O(1) under high submission rates.
func (p *Pool) dispatch(u unit) (int, error) {
	n := len(p.slots)
	if n == 1 {
		return p.enqueue(p.slots[0], 0, u)
	}

	v := p.cursor.Add(1)
	last := int((v - 1) % uint64(n))
	next := int(v % uint64(n))

	sl, sn := p.slots[last], p.slots[next]

	// This is the only place two slot locks are held at once. Always
	// acquire the lower index first; a concurrent dispatch on the
	// reversed pair takes them in the same order, so no circular wait.
	first, second := sl, sn
	if next < last {
		first, second = sn, sl
	}
	first.mu.Lock()
	second.mu.Lock()

	var target *slot
	var idx int
	switch {
	case sl.running && sn.running:
		// Shorter queue wins, ties go to last.
		if sn.queue.Len() < sl.queue.Len() {
			target, idx = sn, next
		} else {
			target, idx = sl, last
		}
	case sl.running:
		target, idx = sl, last
	case sn.running:
		target, idx = sn, next
	default:
		second.mu.Unlock()
		first.mu.Unlock()
		return -1, ErrPoolStopped
	}

	target.queue.PushBack(u)
	target.enqueued.Add(1)
	second.mu.Unlock()
	first.mu.Unlock()

	target.wake.Signal()
	p.opts.Metrics.IncSubmitted()
	return idx, nil
}

// enqueue pushes u onto s, checking the slot's liveness under its lock.
// The check closes the race with Close: a submit that passed the pool
// admission gate but reaches a stopped slot is rejected rather than
// enqueued after the worker's final drain.
func (p *Pool) enqueue(s *slot, idx int, u unit) (int, error) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return -1, ErrPoolStopped
	}
	s.queue.PushBack(u)
	s.enqueued.Add(1)
	s.mu.Unlock()

	s.wake.Signal()
	p.opts.Metrics.IncSubmitted()
	return idx, nil
}
