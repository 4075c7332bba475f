package stealpool

import (
	"context"
	"runtime"
	"runtime/debug"

	lg "github.com/Andrej220/go-utils/zlog"
)

// worker is the per-slot execution loop: drain the own queue, else try
// to steal from peers, else park on the slot's condition variable.
func (p *Pool) worker(i int) {
	defer p.wg.Done()
	s := p.slots[i]

	if p.opts.PinWorkers {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := PinToCPU(i % runtime.NumCPU()); err != nil {
			lg.FromContext(context.Background()).Warn("cpu pinning failed",
				lg.Int("slot", i), lg.Any("error", err))
		}
	}

	for {
		// Drain own queue: pop from the front, run outside the lock.
		s.mu.Lock()
		if u, ok := s.queue.PopFront(); ok {
			s.mu.Unlock()
			p.invoke(i, u)
			s.executed.Add(1)
			continue
		}
		s.mu.Unlock()

		// Own queue empty: scan peers. Steal from the back to stay
		// off the owner's end of the queue.
		if u, ok := p.steal(i); ok {
			p.invoke(i, u)
			s.executed.Add(1)
			s.stolen.Add(1)
			p.opts.Metrics.IncStolen()
			continue
		}

		// Park until new work arrives or the slot is stopped. A slot
		// stopped with work still queued keeps draining above before
		// this exit condition can hold.
		s.mu.Lock()
		for s.queue.Empty() && s.running {
			s.wake.Wait()
		}
		if !s.running && s.queue.Empty() {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

// steal scans all peer slots in index order and takes one unit from the
// back of the first non-empty queue. Back-stealing removes the least
// recently enqueued item for that slot, an accepted violation of
// slot-local FIFO under contention.
func (p *Pool) steal(i int) (unit, bool) {
	for j := range p.slots {
		if j == i {
			continue
		}
		t := p.slots[j]
		t.mu.Lock()
		if u, ok := t.queue.PopBack(); ok {
			t.mu.Unlock()
			return u, true
		}
		t.mu.Unlock()
	}
	return unit{}, false
}

// invoke runs one unit of work. A failing or panicking task must never
// unwind the worker loop; the recover here is the mandatory catch
// boundary for fire-and-forget units, whose run function does not
// capture panics into a handle.
func (p *Pool) invoke(i int, u unit) {
	defer func() {
		p.opts.Metrics.IncExecuted()
		if r := recover(); r != nil {
			err := &TaskPanicError{Value: r, Stack: string(debug.Stack())}
			lg.FromContext(u.ctx).Error("task panicked",
				lg.String("task", u.id), lg.Int("slot", i), lg.Any("panic", r))
			p.reportTaskError(err)
		}
	}()
	if err := u.run(); err != nil {
		lg.FromContext(u.ctx).Error("task failed",
			lg.String("task", u.id), lg.Int("slot", i), lg.Any("error", err))
		p.reportTaskError(err)
	}
}
