package stealpool

import (
	"context"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

// Pool is a fixed-size work-stealing worker pool. Each worker owns a
// slot (queue, lock, condition variable, liveness flag); dispatch
// happens inline on the submitting goroutine.
//
// A Pool must not be copied. Call Close before dropping the last
// reference; queued work is drained, not abandoned.
type Pool struct {
	opts  Options
	slots []*slot

	// cursor drives the round-robin sweep of the dispatcher. It is
	// advanced once per submission regardless of which of the two
	// candidate slots received the work.
	cursor atomic.Uint64

	// running gates admission in Submit. Set false exactly once, at
	// the start of Close, before any slot flag is touched.
	running atomic.Bool

	closeOnce sync.Once
	done      chan struct{} // closed after all workers have been joined
	wg        sync.WaitGroup
}

// New creates a pool with opts.Workers workers (clamped, see Options)
// and starts them. The returned pool accepts submissions immediately.
func New(opts Options) *Pool {
	opts.FillDefaults()

	p := &Pool{
		opts: opts,
		done: make(chan struct{}),
	}
	p.running.Store(true)

	// Every slot must be fully constructed before the first worker
	// starts: a worker may run immediately and touches peer slots
	// while stealing.
	p.slots = make([]*slot, opts.Workers)
	for i := range p.slots {
		p.slots[i] = newSlot(opts.QueueCapacity)
	}
	p.wg.Add(len(p.slots))
	for i := range p.slots {
		go p.worker(i)
	}
	return p
}

// Workers returns the fixed worker count resolved at construction.
func (p *Pool) Workers() int { return len(p.slots) }

// IsRunning reports whether the pool still accepts submissions.
func (p *Pool) IsRunning() bool { return p.running.Load() }

// Submit schedules fn on the pool and returns the handle its result is
// delivered through. Returns ErrPoolStopped once Close has begun; the
// function is not invoked in that case.
func Submit[R any](p *Pool, fn func() (R, error)) (*ResultHandle[R], error) {
	return SubmitContext(p, context.Background(), fn)
}

// SubmitContext is Submit with a caller-supplied context used for log
// propagation. The context does not cancel the task; a submitter that
// wants a timeout races ResultHandle.GetContext against it instead.
func SubmitContext[R any](p *Pool, ctx context.Context, fn func() (R, error)) (*ResultHandle[R], error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	if !p.running.Load() {
		return nil, ErrPoolStopped
	}
	run, h := newTask(fn)
	u := unit{id: uuid.NewString(), ctx: ctx, run: run}
	idx, err := p.dispatch(u)
	if err != nil {
		return nil, err
	}
	lg.FromContext(ctx).Info("task submitted", lg.String("task", u.id), lg.Int("slot", idx))
	return h, nil
}

// Go schedules a fire-and-forget function with no result handle.
// Failures surface only through OnTaskError and the log.
func (p *Pool) Go(fn func()) error {
	if fn == nil {
		return ErrNilTask
	}
	if !p.running.Load() {
		return ErrPoolStopped
	}
	u := unit{
		id:  uuid.NewString(),
		ctx: context.Background(),
		run: func() error { fn(); return nil },
	}
	_, err := p.dispatch(u)
	return err
}

// Close stops admission, wakes every worker and blocks until each has
// drained its queue and exited. Workers finish all queued work before
// terminating; nothing submitted before Close is abandoned.
//
// Close is idempotent. A second sequential call returns immediately;
// a concurrent call blocks until the first shutdown completes.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.running.Store(false)

		// Each signal happens only after that slot's running flag is
		// already false, so a woken worker either drains remaining
		// work or observes empty+stopped and exits.
		for _, s := range p.slots {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			s.wake.Signal()
		}
		p.wg.Wait()
		close(p.done)
	})
	<-p.done
}

func (p *Pool) reportTaskError(err error) {
	if p.opts.OnTaskError != nil {
		p.opts.OnTaskError(err)
	}
}
