// Package stealpool provides a fixed-size work-stealing worker pool:
// a bounded set of workers that accept arbitrary asynchronous tasks,
// execute them concurrently, and hand the submitter a handle through
// which each task's result or failure is retrieved.
//
// It is the canonical alternative to spawning one goroutine per task,
// amortizing scheduling overhead and bounding concurrency.
//
// Architecture overview
//
// The pool is built from per-worker slots rather than one shared queue:
//
//   1. Slots
//      Each worker owns a slot: a mutex-guarded deque of pending units,
//      a condition variable it parks on, and a liveness flag. Sharding
//      the work across independently locked queues scales submission
//      and consumption throughput beyond what a single coarse lock
//      allows.
//
//   2. Dispatch (inline, on the submitter)
//      Submit wraps the function into a single-shot unit of work paired
//      with a ResultHandle, then picks a destination slot using
//      round-robin plus shortest-of-two: the dispatcher compares the
//      queue lengths of the current cursor slot and its successor and
//      pushes to the shorter one. The cursor advances every submission,
//      so the candidate pair sweeps the whole slot set over time. No
//      separate dispatcher goroutine exists; dispatch is O(1) work done
//      synchronously inside Submit.
//
//   3. Workers
//      Each worker drains its own queue from the front, and when empty
//      scans its peers and steals from the back of the first non-empty
//      queue. Only when neither yields work does it block on its
//      condition variable.
//
// Ordering
//
// Within one slot, units execute in FIFO order relative to each other,
// except when a peer steals from the back of the queue. A back-steal
// removes the least recently enqueued item and is observably a
// violation of slot-local FIFO under contention; this is an accepted
// tradeoff of the stealing protocol, not a bug. Across slots no
// ordering is guaranteed.
//
// Locking discipline
//
// Each slot's queue and running flag are touched only under that
// slot's own lock. The two-queue dispatch comparison is the single
// place two slot locks are held simultaneously, and they are always
// acquired in ascending index order, so reversed concurrent dispatch
// attempts cannot form a circular wait. Locks are held for O(1)
// compare-and-push work, never while a task runs.
//
// Shutdown
//
// Close stops admission first, then stops and wakes each slot, then
// joins the workers. A worker woken with queued work keeps draining
// before it observes the empty-and-stopped condition, which yields the
// drain guarantee: everything submitted before Close runs to
// completion; nothing submitted after Close is accepted.
//
// Error handling
//
// Failures inside tasks are always local. A task's error or recovered
// panic is captured into its own ResultHandle and re-raised only when
// the owner calls Get; it never unwinds the worker loop and never
// affects sibling tasks. Fire-and-forget tasks report failures through
// the pool's OnTaskError handler and the log. There is no automatic
// retry inside the pool; SubmitRetry layers retries on the caller's
// side for submitters that want them.
//
// Intended use cases
//
// stealpool fits workloads with many short, independent tasks where
// per-task goroutine churn or a single shared queue lock would
// dominate. It does not do priority scheduling, mid-execution
// cancellation, or durable queues.
package stealpool
