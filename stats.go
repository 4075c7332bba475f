package stealpool

// SlotStats is a point-in-time view of one slot.
type SlotStats struct {
	// Queued is the number of units currently waiting in the slot's
	// queue.
	Queued int

	// Enqueued is the total number of units the dispatcher has pushed
	// onto this slot.
	Enqueued uint64

	// Executed is the total number of units this slot's worker has
	// run, including stolen ones.
	Executed uint64

	// Stolen is the total number of units this slot's worker took
	// from peer queues.
	Stolen uint64
}

// Stats is a snapshot of pool activity. Counters are read atomically
// per slot but the snapshot as a whole is not a consistent cut.
type Stats struct {
	Workers int
	Slots   []SlotStats
}

// Stats returns a snapshot of per-slot queue lengths and counters.
// Intended for cold-path observation, not hot-path decisions.
func (p *Pool) Stats() Stats {
	st := Stats{
		Workers: len(p.slots),
		Slots:   make([]SlotStats, len(p.slots)),
	}
	for i, s := range p.slots {
		st.Slots[i] = SlotStats{
			Queued:   s.queue.Len(),
			Enqueued: s.enqueued.Load(),
			Executed: s.executed.Load(),
			Stolen:   s.stolen.Load(),
		}
	}
	return st
}
