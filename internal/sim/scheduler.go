package sim

// Scheduler is a per-tick timer queue for deferred side effects ("play a
// sound one second after a kill"). Callbacks run at a tick boundary, never
// mid-tick, so simulation correctness can never depend on one firing early.
type Scheduler struct {
	tick    uint64
	entries []schedEntry
}

type schedEntry struct {
	due uint64
	fn  func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Tick returns the current tick number.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// After schedules fn to run delay ticks from now. A non-positive delay runs
// on the next tick boundary.
func (s *Scheduler) After(delay int, fn func()) {
	if delay < 1 {
		delay = 1
	}
	s.entries = append(s.entries, schedEntry{due: s.tick + uint64(delay), fn: fn})
}

// Advance moves to the next tick and runs every callback that came due.
// Callbacks scheduled from within a callback land on a later tick.
func (s *Scheduler) Advance() {
	s.tick++

	var due []func()
	remaining := s.entries[:0]
	for _, e := range s.entries {
		if e.due <= s.tick {
			due = append(due, e.fn)
		} else {
			remaining = append(remaining, e)
		}
	}
	s.entries = remaining

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}
