package sim

import "testing"

func TestSchedulerRunsAtDueTick(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(3, func() { fired = true })

	s.Advance()
	s.Advance()
	if fired {
		t.Fatal("callback fired before its due tick")
	}
	s.Advance()
	if !fired {
		t.Fatal("callback did not fire at its due tick")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after firing, want 0", s.Pending())
	}
}

func TestSchedulerMinimumDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0, func() { fired = true })
	if fired {
		t.Fatal("non-positive delay ran synchronously")
	}
	s.Advance()
	if !fired {
		t.Error("non-positive delay did not run on the next tick")
	}
}

func TestSchedulerNestedScheduling(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(1, func() {
		order = append(order, "outer")
		s.After(1, func() { order = append(order, "inner") })
	})

	s.Advance()
	if len(order) != 1 || order[0] != "outer" {
		t.Fatalf("order after first tick = %v, want [outer]", order)
	}
	s.Advance()
	if len(order) != 2 || order[1] != "inner" {
		t.Errorf("order after second tick = %v, want [outer inner]", order)
	}
}

func TestSchedulerMultipleDue(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(1, func() { count++ })
	s.After(1, func() { count++ })
	s.After(2, func() { count++ })

	s.Advance()
	if count != 2 {
		t.Errorf("count = %d after tick 1, want 2", count)
	}
	s.Advance()
	if count != 3 {
		t.Errorf("count = %d after tick 2, want 3", count)
	}
}
