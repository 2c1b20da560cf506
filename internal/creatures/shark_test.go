package creatures

import (
	"math"
	"testing"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
)

func testSharkConfig() config.SharkConfig {
	return config.SharkConfig{
		ModeratePollution: 0.4,
		LethalPollution:   0.8,
		FatalFeedCount:    5,
		DetectRadius:      40,
		PatrolSpeed:       0.6,
		CoughSpeedFactor:  0.5,
		FloatSpeed:        0.5,
		FumeDelayTicks:    2,
		FumePeriodTicks:   3,
		BubblePeriodTicks: 2,
	}
}

func newTestShark() *Shark {
	return NewShark(testSharkConfig(), core.Vec2{X: 100, Y: 220}, 0, 400, 180)
}

func TestSharkPollutionTransitions(t *testing.T) {
	s := newTestShark()

	s.Update(0.5, nil)
	if s.State() != SharkCoughing {
		t.Fatalf("state at moderate pollution = %v, want coughing", s.State())
	}

	// Coughing recovers when the water clears.
	s.Update(0.1, nil)
	if s.State() != SharkAlive {
		t.Fatalf("state after pollution cleared = %v, want alive", s.State())
	}

	s.Update(0.9, nil)
	if s.State() != SharkDead {
		t.Fatalf("state at lethal pollution = %v, want dead", s.State())
	}
}

func TestSharkDeadIsTerminal(t *testing.T) {
	s := newTestShark()
	s.Update(0.9, nil)
	if s.State() != SharkDead {
		t.Fatal("shark should be dead")
	}

	for i := 0; i < 10; i++ {
		s.Update(0, nil)
	}
	if s.State() != SharkDead {
		t.Errorf("dead shark revived: %v", s.State())
	}
	if s.EatBomb() {
		t.Error("dead shark ate a bomb")
	}
}

func TestSharkFatalFeedCount(t *testing.T) {
	s := newTestShark()

	for i := 0; i < 4; i++ {
		if !s.EatBomb() {
			t.Fatalf("feed %d refused", i+1)
		}
		if s.State() == SharkDead {
			t.Fatalf("shark died after %d feedings", i+1)
		}
	}

	if !s.EatBomb() {
		t.Fatal("fatal feeding refused")
	}
	if s.State() != SharkDead {
		t.Errorf("state after fatal feed = %v, want dead", s.State())
	}
	if s.FoodEaten() != 5 {
		t.Errorf("FoodEaten = %d, want 5", s.FoodEaten())
	}
	if s.EatBomb() {
		t.Error("shark ate past the fatal count")
	}
}

func TestSharkOverfeedKillsMidCough(t *testing.T) {
	s := newTestShark()
	s.Update(0.5, nil)
	if s.State() != SharkCoughing {
		t.Fatal("shark should be coughing")
	}
	for i := 0; i < 5; i++ {
		s.EatBomb()
	}
	if s.State() != SharkDead {
		t.Errorf("state = %v, want dead", s.State())
	}
}

func TestSharkFloatsToSurface(t *testing.T) {
	s := newTestShark()
	s.Update(0.9, nil) // dies, then starts floating on the same tick
	s.Update(0, nil)
	s.Update(0, nil)

	if got := s.FloatProgress(); got != 1 {
		t.Fatalf("FloatProgress = %v, want 1", got)
	}
	if got := s.Position().Y; got != 180 {
		t.Errorf("resting Y = %v, want surface 180", got)
	}
	if got := s.Rotation(); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("resting rotation = %v, want belly-up pi", got)
	}
}

func TestSharkFloatProgressMonotonic(t *testing.T) {
	cfg := testSharkConfig()
	cfg.FloatSpeed = 0.3
	s := NewShark(cfg, core.Vec2{X: 100, Y: 220}, 0, 400, 180)
	s.Update(0.9, nil)

	prev := s.FloatProgress()
	for i := 0; i < 6; i++ {
		s.Update(0, nil)
		got := s.FloatProgress()
		if got < prev {
			t.Fatalf("float progress regressed: %v -> %v", prev, got)
		}
		if got > 1 {
			t.Fatalf("float progress overshot: %v", got)
		}
		prev = got
	}
}

func TestSharkFumeSchedule(t *testing.T) {
	s := newTestShark()
	fumes := 0
	s.OnFume = func(core.Vec2) { fumes++ }

	s.Update(0.9, nil)
	// Two more ticks complete the float, then the delay and period gate
	// the vents: surface ticks 2 and 5 fire within the next six.
	for i := 0; i < 8; i++ {
		s.Update(0, nil)
	}
	if fumes != 2 {
		t.Errorf("fume bursts = %d, want 2", fumes)
	}
}

func TestSharkBubblesWhileCoughing(t *testing.T) {
	s := newTestShark()
	bubbles := 0
	s.OnBubbles = func(core.Vec2) { bubbles++ }

	for i := 0; i < 4; i++ {
		s.Update(0.5, nil)
	}
	if bubbles != 2 {
		t.Errorf("bubble bursts = %d, want 2 over 4 coughing ticks", bubbles)
	}

	bubbles = 0
	for i := 0; i < 4; i++ {
		s.Update(0, nil)
	}
	if bubbles != 0 {
		t.Errorf("healthy shark emitted %d bubble bursts", bubbles)
	}
}

func TestSharkChasesFood(t *testing.T) {
	s := newTestShark()
	start := s.Position()
	food := []core.Vec2{{X: start.X + 20, Y: start.Y - 10}}

	s.Update(0, food)
	moved := s.Position()
	if moved.DistanceTo(food[0]) >= start.DistanceTo(food[0]) {
		t.Error("shark did not close on in-range food")
	}
	if moved.X <= start.X || moved.Y >= start.Y {
		t.Errorf("shark moved away from food: %v -> %v", start, moved)
	}
}

func TestSharkIgnoresOutOfRangeFood(t *testing.T) {
	s := newTestShark()
	start := s.Position()
	food := []core.Vec2{{X: start.X + 500, Y: start.Y}}

	s.Update(0, food)
	// Out of detection range: the shark patrols instead, at full speed.
	if got := s.Position().Y; got != start.Y {
		t.Errorf("patrolling shark changed depth: %v -> %v", start.Y, got)
	}
	if got := s.Position().X; got != start.X+0.6 {
		t.Errorf("patrol X = %v, want %v", got, start.X+0.6)
	}
}

func TestSharkCoughingSlows(t *testing.T) {
	healthy := newTestShark()
	healthy.Update(0, nil)
	healthyDX := healthy.Position().X - 100

	coughing := newTestShark()
	coughing.Update(0.5, nil)
	coughingDX := coughing.Position().X - 100

	if coughingDX >= healthyDX {
		t.Errorf("coughing shark moved %v, healthy %v; want slower", coughingDX, healthyDX)
	}
	if math.Abs(coughingDX-healthyDX*0.5) > 1e-9 {
		t.Errorf("coughing speed = %v, want half of %v", coughingDX, healthyDX)
	}
}

func TestSharkInRange(t *testing.T) {
	s := newTestShark()
	if !s.InRange(core.Vec2{X: 130, Y: 220}) {
		t.Error("point at distance 30 reported out of range")
	}
	if s.InRange(core.Vec2{X: 200, Y: 220}) {
		t.Error("point at distance 100 reported in range")
	}
}
