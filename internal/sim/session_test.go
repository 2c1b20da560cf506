package sim

import (
	"testing"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/economy"
)

func newTestSession(mode Mode, seed int64) *Session {
	s := NewSession(config.DefaultGameConfig(), mode, testGovernor(), Collaborators{})
	s.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: seed})
	return s
}

func inputFor(actions ...core.Action) core.MultiInputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	m := core.NewMultiInputFrame()
	m.SetPlayer(core.Player1, f)
	return m
}

func TestSessionDeterministic(t *testing.T) {
	script := func(tick int) core.MultiInputFrame {
		switch {
		case tick < 20:
			return inputFor(core.ActionThrust)
		case tick%7 == 0:
			return inputFor(core.ActionDrop, core.ActionRight)
		default:
			return inputFor(core.ActionRight)
		}
	}

	run := func() (*Session, core.SessionState) {
		s := newTestSession(ModeSolo, 1234)
		var st core.SessionState
		for i := 0; i < 200; i++ {
			st = s.Step(script(i))
		}
		return s, st
	}

	a, stA := run()
	b, stB := run()

	if stA != stB {
		t.Fatalf("states diverged: %+v vs %+v", stA, stB)
	}
	va, vb := a.Vehicle(core.Player1), b.Vehicle(core.Player1)
	if va.Pos != vb.Pos || va.Fuel != vb.Fuel {
		t.Errorf("vehicles diverged: %+v vs %+v", va, vb)
	}
	if len(a.Projectiles()) != len(b.Projectiles()) {
		t.Errorf("projectile counts diverged: %d vs %d", len(a.Projectiles()), len(b.Projectiles()))
	}
	if len(a.Pickups()) != len(b.Pickups()) {
		t.Errorf("pickup counts diverged: %d vs %d", len(a.Pickups()), len(b.Pickups()))
	}
}

func TestSessionPauseToggle(t *testing.T) {
	s := newTestSession(ModeSolo, 1)

	st := s.Step(inputFor(core.ActionPause))
	if !st.Paused {
		t.Fatal("pause input did not pause")
	}
	tick := s.Tick()
	s.Step(inputFor(core.ActionThrust))
	if s.Tick() != tick {
		t.Error("simulation advanced while paused")
	}

	st = s.Step(inputFor(core.ActionPause))
	if st.Paused {
		t.Fatal("second pause input did not resume")
	}
	s.Step(core.NewMultiInputFrame())
	if s.Tick() == tick {
		t.Error("simulation did not resume")
	}
}

func TestSessionDropCooldown(t *testing.T) {
	s := newTestSession(ModeSolo, 1)

	s.Step(inputFor(core.ActionDrop))
	if len(s.Projectiles()) != 1 {
		t.Fatalf("projectiles after drop = %d, want 1", len(s.Projectiles()))
	}

	// TickRate 30 gives a 7-tick cooldown; spamming drop inside it is a no-op.
	for i := 0; i < 6; i++ {
		s.Step(inputFor(core.ActionDrop))
	}
	if len(s.Projectiles()) != 1 {
		t.Errorf("projectiles inside cooldown = %d, want 1", len(s.Projectiles()))
	}

	s.Step(inputFor(core.ActionDrop))
	if len(s.Projectiles()) != 2 {
		t.Errorf("projectiles after cooldown = %d, want 2", len(s.Projectiles()))
	}
}

func duelInput(p1, p2 []core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	f1 := core.NewInputFrame()
	for _, a := range p1 {
		f1.Set(a)
	}
	m.SetPlayer(core.Player1, f1)
	f2 := core.NewInputFrame()
	for _, a := range p2 {
		f2.Set(a)
	}
	m.SetPlayer(core.Player2, f2)
	return m
}

// Both pilots act every tick, with overlapping drop cadences so same-tick
// drops happen. Two runs with the same seed must agree on everything,
// including which player's bomb sits at each projectile slot.
func TestSessionDuelDeterministic(t *testing.T) {
	script := func(tick int) core.MultiInputFrame {
		p1 := []core.Action{core.ActionRight}
		p2 := []core.Action{core.ActionLeft}
		if tick < 20 {
			p1 = append(p1, core.ActionThrust)
			p2 = append(p2, core.ActionThrust)
		}
		if tick%7 == 0 {
			p1 = append(p1, core.ActionDrop)
			p2 = append(p2, core.ActionDrop)
		}
		return duelInput(p1, p2)
	}

	run := func() *Session {
		s := newTestSession(ModeDuel, 4242)
		for i := 0; i < 200; i++ {
			s.Step(script(i))
		}
		return s
	}

	a, b := run(), run()

	if a.State() != b.State() {
		t.Errorf("states diverged: %+v vs %+v", a.State(), b.State())
	}
	for _, id := range core.PlayerOrder {
		va, vb := a.Vehicle(id), b.Vehicle(id)
		if va.Pos != vb.Pos || va.Fuel != vb.Fuel || va.Destroyed != vb.Destroyed {
			t.Errorf("player %d diverged: %+v vs %+v", id, va, vb)
		}
	}
	pa, pb := a.Projectiles(), b.Projectiles()
	if len(pa) != len(pb) {
		t.Fatalf("projectile counts diverged: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].DroppedBy != pb[i].DroppedBy || pa[i].Pos != pb[i].Pos {
			t.Errorf("projectile %d diverged: owner %d at %v vs owner %d at %v",
				i, pa[i].DroppedBy, pa[i].Pos, pb[i].DroppedBy, pb[i].Pos)
		}
	}
}

// Each pilot has an independent drop timer: simultaneous drops both land,
// and one player's cooldown never blocks the other.
func TestSessionDropCooldownPerPlayer(t *testing.T) {
	s := newTestSession(ModeDuel, 1)

	drop := []core.Action{core.ActionDrop}
	s.Step(duelInput(drop, drop))
	ps := s.Projectiles()
	if len(ps) != 2 {
		t.Fatalf("projectiles after simultaneous drops = %d, want 2", len(ps))
	}
	if ps[0].DroppedBy != core.Player1 || ps[1].DroppedBy != core.Player2 {
		t.Errorf("drop owners = %d, %d, want players 1, 2", ps[0].DroppedBy, ps[1].DroppedBy)
	}

	// A fresh run: player 1 drops first, and player 2 dropping on the very
	// next tick is not blocked by player 1's still-running timer.
	s = newTestSession(ModeDuel, 1)
	s.Step(duelInput(drop, nil))
	if n := len(s.Projectiles()); n != 1 {
		t.Fatalf("projectiles after first drop = %d, want 1", n)
	}
	s.Step(duelInput(drop, drop))
	ps = s.Projectiles()
	if len(ps) != 2 {
		t.Fatalf("projectiles after second tick = %d, want 2", len(ps))
	}
	if ps[1].DroppedBy != core.Player2 {
		t.Errorf("second drop owner = %d, want player 2", ps[1].DroppedBy)
	}
}

func TestSessionThrustBurnsFuel(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	start := s.Vehicle(core.Player1).Fuel

	s.Step(inputFor(core.ActionThrust))
	v := s.Vehicle(core.Player1)
	if v.Fuel != start-1 {
		t.Errorf("fuel = %d, want %d", v.Fuel, start-1)
	}
	if v.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v after thrust, want upward (negative)", v.Vel.Y)
	}
}

func TestSessionAutoTradeCoversDeficit(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	v := s.Vehicle(core.Player1)
	v.Fuel = 40 // 60 short of the low-fuel level
	s.Inventory().Add(economy.ItemMedicine, 3)

	stBefore := s.State()
	s.Step(inputFor(core.ActionTrade))

	if got := s.Vehicle(core.Player1).Fuel; got <= 40 {
		t.Errorf("fuel = %d after trade, want more than 40", got)
	}
	if got := s.State(); got.Score >= stBefore.Score {
		t.Errorf("score = %d after trade, want deducted below %d", got.Score, stBefore.Score)
	}
	if got := s.Inventory().Count(economy.ItemMedicine); got >= 3 {
		t.Errorf("medicine count = %d after trade, want fewer than 3", got)
	}
}

func TestSessionTradeNoopWithoutDeficit(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	s.Inventory().Add(economy.ItemMedicine, 3)
	fuel := s.Vehicle(core.Player1).Fuel

	s.Step(inputFor(core.ActionTrade))
	if got := s.Vehicle(core.Player1).Fuel; got != fuel {
		t.Errorf("fuel changed on a no-deficit trade: %d -> %d", fuel, got)
	}
	if got := s.Inventory().Count(economy.ItemMedicine); got != 3 {
		t.Errorf("cargo sold with no deficit: %d left", got)
	}
}

func TestSessionEndsWhenVehicleDestroyed(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	s.Vehicle(core.Player1).Destroyed = true

	st := s.Step(core.NewMultiInputFrame())
	if !st.GameOver {
		t.Fatal("session kept running with a wrecked vehicle")
	}

	// Further steps are no-ops.
	tick := s.Tick()
	s.Step(inputFor(core.ActionThrust))
	if s.Tick() != tick {
		t.Error("simulation advanced after game over")
	}
}

func TestSessionDuelSpawnsSecondVehicle(t *testing.T) {
	solo := newTestSession(ModeSolo, 1)
	if solo.Vehicle(core.Player2) != nil {
		t.Error("solo session spawned a second vehicle")
	}

	duel := newTestSession(ModeDuel, 1)
	if duel.Vehicle(core.Player2) == nil {
		t.Fatal("duel session missing the second vehicle")
	}
	if duel.Vehicle(core.Player2).Pos.X <= duel.Vehicle(core.Player1).Pos.X {
		t.Error("second vehicle should start on the far side")
	}
}

func TestSessionSeedsOneMedal(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	medals := 0
	for _, pk := range s.Pickups() {
		if pk.Type == economy.ItemMedal {
			medals++
		}
	}
	if medals != 1 {
		t.Errorf("medal pickups = %d, want exactly 1", medals)
	}
}

func TestSessionResetRestarts(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	for i := 0; i < 50; i++ {
		s.Step(inputFor(core.ActionThrust))
	}
	if s.Tick() == 0 {
		t.Fatal("session did not advance")
	}

	s.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 99})
	if s.Tick() != 0 {
		t.Errorf("tick = %d after Reset, want 0", s.Tick())
	}
	if got := s.Vehicle(core.Player1).Fuel; got != s.cfg.Physics.StartFuel {
		t.Errorf("fuel = %d after Reset, want %d", got, s.cfg.Physics.StartFuel)
	}
	if len(s.Projectiles()) != 0 {
		t.Error("projectiles survived Reset")
	}
}

func TestSessionReportIncludesDeliveries(t *testing.T) {
	s := newTestSession(ModeSolo, 1)
	s.delivered[economy.ItemMedicine] = 2
	s.delivered[economy.ItemMedal] = 1
	s.gameOver = true

	rep := s.Report()
	wantItems := 2*120 + 500
	if rep.ItemsTotal != wantItems {
		t.Errorf("ItemsTotal = %d, want %d", rep.ItemsTotal, wantItems)
	}
	if rep.MilestoneBonus != 2500 {
		t.Errorf("MilestoneBonus = %d, want 2500", rep.MilestoneBonus)
	}

	// The report is computed once and cached.
	s.delivered[economy.ItemGrain] = 10
	if again := s.Report(); again != rep {
		t.Error("report recomputed after first read")
	}
}

func TestSessionKillScoring(t *testing.T) {
	s := newTestSession(ModeDuel, 1)
	s.RecordKill(core.Player1)
	if got := s.State().Score; got != 500 {
		t.Errorf("score after kill = %d, want 500", got)
	}
	s.RecordSelfHit(core.Player1)
	if got := s.State().Score; got != 400 {
		t.Errorf("score after self hit = %d, want 400", got)
	}
}
