package perf

import (
	"testing"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/settings"
)

type fakeStore struct {
	perf  settings.PerfSettings
	saves int
}

func (f *fakeStore) LoadPerf() settings.PerfSettings  { return f.perf }
func (f *fakeStore) SavePerf(p settings.PerfSettings) { f.perf = p; f.saves++ }

func testGovernorConfig() config.GovernorConfig {
	return config.GovernorConfig{
		WarmupTicks:   3,
		WindowSize:    4,
		DowngradeFPS:  30,
		UpgradeFPS:    50,
		CooldownTicks: 5,
	}
}

func feed(g *Governor, fps float64, n int) {
	for i := 0; i < n; i++ {
		g.Sample(fps)
	}
}

func TestFirstRunHintDesktop(t *testing.T) {
	store := &fakeStore{}
	g := NewGovernor(testGovernorConfig(), store, HintDesktop)

	if g.Level() != LevelUltra {
		t.Errorf("Level = %v, want ultra on desktop first run", g.Level())
	}
	if store.saves != 1 {
		t.Errorf("first-run defaults saved %d times, want 1", store.saves)
	}
	if !store.perf.Initialized {
		t.Error("persisted record not marked initialized")
	}
}

func TestFirstRunHintConstrained(t *testing.T) {
	store := &fakeStore{}
	g := NewGovernor(testGovernorConfig(), store, HintConstrained)
	if g.Level() != LevelMedium {
		t.Errorf("Level = %v, want medium on constrained first run", g.Level())
	}
}

func TestHintIgnoredOnceInitialized(t *testing.T) {
	store := &fakeStore{perf: settings.PerfSettings{
		Level: int(LevelLow), AutoAdjust: false, Pinned: true, Initialized: true,
	}}
	g := NewGovernor(testGovernorConfig(), store, HintDesktop)

	if g.Level() != LevelLow {
		t.Errorf("Level = %v, want persisted low", g.Level())
	}
	if g.AutoAdjust() || !g.Pinned() {
		t.Error("persisted auto-adjust/pinned flags not restored")
	}
	if store.saves != 0 {
		t.Errorf("initialized record rewritten %d times on load", store.saves)
	}
}

func TestWarmupSamplesDiscarded(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)

	// Three warm-up samples plus three window samples: one short of a full
	// window, so a stalled scene load never triggers a downgrade.
	feed(g, 5, 6)
	if g.Level() != LevelUltra {
		t.Fatalf("Level = %v after partial window, want ultra", g.Level())
	}

	g.Sample(5)
	if g.Level() != LevelHigh {
		t.Errorf("Level = %v after full low window, want high", g.Level())
	}
}

func TestDowngradeOnLowMean(t *testing.T) {
	store := &fakeStore{}
	g := NewGovernor(testGovernorConfig(), store, HintDesktop)

	feed(g, 20, 3+4)
	if g.Level() != LevelHigh {
		t.Fatalf("Level = %v, want high after one downgrade", g.Level())
	}
	if store.perf.Level != int(LevelHigh) {
		t.Errorf("adjustment not persisted: stored level %d", store.perf.Level)
	}
}

func TestCooldownBlocksBackToBackAdjustments(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)
	feed(g, 20, 3+4)
	if g.Level() != LevelHigh {
		t.Fatal("expected one downgrade")
	}

	// The next full window lands while the cooldown is still running.
	feed(g, 20, 4)
	if g.Level() != LevelHigh {
		t.Fatalf("Level = %v, downgraded during cooldown", g.Level())
	}

	g.Sample(20)
	if g.Level() != LevelMedium {
		t.Errorf("Level = %v, want medium once the cooldown expired", g.Level())
	}
}

func TestUpgradeOnHighMean(t *testing.T) {
	store := &fakeStore{perf: settings.PerfSettings{
		Level: int(LevelMedium), AutoAdjust: true, Initialized: true,
	}}
	g := NewGovernor(testGovernorConfig(), store, HintDesktop)

	feed(g, 60, 3+4)
	if g.Level() != LevelHigh {
		t.Errorf("Level = %v, want high after sustained headroom", g.Level())
	}
}

func TestNoUpgradePastUltra(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)
	feed(g, 120, 3+20)
	if g.Level() != LevelUltra {
		t.Errorf("Level = %v, walked past the top of the ladder", g.Level())
	}
}

func TestNoDowngradePastMinimal(t *testing.T) {
	store := &fakeStore{perf: settings.PerfSettings{
		Level: int(LevelMinimal), AutoAdjust: true, Initialized: true,
	}}
	g := NewGovernor(testGovernorConfig(), store, HintDesktop)
	feed(g, 5, 3+20)
	if g.Level() != LevelMinimal {
		t.Errorf("Level = %v, walked past the bottom of the ladder", g.Level())
	}
}

func TestPinSuppressesUpgradeNotDowngrade(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)
	g.SetLevel(LevelMedium)
	if !g.Pinned() {
		t.Fatal("SetLevel should pin the level")
	}

	feed(g, 120, 3+8)
	if g.Level() != LevelMedium {
		t.Fatalf("Level = %v, pinned level upgraded automatically", g.Level())
	}

	// A genuinely overloaded session still steps down, pin or not.
	feed(g, 10, 20)
	if g.Level() == LevelMedium {
		t.Error("pinned level never downgraded under sustained low FPS")
	}
}

func TestDisableAutoAdjust(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)
	g.DisableAutoAdjust()

	feed(g, 5, 3+20)
	if g.Level() != LevelUltra {
		t.Errorf("Level = %v, changed while auto-adjust disabled", g.Level())
	}

	g.EnableAutoAdjust()
	if g.Pinned() {
		t.Error("EnableAutoAdjust should un-pin")
	}
}

func TestSetLevelClamps(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), &fakeStore{}, HintDesktop)
	g.SetLevel(QualityLevel(99))
	if g.Level() != LevelMinimal {
		t.Errorf("Level = %v, want clamp to minimal", g.Level())
	}
	g.SetLevel(QualityLevel(-3))
	if g.Level() != LevelUltra {
		t.Errorf("Level = %v, want clamp to ultra", g.Level())
	}
}

func TestNilStore(t *testing.T) {
	g := NewGovernor(testGovernorConfig(), nil, HintConstrained)
	if g.Level() != LevelMedium {
		t.Errorf("Level = %v, want medium", g.Level())
	}
	// Adjustments must not panic without a store.
	feed(g, 5, 3+4)
	if g.Level() != LevelLow {
		t.Errorf("Level = %v, want low", g.Level())
	}
}

func TestParseLevel(t *testing.T) {
	for l := LevelUltra; l < LevelCount; l++ {
		got, ok := ParseLevel(l.String())
		if !ok || got != l {
			t.Errorf("ParseLevel(%q) = (%v, %v)", l.String(), got, ok)
		}
	}
	if _, ok := ParseLevel("potato"); ok {
		t.Error("ParseLevel accepted an unknown name")
	}
}

func TestLadderMonotonic(t *testing.T) {
	for l := LevelHigh; l < LevelCount; l++ {
		cur, prev := PresetFor(l), PresetFor(l-1)
		if cur.ParticleMultiplier > prev.ParticleMultiplier {
			t.Errorf("level %v particle multiplier rises down the ladder", l)
		}
		if cur.CannonDensityMultiplier > prev.CannonDensityMultiplier {
			t.Errorf("level %v density multiplier rises down the ladder", l)
		}
		if cur.CollisionCheckIntervalMs < prev.CollisionCheckIntervalMs {
			t.Errorf("level %v collision interval shrinks down the ladder", l)
		}
		if cur.MaxActiveProjectiles > prev.MaxActiveProjectiles {
			t.Errorf("level %v projectile cap rises down the ladder", l)
		}
	}
}
