package perf

import (
	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/settings"
)

// SettingsStore is the narrow persistence surface the governor needs.
// Implemented by settings.Store; tests supply an in-memory fake.
type SettingsStore interface {
	LoadPerf() settings.PerfSettings
	SavePerf(settings.PerfSettings)
}

// DeviceHint seeds the first-run quality level.
type DeviceHint int

const (
	// HintDesktop starts at full fidelity.
	HintDesktop DeviceHint = iota
	// HintConstrained (small terminal, remote session) starts mid-ladder.
	HintConstrained
)

// Governor observes measured FPS and walks the quality ladder in closed loop.
// It is the only component allowed to change the current preset; everyone else
// re-reads Preset() each frame.
type Governor struct {
	cfg   config.GovernorConfig
	store SettingsStore

	level      QualityLevel
	autoAdjust bool
	pinned     bool

	warmupLeft   int
	window       []float64
	cooldownLeft int
}

// NewGovernor creates a governor, restoring persisted settings.
// First-run defaults are inferred once from the device hint and saved; they are
// never overwritten automatically on later runs.
func NewGovernor(cfg config.GovernorConfig, store SettingsStore, hint DeviceHint) *Governor {
	g := &Governor{
		cfg:        cfg,
		store:      store,
		autoAdjust: true,
		warmupLeft: cfg.WarmupTicks,
		window:     make([]float64, 0, cfg.WindowSize),
	}

	saved := settings.DefaultPerfSettings()
	if store != nil {
		saved = store.LoadPerf()
	}
	if !saved.Initialized {
		saved.Level = int(initialLevelFor(hint))
		saved.AutoAdjust = true
		saved.Pinned = false
		saved.Initialized = true
		if store != nil {
			store.SavePerf(saved)
		}
	}
	g.level = QualityLevel(core.Clamp(saved.Level, 0, LevelCount-1))
	g.autoAdjust = saved.AutoAdjust
	g.pinned = saved.Pinned
	return g
}

func initialLevelFor(hint DeviceHint) QualityLevel {
	if hint == HintConstrained {
		return LevelMedium
	}
	return LevelUltra
}

// Preset returns the currently active preset by reference.
func (g *Governor) Preset() *Preset {
	return PresetFor(g.level)
}

// Level returns the current quality level.
func (g *Governor) Level() QualityLevel {
	return g.level
}

// Pinned reports whether the user has pinned the current level.
func (g *Governor) Pinned() bool {
	return g.pinned
}

// AutoAdjust reports whether automatic adjustment is enabled.
func (g *Governor) AutoAdjust() bool {
	return g.autoAdjust
}

// SetLevel selects a level manually and pins it.
// Pinning suppresses automatic upgrades; automatic downgrades still apply.
func (g *Governor) SetLevel(level QualityLevel) {
	g.level = QualityLevel(core.Clamp(int(level), 0, LevelCount-1))
	g.pinned = true
	g.resetSampling()
	g.persist()
}

// EnableAutoAdjust re-enables automatic adjustment and un-pins the level.
func (g *Governor) EnableAutoAdjust() {
	g.autoAdjust = true
	g.pinned = false
	g.persist()
}

// DisableAutoAdjust stops all automatic level changes.
func (g *Governor) DisableAutoAdjust() {
	g.autoAdjust = false
	g.persist()
}

// Sample feeds one frame's measured FPS into the governor.
// Samples taken during the warm-up window are discarded so a scene-load stall
// cannot trigger a downgrade.
func (g *Governor) Sample(fps float64) {
	if g.warmupLeft > 0 {
		g.warmupLeft--
		return
	}
	if g.cooldownLeft > 0 {
		g.cooldownLeft--
	}

	g.window = append(g.window, fps)
	if len(g.window) < g.cfg.WindowSize {
		return
	}

	mean := 0.0
	for _, v := range g.window {
		mean += v
	}
	mean /= float64(len(g.window))

	// Rolling window: drop the oldest sample unless an adjustment resets it.
	copy(g.window, g.window[1:])
	g.window = g.window[:len(g.window)-1]

	if g.cooldownLeft > 0 || !g.autoAdjust {
		return
	}

	switch {
	case mean < g.cfg.DowngradeFPS && g.level < LevelCount-1:
		g.level++
		g.adjusted()
	case mean > g.cfg.UpgradeFPS && !g.pinned && g.level > LevelUltra:
		g.level--
		g.adjusted()
	}
}

func (g *Governor) adjusted() {
	g.resetSampling()
	g.cooldownLeft = g.cfg.CooldownTicks
	g.persist()
}

func (g *Governor) resetSampling() {
	g.window = g.window[:0]
}

func (g *Governor) persist() {
	if g.store == nil {
		return
	}
	g.store.SavePerf(settings.PerfSettings{
		Level:       int(g.level),
		AutoAdjust:  g.autoAdjust,
		Pinned:      g.pinned,
		Initialized: true,
	})
}
