// Package sim implements the per-tick simulation core: projectile physics,
// the collision resolver, the deferred-effect scheduler and the session that
// owns and orchestrates every subsystem.
package sim

import "github.com/oliban/lander-game-sub002/internal/core"

// AudioCue is the fire-and-forget sound collaborator. Implementations never
// block and never fail observably to the simulation.
type AudioCue interface {
	PlaySound(key string, volume float64)
	PlaySoundIfNotPlaying(key string)
}

// ExplosionEffects is the fire-and-forget visual effect collaborator.
// The core does not await or inspect results.
type ExplosionEffects interface {
	SpawnVisualEffect(kind string, pos core.Vec2)
}

// PointsPopup requests a floating-text score display.
type PointsPopup interface {
	ShowDestructionPoints(pos core.Vec2, points int, name string)
}

// ScoreSink receives scoring events from the collision resolver.
type ScoreSink interface {
	AddPoints(player core.PlayerID, points int)
	RecordKill(killer core.PlayerID)
	RecordSelfHit(player core.PlayerID)
}

// Collaborators bundles the presentation-side interfaces a session needs.
// Nil fields are replaced with no-op implementations.
type Collaborators struct {
	Audio   AudioCue
	Effects ExplosionEffects
	Popup   PointsPopup
}

func (c Collaborators) orNoop() Collaborators {
	if c.Audio == nil {
		c.Audio = NopAudio{}
	}
	if c.Effects == nil {
		c.Effects = NopEffects{}
	}
	if c.Popup == nil {
		c.Popup = NopPopup{}
	}
	return c
}

// NopAudio discards all sound cues.
type NopAudio struct{}

func (NopAudio) PlaySound(string, float64)    {}
func (NopAudio) PlaySoundIfNotPlaying(string) {}

// NopEffects discards all visual effects.
type NopEffects struct{}

func (NopEffects) SpawnVisualEffect(string, core.Vec2) {}

// NopPopup discards all score popups.
type NopPopup struct{}

func (NopPopup) ShowDestructionPoints(core.Vec2, int, string) {}
