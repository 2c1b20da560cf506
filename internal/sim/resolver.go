package sim

import (
	"math"
	"math/rand"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/creatures"
	"github.com/oliban/lander-game-sub002/internal/perf"
	"github.com/oliban/lander-game-sub002/internal/world"
)

// DestroyedEntity records one entity kill for the outcome report.
type DestroyedEntity struct {
	Name   string
	Points int
	Pos    core.Vec2
}

// ResolveOutcome accumulates the events of one resolver pass.
type ResolveOutcome struct {
	Destroyed  []DestroyedEntity
	MatchEnded bool
	Winner     core.PlayerID
}

// Resolver tests every active projectile against vehicles, destructible
// entity collections, and terrain, in a strict fixed order, and dispatches
// explosion, scoring and state-transition side effects exactly once per hit.
type Resolver struct {
	cfg      config.ProjectileConfig
	world    *world.World
	governor *perf.Governor
	shark    *creatures.Shark
	rng      *rand.Rand

	audio   AudioCue
	effects ExplosionEffects
	popup   PointsPopup
	score   ScoreSink

	duel          bool
	killCountMode bool
	killThreshold int
}

// NewResolver creates a collision resolver. shark may be nil in worlds
// without wildlife water.
func NewResolver(cfg config.ProjectileConfig, w *world.World, gov *perf.Governor, shark *creatures.Shark, rng *rand.Rand, collab Collaborators, score ScoreSink) *Resolver {
	collab = collab.orNoop()
	return &Resolver{
		cfg:      cfg,
		world:    w,
		governor: gov,
		shark:    shark,
		rng:      rng,
		audio:    collab.Audio,
		effects:  collab.Effects,
		popup:    collab.Popup,
		score:    score,
	}
}

// SetDuelMode enables opposing-vehicle hit tests. killThreshold > 0 enables
// the kill-count match-end rule.
func (r *Resolver) SetDuelMode(killThreshold int) {
	r.duel = true
	r.killCountMode = killThreshold > 0
	r.killThreshold = killThreshold
}

// Step runs one resolver pass over the active projectiles, in reverse index
// order so spent projectiles can be removed in place. Returns the surviving
// projectiles and the pass outcome.
func (r *Resolver) Step(projectiles []*Projectile, vehicles map[core.PlayerID]*Vehicle, nowMs float64) ([]*Projectile, ResolveOutcome) {
	var out ResolveOutcome
	preset := r.governor.Preset() // Re-read every pass; the governor may swap it between frames

	for i := len(projectiles) - 1; i >= 0; i-- {
		p := projectiles[i]

		// (1) Spent or escaped projectiles are dropped silently.
		if p.HasExploded || p.Pos.Y > r.cfg.WorldBottomY {
			projectiles = append(projectiles[:i], projectiles[i+1:]...)
			continue
		}

		// Sinking bombs are underwater and out of play for hit tests; they
		// stay in the list as shark food until step 1 discards them.
		if p.Sinking {
			continue
		}

		// (2) Opposing vehicle, duel modes only.
		if r.duel && r.hitOpponent(p, vehicles, &out) {
			continue
		}

		// (3) Own vehicle, outside the post-drop grace window.
		if !p.InGracePeriod(float64(r.cfg.GraceMs)) && r.hitSelf(p, vehicles) {
			continue
		}

		// (4) Ground entity sweep, only near the ground and only as often as
		// the active preset's collision-check interval allows.
		terrainY := r.world.Terrain.HeightAt(p.Pos.X)
		if terrainY-p.Pos.Y <= r.cfg.GroundBand {
			if p.sweepDue(nowMs, preset.CollisionCheckIntervalMs) && r.sweepCategories(p, r.world.GroundCategories(), &out) {
				continue
			}
		}

		// (5) Aircraft are not ground-relative: tested every tick.
		if r.sweepCategories(p, [][]world.Destructible{r.world.AirborneCategory()}, &out) {
			continue
		}

		// (6) Terrain contact, unconditionally.
		if p.Pos.Y >= terrainY {
			r.terrainImpact(p, preset)
		}
	}

	return projectiles, out
}

// hitOpponent explodes the projectile on the opposing player's vehicle and
// attributes the kill to the dropper.
func (r *Resolver) hitOpponent(p *Projectile, vehicles map[core.PlayerID]*Vehicle, out *ResolveOutcome) bool {
	opponent := core.Player1
	if p.DroppedBy == core.Player1 {
		opponent = core.Player2
	}
	v, ok := vehicles[opponent]
	if !ok || v.Destroyed {
		return false
	}
	if p.Pos.DistanceTo(v.Pos) > r.cfg.HitRadius {
		return false
	}

	p.HasExploded = true
	dropper := vehicles[p.DroppedBy]
	if dropper != nil {
		dropper.Kills++
	}
	r.score.RecordKill(p.DroppedBy)
	r.effects.SpawnVisualEffect("vehicle-explosion", v.Pos)
	r.audio.PlaySound("explosion-big", 1.0)

	if r.killCountMode && dropper != nil && dropper.Kills >= r.killThreshold {
		out.MatchEnded = true
		out.Winner = p.DroppedBy
	}
	return true
}

// hitSelf explodes the projectile on the dropper's own vehicle.
func (r *Resolver) hitSelf(p *Projectile, vehicles map[core.PlayerID]*Vehicle) bool {
	v, ok := vehicles[p.DroppedBy]
	if !ok || v.Destroyed {
		return false
	}
	if p.Pos.DistanceTo(v.Pos) > r.cfg.HitRadius {
		return false
	}

	p.HasExploded = true
	r.score.RecordSelfHit(p.DroppedBy)
	r.effects.SpawnVisualEffect("vehicle-explosion", v.Pos)
	r.audio.PlaySound("explosion-big", 1.0)
	return true
}

// sweepCategories tests the projectile point against each category in the
// fixed priority order. The first match wins and short-circuits the
// remaining categories for this projectile this frame. A cheap horizontal
// pre-filter bounds the cost with many candidates.
func (r *Resolver) sweepCategories(p *Projectile, categories [][]world.Destructible, out *ResolveOutcome) bool {
	for _, category := range categories {
		for i := len(category) - 1; i >= 0; i-- {
			e := category[i]
			if e.Destroyed() {
				continue
			}
			if math.Abs(e.Position().X-p.Pos.X) > r.cfg.PrefilterCutoffX {
				continue
			}
			if !e.Bounds().ContainsPoint(p.Pos.X, p.Pos.Y) {
				continue
			}
			r.destroy(p, e, out)
			return true
		}
	}
	return false
}

// destroy explodes both projectile and entity and dispatches the side
// effects. The entity's Explode is idempotent, so a projectile can never pay
// out twice.
func (r *Resolver) destroy(p *Projectile, e world.Destructible, out *ResolveOutcome) {
	p.HasExploded = true
	name, points := e.Explode()
	r.score.AddPoints(p.DroppedBy, points)
	r.popup.ShowDestructionPoints(e.Position(), points, name)
	r.audio.PlaySound("explosion", 0.9)
	out.Destroyed = append(out.Destroyed, DestroyedEntity{Name: name, Points: points, Pos: e.Position()})
}

// terrainImpact handles ground contact: a splash over water (with a chance
// of an eligible shark in range eating the bomb outright) or an explosion
// with a persistent scorch mark over land. A splashed bomb is not spent; it
// keeps sinking as live shark food until it leaves world bounds.
func (r *Resolver) terrainImpact(p *Projectile, preset *perf.Preset) {
	if r.world.Terrain.IsWater(p.Pos.X) {
		if r.shark != nil && r.shark.CanEatBomb() && r.shark.InRange(p.Pos) && r.rng.Float64() < r.cfg.SharkEatChance {
			p.HasExploded = true
			r.shark.EatBomb()
			r.effects.SpawnVisualEffect("gulp", p.Pos)
			r.audio.PlaySound("gulp", 0.8)
			return
		}
		p.Sinking = true
		r.effects.SpawnVisualEffect("splash", p.Pos)
		r.audio.PlaySoundIfNotPlaying("splash")
		return
	}

	p.HasExploded = true
	if preset.ScorchMarks {
		r.world.Terrain.AddScorch(p.Pos)
	}
	r.effects.SpawnVisualEffect("explosion", p.Pos)
	r.audio.PlaySound("explosion", 0.9)
}
