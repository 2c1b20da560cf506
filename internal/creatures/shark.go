// Package creatures implements wildlife behavior state machines.
package creatures

import (
	"math"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
)

// SharkState is the shark's lifecycle state.
type SharkState int

const (
	SharkAlive SharkState = iota
	SharkCoughing
	// SharkDead is terminal: no pollution or feeding transitions apply.
	SharkDead
)

// String returns a human-readable state name.
func (s SharkState) String() string {
	switch s {
	case SharkAlive:
		return "alive"
	case SharkCoughing:
		return "coughing"
	case SharkDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Shark patrols a stretch of water, chases dropped food, coughs in polluted
// water and dies either from lethal pollution or from overfeeding. Dead sharks
// float belly-up to the surface and eventually vent toxic fumes.
type Shark struct {
	cfg config.SharkConfig

	state     SharkState
	foodEaten int

	pos      core.Vec2
	rotation float64
	dir      float64 // Patrol direction: +1 or -1
	minX     float64
	maxX     float64
	surfaceY float64
	deathPos core.Vec2
	deathRot float64

	// floatProgress runs 0..1 once dead, monotonically, then holds.
	floatProgress float64
	surfaceTicks  int
	tick          int

	// Fire-and-forget visual hooks, wired by the session. May be nil.
	OnBubbles func(pos core.Vec2)
	OnFume    func(pos core.Vec2)
}

// NewShark creates a live shark patrolling between minX and maxX at depth y.
func NewShark(cfg config.SharkConfig, pos core.Vec2, minX, maxX, surfaceY float64) *Shark {
	return &Shark{
		cfg:      cfg,
		state:    SharkAlive,
		pos:      pos,
		dir:      1,
		minX:     minX,
		maxX:     maxX,
		surfaceY: surfaceY,
	}
}

// State returns the current lifecycle state.
func (s *Shark) State() SharkState {
	return s.state
}

// Position returns the shark's current position.
func (s *Shark) Position() core.Vec2 {
	return s.pos
}

// Rotation returns the shark's body rotation in radians.
func (s *Shark) Rotation() float64 {
	return s.rotation
}

// FoodEaten returns how many bombs the shark has swallowed.
func (s *Shark) FoodEaten() int {
	return s.foodEaten
}

// FloatProgress returns the dead-float interpolation progress in [0,1].
func (s *Shark) FloatProgress() float64 {
	return s.floatProgress
}

// CanEatBomb reports whether the shark is able to swallow another bomb:
// it must not be dead and must not have reached the fatal feed count.
func (s *Shark) CanEatBomb() bool {
	return s.state != SharkDead && s.foodEaten < s.cfg.FatalFeedCount
}

// InRange reports whether a position is within the shark's detection radius.
func (s *Shark) InRange(pos core.Vec2) bool {
	return s.pos.DistanceTo(pos) <= s.cfg.DetectRadius
}

// EatBomb swallows a bomb. Returns false if the shark cannot eat. Reaching
// the fatal feed count kills the shark through the same terminal path as
// pollution death, even mid-cough.
func (s *Shark) EatBomb() bool {
	if !s.CanEatBomb() {
		return false
	}
	s.foodEaten++
	if s.foodEaten >= s.cfg.FatalFeedCount {
		s.die()
	}
	return true
}

// Update advances the shark one tick. State transitions are evaluated before
// motion: lethal pollution kills unconditionally, moderate pollution toggles
// coughing. food lists chase targets (sinking bombs) in the water.
func (s *Shark) Update(pollution float64, food []core.Vec2) {
	s.tick++

	if s.state != SharkDead {
		switch {
		case pollution >= s.cfg.LethalPollution:
			s.die()
		case pollution >= s.cfg.ModeratePollution:
			if s.state == SharkAlive {
				s.state = SharkCoughing
			}
		default:
			if s.state == SharkCoughing {
				s.state = SharkAlive
			}
		}
	}

	if s.state == SharkDead {
		s.updateDead()
		return
	}

	s.updateMotion(food)

	if s.state == SharkCoughing && s.cfg.BubblePeriodTicks > 0 && s.tick%s.cfg.BubblePeriodTicks == 0 {
		if s.OnBubbles != nil {
			s.OnBubbles(s.pos)
		}
	}
}

// die is the single terminal path shared by pollution and overfeeding death.
func (s *Shark) die() {
	s.state = SharkDead
	s.floatProgress = 0
	s.surfaceTicks = 0
	s.deathPos = s.pos
	s.deathRot = s.rotation
}

// updateMotion chases the nearest in-range food, or patrols between the
// fixed bounds when none is detectable. Coughing only slows the shark down.
func (s *Shark) updateMotion(food []core.Vec2) {
	speed := s.cfg.PatrolSpeed
	if s.state == SharkCoughing {
		speed *= s.cfg.CoughSpeedFactor
	}

	if target, ok := s.nearestFood(food); ok {
		dx := target.X - s.pos.X
		dy := target.Y - s.pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 1e-9 {
			s.pos.X += dx / dist * speed
			s.pos.Y += dy / dist * speed
			s.rotation = math.Atan2(dy, dx)
		}
		return
	}

	s.pos.X += s.dir * speed
	if s.pos.X < s.minX {
		s.pos.X = s.minX
		s.dir = 1
	} else if s.pos.X > s.maxX {
		s.pos.X = s.maxX
		s.dir = -1
	}
	s.rotation = 0
	if s.dir < 0 {
		s.rotation = math.Pi
	}
}

func (s *Shark) nearestFood(food []core.Vec2) (core.Vec2, bool) {
	bestDist := math.MaxFloat64
	var best core.Vec2
	found := false
	for _, f := range food {
		d := s.pos.DistanceTo(f)
		if d <= s.cfg.DetectRadius && d < bestDist {
			bestDist = d
			best = f
			found = true
		}
	}
	return best, found
}

// updateDead runs the float-to-surface interpolation: position and rotation
// lerp toward the belly-up resting pose, then fumes vent periodically once
// the body has been at the surface long enough.
func (s *Shark) updateDead() {
	if s.floatProgress < 1 {
		s.floatProgress += s.cfg.FloatSpeed
		if s.floatProgress > 1 {
			s.floatProgress = 1
		}
		s.pos.Y = core.Lerp(s.deathPos.Y, s.surfaceY, s.floatProgress)
		s.rotation = core.Lerp(s.deathRot, math.Pi, s.floatProgress)
		return
	}

	s.surfaceTicks++
	if s.surfaceTicks >= s.cfg.FumeDelayTicks && s.cfg.FumePeriodTicks > 0 &&
		(s.surfaceTicks-s.cfg.FumeDelayTicks)%s.cfg.FumePeriodTicks == 0 {
		if s.OnFume != nil {
			s.OnFume(s.pos)
		}
	}
}
