package sim

import "github.com/oliban/lander-game-sub002/internal/core"

// PayloadType identifies what a dropped crate carries. Plain bombs explode;
// cargo payloads are what the trading economy buys and sells.
type PayloadType int

const (
	PayloadBomb PayloadType = iota
	PayloadGrain
	PayloadMedicine
	PayloadMail
	PayloadVodka
	PayloadMedal
)

// String returns the payload's item identifier.
func (p PayloadType) String() string {
	switch p {
	case PayloadBomb:
		return "bomb"
	case PayloadGrain:
		return "grain"
	case PayloadMedicine:
		return "medicine"
	case PayloadMail:
		return "mail"
	case PayloadVodka:
		return "vodka"
	case PayloadMedal:
		return "medal"
	default:
		return "unknown"
	}
}

// Projectile is a dropped bomb or cargo crate. It is owned exclusively by the
// session's drop list until it explodes or leaves world bounds.
type Projectile struct {
	Pos       core.Vec2
	Vel       core.Vec2
	DroppedBy core.PlayerID
	Payload   PayloadType

	// AgeMs is milliseconds since the drop, advanced by the session. Used for
	// the self-collision grace window.
	AgeMs float64

	// HasExploded marks the projectile spent; the resolver drops it on the
	// next pass.
	HasExploded bool

	// Sinking marks the water splashdown sequence as started.
	Sinking bool

	// lastSweepMs is when the ground-entity sweep last ran for this
	// projectile, for the governor's collision-check throttle.
	lastSweepMs float64
	sweptOnce   bool
}

// NewProjectile creates a projectile falling from the given position.
func NewProjectile(by core.PlayerID, payload PayloadType, pos core.Vec2, vel core.Vec2) *Projectile {
	return &Projectile{Pos: pos, Vel: vel, DroppedBy: by, Payload: payload}
}

// Update integrates one tick of ballistic motion.
func (p *Projectile) Update(gravity, dtMs float64) {
	p.AgeMs += dtMs
	p.Vel.Y += gravity
	p.Pos = p.Pos.Add(p.Vel)
}

// InGracePeriod reports whether self-collision with the dropping player's own
// vehicle is still suppressed.
func (p *Projectile) InGracePeriod(graceMs float64) bool {
	return p.AgeMs < graceMs
}

// sweepDue reports whether the throttled ground-entity sweep should run this
// tick, and records the check time when it does. An interval of zero means
// every frame.
func (p *Projectile) sweepDue(nowMs float64, intervalMs int) bool {
	if intervalMs <= 0 {
		return true
	}
	if p.sweptOnce && nowMs-p.lastSweepMs < float64(intervalMs) {
		return false
	}
	p.lastSweepMs = nowMs
	p.sweptOnce = true
	return true
}
