// Package world implements the destructible entity model: buildings, towers,
// ground vehicles, oil infrastructure, ice, wildlife and aircraft, all sharing
// one collision-bounds contract and one idempotent destruction contract.
package world

import "github.com/oliban/lander-game-sub002/internal/core"

// Align selects how an entity's collision box relates to its anchor point.
type Align int

const (
	// AlignTop hangs the box below the anchor.
	AlignTop Align = iota
	// AlignCenter straddles the anchor.
	AlignCenter
)

// BoundsConfig derives an entity's collision box from its anchor position.
// ExtraHeight extends the box downward, used for objects partially submerged
// in water.
type BoundsConfig struct {
	Width       float64
	Height      float64
	ExtraHeight float64
	Align       Align
}

// ExplodeHook is the variant-specific side effect fired exactly once when an
// entity is destroyed. Wired by the session to the presentation collaborators.
type ExplodeHook func(pos core.Vec2)

// Destructible is the capability set shared by every world object a
// projectile can destroy.
type Destructible interface {
	// Name identifies the entity for score popups.
	Name() string

	// Position returns the entity's anchor point.
	Position() core.Vec2

	// Bounds returns the collision box, recomputed from the current position
	// on every call. Callers must not cache it across position changes.
	Bounds() core.Rect

	// Destroyed reports whether the entity has already been destroyed.
	Destroyed() bool

	// Explode destroys the entity and returns its name and point payout.
	// Calling it again is a no-op returning (name, 0); the on-explode hook
	// fires at most once.
	Explode() (name string, points int)
}

// destructibleState is the shared destruction state embedded by every variant.
type destructibleState struct {
	name      string
	pos       core.Vec2
	cfg       BoundsConfig
	points    int
	destroyed bool
	onExplode ExplodeHook
}

func newDestructibleState(name string, pos core.Vec2, cfg BoundsConfig, points int, hook ExplodeHook) destructibleState {
	return destructibleState{name: name, pos: pos, cfg: cfg, points: points, onExplode: hook}
}

// Name returns the entity's display name.
func (d *destructibleState) Name() string {
	return d.name
}

// Position returns the entity's anchor point.
func (d *destructibleState) Position() core.Vec2 {
	return d.pos
}

// SetPosition moves the entity's anchor point.
func (d *destructibleState) SetPosition(pos core.Vec2) {
	d.pos = pos
}

// Destroyed reports whether Explode has already run.
func (d *destructibleState) Destroyed() bool {
	return d.destroyed
}

// PointValue returns the configured payout without destroying the entity.
func (d *destructibleState) PointValue() int {
	return d.points
}

// Bounds derives the collision box from the current anchor position.
func (d *destructibleState) Bounds() core.Rect {
	w := d.cfg.Width
	h := d.cfg.Height + d.cfg.ExtraHeight
	x := d.pos.X - w/2
	switch d.cfg.Align {
	case AlignCenter:
		return core.NewRect(x, d.pos.Y-d.cfg.Height/2, w, h)
	default: // AlignTop
		return core.NewRect(x, d.pos.Y, w, h)
	}
}

// Explode marks the entity destroyed and fires the on-explode hook once.
// Subsequent calls return zero points.
func (d *destructibleState) Explode() (string, int) {
	if d.destroyed {
		return d.name, 0
	}
	d.destroyed = true
	if d.onExplode != nil {
		d.onExplode(d.pos)
	}
	return d.name, d.points
}
