package world

import "github.com/oliban/lander-game-sub002/internal/core"

// BannerDrop is the secondary payload of a destroyed propaganda van: where to
// spawn the banner and what it says.
type BannerDrop struct {
	Pos     core.Vec2
	Message string
}

// PropagandaVan is a ground vehicle that releases a banner when destroyed.
type PropagandaVan struct {
	destructibleState
	message string
	banner  *BannerDrop
}

// NewPropagandaVan creates a van carrying the given banner message.
func NewPropagandaVan(name string, pos core.Vec2, message string, points int, hook ExplodeHook) *PropagandaVan {
	v := &PropagandaVan{message: message}
	v.destructibleState = newDestructibleState(name, pos, BoundsConfig{
		Width: 10, Height: 6, Align: AlignCenter,
	}, points, func(p core.Vec2) {
		v.banner = &BannerDrop{Pos: core.Vec2{X: p.X, Y: p.Y - 10}, Message: v.message}
		if hook != nil {
			hook(p)
		}
	})
	return v
}

// TakeBanner returns the banner payload once, after destruction.
func (v *PropagandaVan) TakeBanner() (BannerDrop, bool) {
	if v.banner == nil {
		return BannerDrop{}, false
	}
	b := *v.banner
	v.banner = nil
	return b, true
}

// SupplyTruck is a ground vehicle that scatters collectible pickups when
// destroyed.
type SupplyTruck struct {
	destructibleState
	scatter []core.Vec2
}

// NewSupplyTruck creates a truck carrying cargo pickups.
func NewSupplyTruck(name string, pos core.Vec2, points int, hook ExplodeHook) *SupplyTruck {
	t := &SupplyTruck{}
	t.destructibleState = newDestructibleState(name, pos, BoundsConfig{
		Width: 12, Height: 6, Align: AlignCenter,
	}, points, func(p core.Vec2) {
		// Three pickups scattered around the wreck.
		t.scatter = []core.Vec2{
			{X: p.X - 8, Y: p.Y - 4},
			{X: p.X, Y: p.Y - 8},
			{X: p.X + 8, Y: p.Y - 4},
		}
		if hook != nil {
			hook(p)
		}
	})
	return t
}

// ScatterPositions returns pickup spawn positions once, after destruction.
func (t *SupplyTruck) ScatterPositions() []core.Vec2 {
	s := t.scatter
	t.scatter = nil
	return s
}

// Aircraft is an airborne entity. Unlike ground entities it is tested every
// resolver tick regardless of ground proximity, and it moves on its own.
type Aircraft struct {
	destructibleState
	Velocity core.Vec2
	minX     float64
	maxX     float64
}

// NewAircraft creates a patrolling aircraft between minX and maxX.
func NewAircraft(name string, pos core.Vec2, vx, minX, maxX float64, points int, hook ExplodeHook) *Aircraft {
	return &Aircraft{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: 12, Height: 4, Align: AlignCenter,
		}, points, hook),
		Velocity: core.Vec2{X: vx},
		minX:     minX,
		maxX:     maxX,
	}
}

// Update advances the aircraft one tick, reversing at its patrol bounds.
// Destroyed aircraft stop moving.
func (a *Aircraft) Update() {
	if a.Destroyed() {
		return
	}
	pos := a.Position().Add(a.Velocity)
	if pos.X < a.minX || pos.X > a.maxX {
		a.Velocity.X = -a.Velocity.X
		pos = a.Position().Add(a.Velocity)
	}
	a.SetPosition(pos)
}

// Seal is wildlife lounging on the ice. No secondary payload; destroying one
// costs points rather than granting them.
type Seal struct {
	destructibleState
	Bob Bobber
}

// NewSeal creates a seal. Point value may be negative.
func NewSeal(name string, pos core.Vec2, points int, hook ExplodeHook) *Seal {
	return &Seal{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: 6, Height: 3, Align: AlignCenter,
		}, points, hook),
		Bob: NewBobber(0.5, 1.1, pos.X*0.05),
	}
}

// UpdateBob advances the seal's bobbing offset from the shared wave phase.
func (s *Seal) UpdateBob(wavePhase float64) {
	s.Bob.Update(wavePhase, s.Destroyed())
}
