package world

import "github.com/oliban/lander-game-sub002/internal/core"

// Building is a ground structure destroyed by a single hit.
type Building struct {
	destructibleState
	Style int // Render variant index
}

// NewBuilding creates a building anchored at its roof line.
func NewBuilding(name string, pos core.Vec2, w, h float64, points int, hook ExplodeHook) *Building {
	return &Building{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: w, Height: h, Align: AlignTop,
		}, points, hook),
	}
}

// Tower is a tall narrow structure, worth more than a plain building.
type Tower struct {
	destructibleState
}

// NewTower creates a tower anchored at its top.
func NewTower(name string, pos core.Vec2, h float64, points int, hook ExplodeHook) *Tower {
	return &Tower{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: 6, Height: h, Align: AlignTop,
		}, points, hook),
	}
}

// OilRig is offshore oil infrastructure. It floats, so it bobs with the waves
// and its collision box extends below the waterline. Destroying a rig raises
// the ambient pollution level (handled by the owning world).
type OilRig struct {
	destructibleState
	Bob Bobber
}

// NewOilRig creates a rig partially submerged in water.
func NewOilRig(name string, pos core.Vec2, points int, hook ExplodeHook) *OilRig {
	return &OilRig{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: 18, Height: 14, ExtraHeight: 8, Align: AlignCenter,
		}, points, hook),
		Bob: NewBobber(0, 0, pos.X*0.1),
	}
}

// UpdateBob advances the rig's bobbing offset from the shared wave phase.
func (o *OilRig) UpdateBob(wavePhase float64) {
	o.Bob.Update(wavePhase, o.Destroyed())
}

// IceBlock is a floating slab of ice.
type IceBlock struct {
	destructibleState
	Bob Bobber
}

// NewIceBlock creates a floating ice block.
func NewIceBlock(name string, pos core.Vec2, w float64, points int, hook ExplodeHook) *IceBlock {
	return &IceBlock{
		destructibleState: newDestructibleState(name, pos, BoundsConfig{
			Width: w, Height: 4, ExtraHeight: 3, Align: AlignCenter,
		}, points, hook),
		Bob: NewBobber(0.8, 1.3, pos.X*0.07),
	}
}

// UpdateBob advances the block's bobbing offset from the shared wave phase.
func (i *IceBlock) UpdateBob(wavePhase float64) {
	i.Bob.Update(wavePhase, i.Destroyed())
}
