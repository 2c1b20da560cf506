package world

import (
	"fmt"
	"math/rand"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
)

// Hooks carries the variant explode hooks the session wires to its
// presentation collaborators. Any nil hook is simply skipped.
type Hooks struct {
	Building ExplodeHook
	Vehicle  ExplodeHook
	OilRig   ExplodeHook
	Ice      ExplodeHook
	Wildlife ExplodeHook
	Aircraft ExplodeHook
}

var bannerMessages = []string{
	"DRINK MORE TEA",
	"FLY SAFE, TRADE SMART",
	"THE COMMITTEE SEES ALL",
	"FUEL PRICES ARE FAIR",
}

// World owns the terrain and every destructible collection, stored per
// category in the resolver's fixed priority order.
type World struct {
	Terrain *Terrain

	Buildings []Destructible // includes towers' plainer cousins
	Towers    []Destructible
	Vehicles  []Destructible
	OilRigs   []Destructible
	Ice       []Destructible
	Wildlife  []Destructible
	Aircraft  []Destructible

	wavePhase float64
	waveFreq  float64
	pollution float64
	oilRigs   []*OilRig
	floaters  []interface{ UpdateBob(float64) }
	movers    []*Aircraft
}

// Generate builds a world from the config, deterministically for a given rng.
// The cannon/entity density multiplier from the active quality preset scales
// how many entities are placed.
func Generate(cfg config.WorldConfig, rng *rand.Rand, densityMul float64, hooks Hooks) *World {
	if densityMul <= 0 {
		densityMul = 1
	}
	w := &World{
		Terrain:  GenerateTerrain(cfg, rng),
		waveFreq: cfg.WaveFrequency,
	}

	scaled := func(n int) int {
		s := int(float64(n) * densityMul)
		if s < 1 && n > 0 {
			s = 1
		}
		return s
	}

	groundPos := func() core.Vec2 {
		// Fall back to any x if the map happened to generate as all water.
		x := rng.Float64() * cfg.Width
		for i := 0; i < 64 && w.Terrain.IsWater(x); i++ {
			x = rng.Float64() * cfg.Width
		}
		return core.Vec2{X: x, Y: w.Terrain.HeightAt(x)}
	}
	waterPos := func() core.Vec2 {
		// Fall back to any x if the map happened to generate no water.
		for i := 0; i < 64; i++ {
			x := rng.Float64() * cfg.Width
			if w.Terrain.IsWater(x) {
				return core.Vec2{X: x, Y: cfg.WaterLevel}
			}
		}
		return core.Vec2{X: rng.Float64() * cfg.Width, Y: cfg.WaterLevel}
	}

	for i := 0; i < scaled(cfg.BuildingCount); i++ {
		pos := groundPos()
		h := 8 + rng.Float64()*12
		b := NewBuilding(fmt.Sprintf("building-%d", i), core.Vec2{X: pos.X, Y: pos.Y - h}, 10, h, 100, hooks.Building)
		b.Style = rng.Intn(4)
		w.Buildings = append(w.Buildings, b)
	}
	for i := 0; i < scaled(cfg.TowerCount); i++ {
		pos := groundPos()
		h := 20 + rng.Float64()*15
		w.Towers = append(w.Towers, NewTower(fmt.Sprintf("tower-%d", i), core.Vec2{X: pos.X, Y: pos.Y - h}, h, 250, hooks.Building))
	}
	for i := 0; i < scaled(cfg.VehicleCount); i++ {
		pos := groundPos()
		pos.Y -= 3
		if i%2 == 0 {
			msg := bannerMessages[rng.Intn(len(bannerMessages))]
			w.Vehicles = append(w.Vehicles, NewPropagandaVan(fmt.Sprintf("propaganda-van-%d", i), pos, msg, 150, hooks.Vehicle))
		} else {
			w.Vehicles = append(w.Vehicles, NewSupplyTruck(fmt.Sprintf("supply-truck-%d", i), pos, 150, hooks.Vehicle))
		}
	}
	for i := 0; i < scaled(cfg.OilRigCount); i++ {
		rig := NewOilRig(fmt.Sprintf("oil-rig-%d", i), waterPos(), 400, hooks.OilRig)
		w.OilRigs = append(w.OilRigs, rig)
		w.oilRigs = append(w.oilRigs, rig)
		w.floaters = append(w.floaters, rig)
	}
	for i := 0; i < scaled(cfg.IceBlockCount); i++ {
		ice := NewIceBlock(fmt.Sprintf("ice-%d", i), waterPos(), 8+rng.Float64()*8, 20, hooks.Ice)
		w.Ice = append(w.Ice, ice)
		w.floaters = append(w.floaters, ice)
	}
	// One seal per couple of ice blocks keeps the penalty targets rare.
	for i := 0; i < scaled(cfg.IceBlockCount)/2; i++ {
		pos := waterPos()
		pos.Y -= 3
		seal := NewSeal(fmt.Sprintf("seal-%d", i), pos, -200, hooks.Wildlife)
		w.Wildlife = append(w.Wildlife, seal)
		w.floaters = append(w.floaters, seal)
	}
	for i := 0; i < scaled(cfg.AircraftCount); i++ {
		y := 30 + rng.Float64()*40
		vx := 0.8 + rng.Float64()*0.6
		if rng.Intn(2) == 0 {
			vx = -vx
		}
		plane := NewAircraft(fmt.Sprintf("aircraft-%d", i), core.Vec2{X: rng.Float64() * cfg.Width, Y: y}, vx, 0, cfg.Width, 300, hooks.Aircraft)
		w.Aircraft = append(w.Aircraft, plane)
		w.movers = append(w.movers, plane)
	}

	return w
}

// GroundCategories returns the ground-relative destructible collections in the
// resolver's fixed priority order: buildings, towers, vehicles, oil
// infrastructure, ice, wildlife.
func (w *World) GroundCategories() [][]Destructible {
	return [][]Destructible{w.Buildings, w.Towers, w.Vehicles, w.OilRigs, w.Ice, w.Wildlife}
}

// AirborneCategory returns the aircraft collection, tested every resolver
// tick because aircraft are not ground-relative.
func (w *World) AirborneCategory() []Destructible {
	return w.Aircraft
}

// Update advances ambient world motion for one tick: wave phase, bobbing
// floaters and aircraft patrol. Gated off entirely by the preset's
// entity-update knob.
func (w *World) Update(dt float64, entityUpdates, bobbing bool) {
	if !entityUpdates {
		return
	}
	w.wavePhase += w.waveFreq * dt
	if bobbing {
		for _, f := range w.floaters {
			f.UpdateBob(w.wavePhase)
		}
	}
	for _, m := range w.movers {
		m.Update()
	}
}

// WavePhase returns the shared wave phase driving all bobbing entities.
func (w *World) WavePhase() float64 {
	return w.wavePhase
}

// AddPollution raises the ambient pollution level, clamped to [0,1].
// Destroyed oil infrastructure is the main source.
func (w *World) AddPollution(amount float64) {
	w.pollution = core.ClampF(w.pollution+amount, 0, 1)
}

// Pollution returns the ambient pollution level in [0,1].
func (w *World) Pollution() float64 {
	return w.pollution
}

// Compact drops destroyed entities from every collection. Iterates back to
// front so in-place removal cannot skip entries.
func (w *World) Compact() {
	w.Buildings = compact(w.Buildings)
	w.Towers = compact(w.Towers)
	w.Vehicles = compact(w.Vehicles)
	w.OilRigs = compact(w.OilRigs)
	w.Ice = compact(w.Ice)
	w.Wildlife = compact(w.Wildlife)
	w.Aircraft = compact(w.Aircraft)
}

func compact(list []Destructible) []Destructible {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Destroyed() {
			list = append(list[:i], list[i+1:]...)
		}
	}
	return list
}
