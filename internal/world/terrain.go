package world

import (
	"math/rand"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
)

// terrainStep is the horizontal distance between heightmap samples.
const terrainStep = 8.0

// Terrain is the heightmap collaborator queried by the collision resolver.
// Y grows downward; HeightAt returns the ground surface y at a given x.
type Terrain struct {
	width   float64
	heights []float64
	water   []bool
	scorch  []core.Vec2 // Persistent scorch mark decals
}

// GenerateTerrain builds a rolling heightmap with occasional water spans.
func GenerateTerrain(cfg config.WorldConfig, rng *rand.Rand) *Terrain {
	n := int(cfg.Width/terrainStep) + 2
	t := &Terrain{
		width:   cfg.Width,
		heights: make([]float64, n),
		water:   make([]bool, n),
	}

	y := (cfg.TerrainMinY + cfg.TerrainMaxY) / 2
	waterLeft := 0
	for i := range t.heights {
		y += (rng.Float64()*2 - 1) * cfg.TerrainRough * terrainStep
		y = core.ClampF(y, cfg.TerrainMinY, cfg.TerrainMaxY)
		t.heights[i] = y

		if waterLeft > 0 {
			waterLeft--
			t.water[i] = true
			t.heights[i] = cfg.WaterLevel
		} else if rng.Float64() < cfg.WaterSpanChance/10 {
			// Start a water span a handful of samples long.
			waterLeft = 4 + rng.Intn(8)
		}
	}
	return t
}

// Width returns the world width covered by the heightmap.
func (t *Terrain) Width() float64 {
	return t.width
}

// HeightAt returns the ground surface y at x, linearly interpolated between
// samples. Out-of-range x clamps to the nearest edge sample.
func (t *Terrain) HeightAt(x float64) float64 {
	if len(t.heights) == 0 {
		return 0
	}
	fi := x / terrainStep
	i := int(fi)
	if i < 0 {
		return t.heights[0]
	}
	if i >= len(t.heights)-1 {
		return t.heights[len(t.heights)-1]
	}
	frac := fi - float64(i)
	return core.Lerp(t.heights[i], t.heights[i+1], frac)
}

// IsWater reports whether the terrain at x is a water span.
func (t *Terrain) IsWater(x float64) bool {
	i := int(x / terrainStep)
	if i < 0 || i >= len(t.water) {
		return false
	}
	return t.water[i]
}

// AddScorch records a persistent scorch mark at the impact point.
func (t *Terrain) AddScorch(pos core.Vec2) {
	t.scorch = append(t.scorch, pos)
}

// ScorchMarks returns all recorded scorch marks.
func (t *Terrain) ScorchMarks() []core.Vec2 {
	return t.scorch
}
