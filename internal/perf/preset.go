// Package perf implements the quality preset ladder and the closed-loop
// performance governor that walks it based on measured frame rate.
package perf

// QualityLevel indexes the preset ladder, best fidelity first.
type QualityLevel int

const (
	LevelUltra QualityLevel = iota
	LevelHigh
	LevelMedium
	LevelLow
	LevelMinimal
)

// LevelCount is the number of levels in the ladder.
const LevelCount = 5

// String returns a human-readable name for the level.
func (l QualityLevel) String() string {
	switch l {
	case LevelUltra:
		return "ultra"
	case LevelHigh:
		return "high"
	case LevelMedium:
		return "medium"
	case LevelLow:
		return "low"
	case LevelMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to its ladder index.
// Unknown names return LevelUltra and false.
func ParseLevel(name string) (QualityLevel, bool) {
	for l := LevelUltra; l < LevelCount; l++ {
		if l.String() == name {
			return l, true
		}
	}
	return LevelUltra, false
}

// Preset is an immutable bundle of fidelity knobs for one quality level.
// Consumers must re-read the governor's current preset every frame instead of
// caching a copy, since the governor can swap it between frames.
type Preset struct {
	Level QualityLevel

	// Simulation cost knobs
	ParticleMultiplier       float64 // Scales particle spawn counts
	CannonDensityMultiplier  float64 // Scales hostile cannon placement density
	CollisionCheckIntervalMs int     // Min ms between building sweeps per projectile (0 = every frame)
	EntityUpdateEnabled      bool    // Whether ambient entities animate at all
	MaxActiveProjectiles     int
	ExplosionDebrisCount     int
	TweenSteps               int // Interpolation steps for timed effects

	// World fidelity knobs
	WaveDetail        int // Water wave segments per screen
	TerrainDetail     int // Terrain samples per screen
	DrawDistance      float64
	CloudCount        int
	BobbingEnabled    bool // Floating entities bob with the waves
	WaterReflections  bool
	SnowParticles     bool
	BirdFlocks        bool
	AircraftContrails bool
	BannerPhysics     bool // Propaganda banners simulate cloth motion
	ScorchMarks       bool // Persistent terrain scorch decals
	SmokeTrails       bool
	ShadowsEnabled    bool

	// Creature and presentation knobs
	SharkBubbles  bool
	FumeEffects   bool
	ScreenShake   bool
	HUDAnimations bool
	SoundChannels int
}

// ladder is the fixed ordered list of presets, best to worst.
// Particle and cannon multipliers are non-increasing down the ladder; the
// collision check interval is non-decreasing.
var ladder = [LevelCount]Preset{
	{
		Level:                    LevelUltra,
		ParticleMultiplier:       1.0,
		CannonDensityMultiplier:  1.0,
		CollisionCheckIntervalMs: 0,
		EntityUpdateEnabled:      true,
		MaxActiveProjectiles:     32,
		ExplosionDebrisCount:     24,
		TweenSteps:               16,
		WaveDetail:               64,
		TerrainDetail:            128,
		DrawDistance:             400,
		CloudCount:               12,
		BobbingEnabled:           true,
		WaterReflections:         true,
		SnowParticles:            true,
		BirdFlocks:               true,
		AircraftContrails:        true,
		BannerPhysics:            true,
		ScorchMarks:              true,
		SmokeTrails:              true,
		ShadowsEnabled:           true,
		SharkBubbles:             true,
		FumeEffects:              true,
		ScreenShake:              true,
		HUDAnimations:            true,
		SoundChannels:            16,
	},
	{
		Level:                    LevelHigh,
		ParticleMultiplier:       0.8,
		CannonDensityMultiplier:  1.0,
		CollisionCheckIntervalMs: 16,
		EntityUpdateEnabled:      true,
		MaxActiveProjectiles:     24,
		ExplosionDebrisCount:     16,
		TweenSteps:               12,
		WaveDetail:               48,
		TerrainDetail:            96,
		DrawDistance:             350,
		CloudCount:               8,
		BobbingEnabled:           true,
		WaterReflections:         true,
		SnowParticles:            true,
		BirdFlocks:               true,
		AircraftContrails:        true,
		BannerPhysics:            true,
		ScorchMarks:              true,
		SmokeTrails:              true,
		ShadowsEnabled:           false,
		SharkBubbles:             true,
		FumeEffects:              true,
		ScreenShake:              true,
		HUDAnimations:            true,
		SoundChannels:            12,
	},
	{
		Level:                    LevelMedium,
		ParticleMultiplier:       0.5,
		CannonDensityMultiplier:  0.75,
		CollisionCheckIntervalMs: 33,
		EntityUpdateEnabled:      true,
		MaxActiveProjectiles:     16,
		ExplosionDebrisCount:     8,
		TweenSteps:               8,
		WaveDetail:               32,
		TerrainDetail:            64,
		DrawDistance:             300,
		CloudCount:               5,
		BobbingEnabled:           true,
		WaterReflections:         false,
		SnowParticles:            false,
		BirdFlocks:               true,
		AircraftContrails:        false,
		BannerPhysics:            false,
		ScorchMarks:              true,
		SmokeTrails:              false,
		ShadowsEnabled:           false,
		SharkBubbles:             true,
		FumeEffects:              true,
		ScreenShake:              false,
		HUDAnimations:            false,
		SoundChannels:            8,
	},
	{
		Level:                    LevelLow,
		ParticleMultiplier:       0.25,
		CannonDensityMultiplier:  0.5,
		CollisionCheckIntervalMs: 66,
		EntityUpdateEnabled:      true,
		MaxActiveProjectiles:     8,
		ExplosionDebrisCount:     4,
		TweenSteps:               4,
		WaveDetail:               16,
		TerrainDetail:            32,
		DrawDistance:             250,
		CloudCount:               2,
		BobbingEnabled:           false,
		WaterReflections:         false,
		SnowParticles:            false,
		BirdFlocks:               false,
		AircraftContrails:        false,
		BannerPhysics:            false,
		ScorchMarks:              false,
		SmokeTrails:              false,
		ShadowsEnabled:           false,
		SharkBubbles:             false,
		FumeEffects:              true,
		ScreenShake:              false,
		HUDAnimations:            false,
		SoundChannels:            4,
	},
	{
		Level:                    LevelMinimal,
		ParticleMultiplier:       0.1,
		CannonDensityMultiplier:  0.25,
		CollisionCheckIntervalMs: 100,
		EntityUpdateEnabled:      false,
		MaxActiveProjectiles:     4,
		ExplosionDebrisCount:     0,
		TweenSteps:               2,
		WaveDetail:               8,
		TerrainDetail:            16,
		DrawDistance:             200,
		CloudCount:               0,
		BobbingEnabled:           false,
		WaterReflections:         false,
		SnowParticles:            false,
		BirdFlocks:               false,
		AircraftContrails:        false,
		BannerPhysics:            false,
		ScorchMarks:              false,
		SmokeTrails:              false,
		ShadowsEnabled:           false,
		SharkBubbles:             false,
		FumeEffects:              false,
		ScreenShake:              false,
		HUDAnimations:            false,
		SoundChannels:            2,
	},
}

// PresetFor returns the preset for a ladder level.
func PresetFor(level QualityLevel) *Preset {
	if level < 0 || level >= LevelCount {
		level = LevelMinimal
	}
	return &ladder[level]
}
