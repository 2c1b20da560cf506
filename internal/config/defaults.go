package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.12,
			ThrustAccel:  0.3,
			MaxSpeed:     4.0,
			FuelPerBurn:  1,
			StartFuel:    600,
			LowFuelLevel: 100,
		},
		Projectile: ProjectileConfig{
			GraceMs:          500,
			HitRadius:        3.0,
			GroundBand:       12.0,
			PrefilterCutoffX: 20.0,
			WorldBottomY:     400.0,
			DropVelocityY:    0.5,
			SharkEatChance:   0.35,
		},
		World: WorldConfig{
			Width:           1200.0,
			BuildingCount:   24,
			TowerCount:      8,
			VehicleCount:    10,
			OilRigCount:     4,
			IceBlockCount:   6,
			AircraftCount:   3,
			WaterLevel:      180.0,
			WaveAmplitude:   1.5,
			WaveFrequency:   0.8,
			TerrainMinY:     120.0,
			TerrainMaxY:     220.0,
			TerrainRough:    0.4,
			WaterSpanChance: 0.25,
		},
		Shark: SharkConfig{
			ModeratePollution: 0.4,
			LethalPollution:   0.8,
			FatalFeedCount:    5,
			DetectRadius:      40.0,
			PatrolSpeed:       0.6,
			CoughSpeedFactor:  0.5,
			FloatSpeed:        0.01,
			FumeDelayTicks:    300,
			FumePeriodTicks:   120,
			BubblePeriodTicks: 45,
		},
		Governor: GovernorConfig{
			WarmupTicks:   120,
			WindowSize:    60,
			DowngradeFPS:  30.0,
			UpgradeFPS:    50.0,
			CooldownTicks: 300,
		},
		Economy: EconomyConfig{
			FuelValues: map[string]int{
				"grain":       20,
				"medicine":    35,
				"mail":        10,
				"vodka":       25,
				"casino_chip": 0,
			},
			ChipTiers: []ChipTier{
				{Value: 5, Weight: 70},
				{Value: 25, Weight: 18},
				{Value: 100, Weight: 9},
				{Value: 500, Weight: 3},
			},
		},
		Scoring: ScoringConfig{
			TimeBonusCap:   5000,
			RatePerSecond:  10,
			MilestoneBonus: 2500,
			MilestoneItem:  "medal",
			PointValues: map[string]int{
				"grain":       50,
				"medicine":    120,
				"mail":        30,
				"vodka":       80,
				"casino_chip": 40,
				"medal":       500,
			},
		},
		Match: MatchConfig{
			KillThreshold: 5,
		},
	}
}
