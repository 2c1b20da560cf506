// Package config provides YAML-based tuning configuration for the lander
// simulation: physics, world generation densities, item value tables, creature
// thresholds and performance governor thresholds.
package config

// GameConfig contains all tunable parameters for a session.
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Projectile ProjectileConfig `yaml:"projectile"`
	World      WorldConfig      `yaml:"world"`
	Shark      SharkConfig      `yaml:"shark"`
	Governor   GovernorConfig   `yaml:"governor"`
	Economy    EconomyConfig    `yaml:"economy"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Match      MatchConfig      `yaml:"match"`
}

// PhysicsConfig defines vehicle flight parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	ThrustAccel  float64 `yaml:"thrust_accel"`
	MaxSpeed     float64 `yaml:"max_speed"`
	FuelPerBurn  int     `yaml:"fuel_per_burn"`
	StartFuel    int     `yaml:"start_fuel"`
	LowFuelLevel int     `yaml:"low_fuel_level"`
}

// ProjectileConfig defines bomb/projectile behavior and resolver tuning.
type ProjectileConfig struct {
	GraceMs          int     `yaml:"grace_ms"`           // Self-hit suppression window after drop
	HitRadius        float64 `yaml:"hit_radius"`         // Vehicle hit test radius
	GroundBand       float64 `yaml:"ground_band"`        // Height above terrain that enables the building sweep
	PrefilterCutoffX float64 `yaml:"prefilter_cutoff_x"` // Horizontal pre-filter distance
	WorldBottomY     float64 `yaml:"world_bottom_y"`     // Vertical bound below which projectiles are discarded
	DropVelocityY    float64 `yaml:"drop_velocity_y"`
	SharkEatChance   float64 `yaml:"shark_eat_chance"` // Chance an in-range shark intercepts a water splashdown
}

// WorldConfig defines world generation parameters.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	BuildingCount   int     `yaml:"building_count"`
	TowerCount      int     `yaml:"tower_count"`
	VehicleCount    int     `yaml:"vehicle_count"`
	OilRigCount     int     `yaml:"oil_rig_count"`
	IceBlockCount   int     `yaml:"ice_block_count"`
	AircraftCount   int     `yaml:"aircraft_count"`
	WaterLevel      float64 `yaml:"water_level"`
	WaveAmplitude   float64 `yaml:"wave_amplitude"`
	WaveFrequency   float64 `yaml:"wave_frequency"`
	TerrainMinY     float64 `yaml:"terrain_min_y"`
	TerrainMaxY     float64 `yaml:"terrain_max_y"`
	TerrainRough    float64 `yaml:"terrain_rough"`
	WaterSpanChance float64 `yaml:"water_span_chance"`
}

// SharkConfig defines the shark behavior state machine thresholds.
type SharkConfig struct {
	ModeratePollution float64 `yaml:"moderate_pollution"` // alive -> coughing at or above
	LethalPollution   float64 `yaml:"lethal_pollution"`   // any state -> dead at or above
	FatalFeedCount    int     `yaml:"fatal_feed_count"`   // Feedings that kill the shark
	DetectRadius      float64 `yaml:"detect_radius"`
	PatrolSpeed       float64 `yaml:"patrol_speed"`
	CoughSpeedFactor  float64 `yaml:"cough_speed_factor"`
	FloatSpeed        float64 `yaml:"float_speed"`    // Float-to-surface progress per tick
	FumeDelayTicks    int     `yaml:"fume_delay_ticks"`  // Ticks at surface before fumes start
	FumePeriodTicks   int     `yaml:"fume_period_ticks"` // Ticks between fume bursts
	BubblePeriodTicks int     `yaml:"bubble_period_ticks"`
}

// GovernorConfig defines performance governor thresholds.
type GovernorConfig struct {
	WarmupTicks   int     `yaml:"warmup_ticks"`   // FPS samples discarded after start
	WindowSize    int     `yaml:"window_size"`    // Rolling FPS window length
	DowngradeFPS  float64 `yaml:"downgrade_fps"`  // Mean below this steps one level down
	UpgradeFPS    float64 `yaml:"upgrade_fps"`    // Mean above this steps one level up
	CooldownTicks int     `yaml:"cooldown_ticks"` // Minimum ticks between adjustments
}

// EconomyConfig defines the trading economy value tables.
// FuelValues feed the trading economy; they are independent from the scoring
// point table and the two must never be interchanged.
type EconomyConfig struct {
	FuelValues map[string]int `yaml:"fuel_values"`
	ChipTiers  []ChipTier     `yaml:"chip_tiers"`
}

// ChipTier is one tier of the casino chip value distribution.
type ChipTier struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// ScoringConfig defines the end-of-session score formula inputs.
type ScoringConfig struct {
	TimeBonusCap   int            `yaml:"time_bonus_cap"`
	RatePerSecond  int            `yaml:"rate_per_second"`
	MilestoneBonus int            `yaml:"milestone_bonus"`
	MilestoneItem  string         `yaml:"milestone_item"`
	PointValues    map[string]int `yaml:"point_values"`
}

// MatchConfig defines two-player match parameters.
type MatchConfig struct {
	KillThreshold int `yaml:"kill_threshold"` // Kills that end a kill-count match
}
