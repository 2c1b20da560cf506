package sim

import (
	"math/rand"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/creatures"
	"github.com/oliban/lander-game-sub002/internal/economy"
	"github.com/oliban/lander-game-sub002/internal/perf"
	"github.com/oliban/lander-game-sub002/internal/score"
	"github.com/oliban/lander-game-sub002/internal/world"
)

// Mode selects the session rules.
type Mode string

const (
	// ModeSolo is the single-pilot trading run.
	ModeSolo Mode = "solo"
	// ModeDuel adds a second pilot and opposing-vehicle hits.
	ModeDuel Mode = "duel"
	// ModeKillCount is a duel that ends at a fixed kill threshold.
	ModeKillCount Mode = "killcount"
)

// Pickup is a collectible cargo item lying in the world.
type Pickup struct {
	Pos  core.Vec2
	Type economy.ItemType
}

// Session owns one game run: the world, both vehicles, the inventory, the
// shark, the governor and the collision resolver. Everything advances
// synchronously inside Step; there is no parallelism and no preemption.
type Session struct {
	cfg    config.GameConfig
	rt     core.RuntimeConfig
	mode   Mode
	collab Collaborators

	governor *perf.Governor
	world    *world.World
	shark    *creatures.Shark
	inv      *economy.Inventory
	sched    *Scheduler
	resolver *Resolver
	rng      *rand.Rand

	vehicles    map[core.PlayerID]*Vehicle
	projectiles []*Projectile
	pickups     []Pickup
	banners     []world.BannerDrop

	scores    map[core.PlayerID]int
	delivered map[economy.ItemType]int
	cargo     map[economy.ItemType]int // Cargo aboard, not yet delivered

	tick      uint64
	elapsedMs float64
	dtMs      float64
	paused    bool
	gameOver  bool
	winner    core.PlayerID

	report      score.Report
	reportReady bool
}

// NewSession creates a session; call Reset before stepping.
func NewSession(cfg config.GameConfig, mode Mode, gov *perf.Governor, collab Collaborators) *Session {
	return &Session{
		cfg:      cfg,
		mode:     mode,
		governor: gov,
		collab:   collab.orNoop(),
	}
}

// ID returns the session identifier used for score storage.
func (s *Session) ID() string {
	return "lander-" + string(s.mode)
}

// Title returns the display name for this mode.
func (s *Session) Title() string {
	switch s.mode {
	case ModeDuel:
		return "Lander Duel"
	case ModeKillCount:
		return "Lander Kill Count"
	default:
		return "Lander"
	}
}

// Mode returns the session rules mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Reset initializes or restarts the session for the given runtime config.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.rt = rt
	s.rng = rand.New(rand.NewSource(rt.Seed))
	s.dtMs = 1000.0 / float64(core.Max(rt.TickRate, 1))
	s.tick = 0
	s.elapsedMs = 0
	s.paused = false
	s.gameOver = false
	s.winner = 0
	s.reportReady = false
	s.projectiles = nil
	s.banners = nil
	s.sched = NewScheduler()
	s.scores = map[core.PlayerID]int{core.Player1: 0, core.Player2: 0}
	s.delivered = make(map[economy.ItemType]int)
	s.cargo = make(map[economy.ItemType]int)
	s.inv = economy.NewInventory(s.cfg.Economy, s.rng)

	preset := s.governor.Preset()
	hooks := world.Hooks{
		Building: s.explodeEffect("building-explosion"),
		Vehicle:  s.explodeEffect("vehicle-explosion"),
		OilRig:   s.oilRigExplode,
		Ice:      s.explodeEffect("ice-shatter"),
		Wildlife: s.explodeEffect("splash"),
		Aircraft: s.explodeEffect("aircraft-explosion"),
	}
	s.world = world.Generate(s.cfg.World, s.rng, preset.CannonDensityMultiplier, hooks)

	s.shark = creatures.NewShark(s.cfg.Shark, core.Vec2{X: s.cfg.World.Width / 2, Y: s.cfg.World.WaterLevel + 20}, 0, s.cfg.World.Width, s.cfg.World.WaterLevel)
	s.shark.OnBubbles = func(p core.Vec2) { s.collab.Effects.SpawnVisualEffect("bubbles", p) }
	s.shark.OnFume = func(p core.Vec2) { s.collab.Effects.SpawnVisualEffect("toxic-fume", p) }

	s.resolver = NewResolver(s.cfg.Projectile, s.world, s.governor, s.shark, s.rng, s.collab, s)
	if s.mode == ModeDuel {
		s.resolver.SetDuelMode(0)
	} else if s.mode == ModeKillCount {
		s.resolver.SetDuelMode(s.cfg.Match.KillThreshold)
	}

	s.vehicles = map[core.PlayerID]*Vehicle{
		core.Player1: {Player: core.Player1, Pos: core.Vec2{X: 40, Y: 60}, Fuel: s.cfg.Physics.StartFuel},
	}
	if s.mode != ModeSolo {
		s.vehicles[core.Player2] = &Vehicle{Player: core.Player2, Pos: core.Vec2{X: s.cfg.World.Width - 40, Y: 60}, Fuel: s.cfg.Physics.StartFuel}
	}

	s.seedPickups()
}

// seedPickups scatters initial cargo around the world, including exactly one
// medal far from the start.
func (s *Session) seedPickups() {
	s.pickups = s.pickups[:0]
	kinds := []economy.ItemType{economy.ItemGrain, economy.ItemMedicine, economy.ItemMail, economy.ItemVodka, economy.ItemCasinoChip}
	for i := 0; i < 20; i++ {
		x := 80 + s.rng.Float64()*(s.cfg.World.Width-120)
		y := s.world.Terrain.HeightAt(x) - 4
		s.pickups = append(s.pickups, Pickup{Pos: core.Vec2{X: x, Y: y}, Type: kinds[s.rng.Intn(len(kinds))]})
	}
	medalX := s.cfg.World.Width * 0.9
	s.pickups = append(s.pickups, Pickup{
		Pos:  core.Vec2{X: medalX, Y: s.world.Terrain.HeightAt(medalX) - 4},
		Type: economy.ItemMedal,
	})
}

// explodeEffect builds a variant explode hook that forwards to the visual and
// audio collaborators.
func (s *Session) explodeEffect(kind string) world.ExplodeHook {
	return func(pos core.Vec2) {
		s.collab.Effects.SpawnVisualEffect(kind, pos)
	}
}

// oilRigExplode is the oil infrastructure hook: besides the fireball, a
// destroyed rig leaks and raises the ambient pollution the shark breathes.
func (s *Session) oilRigExplode(pos core.Vec2) {
	s.collab.Effects.SpawnVisualEffect("oil-fire", pos)
	s.world.AddPollution(0.3)
	// The slick keeps spreading for a while after the blast.
	s.sched.After(s.rt.TickRate*2, func() {
		s.world.AddPollution(0.1)
		s.collab.Effects.SpawnVisualEffect("oil-slick", pos)
	})
}

// SampleFPS feeds one measured frame rate sample to the governor.
// The platform calls this once per rendered frame.
func (s *Session) SampleFPS(fps float64) {
	s.governor.Sample(fps)
}

// Step advances the session by one tick.
func (s *Session) Step(in core.MultiInputFrame) core.SessionState {
	if s.gameOver {
		return s.State()
	}
	if in.Player(core.Player1).Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return s.State()
	}

	s.tick++
	s.elapsedMs += s.dtMs
	s.sched.Advance()

	preset := s.governor.Preset()

	for _, id := range core.PlayerOrder {
		if v := s.vehicles[id]; v != nil {
			s.stepVehicle(v, in.Player(id), preset)
		}
	}

	s.world.Update(s.dtMs/1000.0, preset.EntityUpdateEnabled, preset.BobbingEnabled)
	s.shark.Update(s.world.Pollution(), s.foodPositions())

	for _, p := range s.projectiles {
		switch {
		case p.HasExploded:
		case p.Sinking:
			p.Pos.Y += s.cfg.Projectile.DropVelocityY
			s.feedShark(p)
		default:
			p.Update(s.cfg.Physics.Gravity, s.dtMs)
		}
	}

	var out ResolveOutcome
	s.projectiles, out = s.resolver.Step(s.projectiles, s.vehicles, s.elapsedMs)
	if out.MatchEnded {
		s.gameOver = true
		s.winner = out.Winner
	}

	s.collectSecondaryPayloads()
	s.world.Compact()
	s.collectPickups()
	s.checkSessionEnd()

	return s.State()
}

// stepVehicle applies input and flight physics for one vehicle.
func (s *Session) stepVehicle(v *Vehicle, in core.InputFrame, preset *perf.Preset) {
	if v.Destroyed {
		return
	}
	if v.dropCooldown > 0 {
		v.dropCooldown--
	}
	phys := s.cfg.Physics

	if in.Has(core.ActionThrust) && v.Fuel > 0 {
		v.Vel.Y -= phys.ThrustAccel
		v.Fuel -= phys.FuelPerBurn
		if v.Fuel < 0 {
			v.Fuel = 0
		}
	}
	if in.Has(core.ActionLeft) {
		v.Vel.X -= phys.ThrustAccel / 2
	}
	if in.Has(core.ActionRight) {
		v.Vel.X += phys.ThrustAccel / 2
	}
	if in.Has(core.ActionDrop) && v.dropCooldown == 0 && len(s.projectiles) < preset.MaxActiveProjectiles {
		s.projectiles = append(s.projectiles, NewProjectile(v.Player, PayloadBomb, v.Pos, core.Vec2{X: v.Vel.X, Y: v.Vel.Y + s.cfg.Projectile.DropVelocityY}))
		s.collab.Audio.PlaySound("drop", 0.6)
		v.dropCooldown = s.rt.TickRate / 4
	}
	if in.Has(core.ActionTrade) {
		s.autoTrade(v)
	}

	v.Vel.Y += phys.Gravity
	v.Vel.X = core.ClampF(v.Vel.X, -phys.MaxSpeed, phys.MaxSpeed)
	v.Vel.Y = core.ClampF(v.Vel.Y, -phys.MaxSpeed, phys.MaxSpeed)
	v.Pos = v.Pos.Add(v.Vel)
	v.Pos.X = core.ClampF(v.Pos.X, 0, s.cfg.World.Width)

	terrainY := s.world.Terrain.HeightAt(v.Pos.X)
	if v.Pos.Y >= terrainY-2 {
		descent := v.Vel.Y
		v.Pos.Y = terrainY - 2
		v.Vel = core.Vec2{}
		if s.world.Terrain.IsWater(v.Pos.X) || descent > phys.MaxSpeed*0.75 {
			// Splashdown or hard impact wrecks the vehicle.
			v.Destroyed = true
			s.collab.Effects.SpawnVisualEffect("vehicle-explosion", v.Pos)
			s.collab.Audio.PlaySound("crash", 1.0)
			return
		}
		v.Landed = true
		v.GoodLanding = descent < phys.MaxSpeed*0.3
	} else {
		v.Landed = false
	}
}

// autoTrade sells cargo to cover the current fuel deficit.
// The landing-quality multiplier applies to the fuel granted only; the score
// deduction stays unmultiplied.
func (s *Session) autoTrade(v *Vehicle) {
	deficit := s.cfg.Physics.LowFuelLevel - v.Fuel
	if deficit <= 0 {
		return
	}
	result := economy.ExecuteTrade(s.inv, deficit, v.LandingMultiplier())
	if result.Plan.TotalValue == 0 {
		return
	}
	v.Fuel += result.FuelGranted
	s.scores[v.Player] -= result.ScoreDeduction
	for t, n := range result.Plan.Units {
		s.cargo[t] -= n
		if s.cargo[t] < 0 {
			s.cargo[t] = 0
		}
	}
	s.collab.Audio.PlaySound("trade", 0.7)
}

// feedShark lets the shark swallow a sinking bomb it has caught up with.
func (s *Session) feedShark(p *Projectile) {
	if !s.shark.CanEatBomb() || s.shark.Position().DistanceTo(p.Pos) > s.cfg.Projectile.HitRadius {
		return
	}
	if s.shark.EatBomb() {
		p.HasExploded = true
		s.collab.Effects.SpawnVisualEffect("gulp", p.Pos)
		s.collab.Audio.PlaySound("gulp", 0.8)
	}
}

// foodPositions lists chase targets for the shark: active projectiles
// currently over water.
func (s *Session) foodPositions() []core.Vec2 {
	var food []core.Vec2
	for _, p := range s.projectiles {
		if !p.HasExploded && s.world.Terrain.IsWater(p.Pos.X) {
			food = append(food, p.Pos)
		}
	}
	return food
}

// collectSecondaryPayloads drains the variant-specific payloads of destroyed
// vehicles: banners from propaganda vans, scattered pickups from supply
// trucks. Must run before Compact removes the wrecks.
func (s *Session) collectSecondaryPayloads() {
	for _, d := range s.world.Vehicles {
		switch v := d.(type) {
		case *world.PropagandaVan:
			if b, ok := v.TakeBanner(); ok {
				s.banners = append(s.banners, b)
			}
		case *world.SupplyTruck:
			for _, pos := range v.ScatterPositions() {
				s.pickups = append(s.pickups, Pickup{Pos: pos, Type: economy.ItemGrain})
			}
		}
	}
}

// collectPickups moves world pickups within reach into the inventory and the
// vehicle's cargo hold. Iterates back to front for in-place removal.
func (s *Session) collectPickups() {
	v := s.vehicles[core.Player1]
	if v == nil || v.Destroyed {
		return
	}
	for i := len(s.pickups) - 1; i >= 0; i-- {
		pk := s.pickups[i]
		if v.Pos.DistanceTo(pk.Pos) > s.cfg.Projectile.HitRadius*2 {
			continue
		}
		s.inv.Add(pk.Type, 1)
		s.cargo[pk.Type]++
		s.collab.Audio.PlaySound("pickup", 0.5)
		s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
	}

	// Landing back at the home pad delivers everything aboard.
	if v.Landed && v.Pos.X < 60 {
		for t, n := range s.cargo {
			if n > 0 {
				s.delivered[t] += n
				s.inv.Remove(t, n)
			}
			delete(s.cargo, t)
		}
	}
}

// checkSessionEnd ends solo runs when the vehicle is wrecked or stranded.
func (s *Session) checkSessionEnd() {
	v := s.vehicles[core.Player1]
	if v == nil {
		return
	}
	if v.Destroyed {
		s.gameOver = true
	}
	if v.Fuel <= 0 && v.Landed && s.inv.CasinoChipTotalValue(s.inv.Count(economy.ItemCasinoChip)) == 0 && len(s.sellableCargo()) == 0 {
		// Out of fuel with nothing left to trade: stranded.
		s.gameOver = true
	}
}

func (s *Session) sellableCargo() []economy.ItemType {
	var out []economy.ItemType
	for _, t := range s.inv.SellableTypes() {
		if s.inv.Count(t) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// State returns the externally visible session state.
func (s *Session) State() core.SessionState {
	fuel := 0
	if v := s.vehicles[core.Player1]; v != nil {
		fuel = v.Fuel
	}
	return core.SessionState{
		Score:    s.scores[core.Player1],
		Fuel:     fuel,
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
}

// Report computes the end-of-session report exactly once and caches it.
func (s *Session) Report() score.Report {
	if !s.reportReady {
		var delivered []score.Delivered
		for t, n := range s.delivered {
			delivered = append(delivered, score.Delivered{Type: string(t), Count: n})
		}
		elapsed := int(s.elapsedMs / 1000)
		base := score.Compute(s.cfg.Scoring, elapsed, delivered)
		base.Total += s.scores[core.Player1]
		s.report = base
		s.reportReady = true
	}
	return s.report
}

// AddPoints implements ScoreSink.
func (s *Session) AddPoints(player core.PlayerID, points int) {
	s.scores[player] += points
}

// RecordKill implements ScoreSink.
func (s *Session) RecordKill(killer core.PlayerID) {
	s.scores[killer] += 500
	s.collab.Audio.PlaySoundIfNotPlaying("kill-fanfare")
}

// RecordSelfHit implements ScoreSink.
func (s *Session) RecordSelfHit(player core.PlayerID) {
	s.scores[player] -= 100
}

// Accessors used by the renderer and tests.

// World returns the session's world.
func (s *Session) World() *world.World { return s.world }

// Shark returns the session's shark.
func (s *Session) Shark() *creatures.Shark { return s.shark }

// Inventory returns the session's cargo inventory.
func (s *Session) Inventory() *economy.Inventory { return s.inv }

// Governor returns the performance governor.
func (s *Session) Governor() *perf.Governor { return s.governor }

// Vehicle returns a player's vehicle, or nil.
func (s *Session) Vehicle(id core.PlayerID) *Vehicle { return s.vehicles[id] }

// Projectiles returns the active projectiles.
func (s *Session) Projectiles() []*Projectile { return s.projectiles }

// Pickups returns the uncollected world pickups.
func (s *Session) Pickups() []Pickup { return s.pickups }

// Banners returns the banners released by destroyed propaganda vans.
func (s *Session) Banners() []world.BannerDrop { return s.banners }

// Delivered returns the delivered-goods tally.
func (s *Session) Delivered() map[economy.ItemType]int { return s.delivered }

// Tick returns the current simulation tick.
func (s *Session) Tick() uint64 { return s.tick }

// ElapsedSeconds returns whole seconds since the session started.
func (s *Session) ElapsedSeconds() int { return int(s.elapsedMs / 1000) }

// Winner returns the winning player in duel modes, or 0.
func (s *Session) Winner() core.PlayerID { return s.winner }

// Scheduler returns the deferred-effect timer queue.
func (s *Session) Scheduler() *Scheduler { return s.sched }
