package sim

import "github.com/oliban/lander-game-sub002/internal/core"

// Vehicle is a player-controlled flying vehicle.
type Vehicle struct {
	Player core.PlayerID
	Pos    core.Vec2
	Vel    core.Vec2
	Fuel   int
	Kills  int

	// Landed is true while the vehicle rests on ground; landings at low
	// descent speed count as good and improve the trade fuel multiplier.
	Landed      bool
	GoodLanding bool

	Destroyed bool

	// dropCooldown is the per-player tick count until the next drop is
	// accepted; each pilot has an independent timer.
	dropCooldown int
}

// LandingMultiplier returns the fuel multiplier the trading economy applies
// to a sale. Only the fuel granted is multiplied, never the score deduction.
func (v *Vehicle) LandingMultiplier() float64 {
	if v.Landed && v.GoodLanding {
		return 1.25
	}
	return 1.0
}
