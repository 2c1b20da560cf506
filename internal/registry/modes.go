package registry

import (
	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/perf"
	"github.com/oliban/lander-game-sub002/internal/sim"
)

func init() {
	Register(string(sim.ModeSolo), "Lander", factoryFor(sim.ModeSolo))
	Register(string(sim.ModeDuel), "Lander Duel", factoryFor(sim.ModeDuel))
	Register(string(sim.ModeKillCount), "Lander Kill Count", factoryFor(sim.ModeKillCount))
}

func factoryFor(mode sim.Mode) Factory {
	return func(cfg config.GameConfig, gov *perf.Governor, collab sim.Collaborators) *sim.Session {
		return sim.NewSession(cfg, mode, gov, collab)
	}
}
