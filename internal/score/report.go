// Package score computes the end-of-session report. The score formula uses
// the per-type point table, which is independent from the trading economy's
// fuel value table; the two must never be interchanged.
package score

import "github.com/oliban/lander-game-sub002/internal/config"

// Delivered is one delivered-goods tally line.
type Delivered struct {
	Type  string
	Count int
}

// Report is the final session score breakdown, computed once at session end.
type Report struct {
	TimeBonus      int
	ItemsTotal     int
	MilestoneBonus int
	Total          int
}

// Compute derives the session report from final state.
// timeBonus decays linearly from the cap with elapsed seconds, floored at 0.
func Compute(cfg config.ScoringConfig, elapsedSeconds int, delivered []Delivered) Report {
	r := Report{}

	r.TimeBonus = cfg.TimeBonusCap - elapsedSeconds*cfg.RatePerSecond
	if r.TimeBonus < 0 {
		r.TimeBonus = 0
	}

	for _, d := range delivered {
		if d.Count <= 0 {
			continue
		}
		r.ItemsTotal += cfg.PointValues[d.Type] * d.Count
		if d.Type == cfg.MilestoneItem {
			r.MilestoneBonus = cfg.MilestoneBonus
		}
	}

	r.Total = r.TimeBonus + r.ItemsTotal + r.MilestoneBonus
	return r
}
