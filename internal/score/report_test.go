package score

import (
	"testing"

	"github.com/oliban/lander-game-sub002/internal/config"
)

func testScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		TimeBonusCap:   5000,
		RatePerSecond:  10,
		MilestoneBonus: 2500,
		MilestoneItem:  "medal",
		PointValues: map[string]int{
			"grain":    50,
			"medicine": 120,
			"medal":    500,
		},
	}
}

func TestTimeBonusDecay(t *testing.T) {
	r := Compute(testScoringConfig(), 100, nil)
	if r.TimeBonus != 4000 {
		t.Errorf("TimeBonus after 100s = %d, want 4000", r.TimeBonus)
	}
}

func TestTimeBonusFloorsAtZero(t *testing.T) {
	r := Compute(testScoringConfig(), 10000, nil)
	if r.TimeBonus != 0 {
		t.Errorf("TimeBonus after 10000s = %d, want 0", r.TimeBonus)
	}
	if r.Total != 0 {
		t.Errorf("Total = %d, want 0", r.Total)
	}
}

func TestItemPoints(t *testing.T) {
	r := Compute(testScoringConfig(), 0, []Delivered{
		{Type: "grain", Count: 3},
		{Type: "medicine", Count: 2},
	})
	if r.ItemsTotal != 3*50+2*120 {
		t.Errorf("ItemsTotal = %d, want %d", r.ItemsTotal, 3*50+2*120)
	}
	if r.MilestoneBonus != 0 {
		t.Errorf("MilestoneBonus = %d without a medal, want 0", r.MilestoneBonus)
	}
}

func TestMilestoneBonus(t *testing.T) {
	r := Compute(testScoringConfig(), 0, []Delivered{{Type: "medal", Count: 1}})
	if r.MilestoneBonus != 2500 {
		t.Errorf("MilestoneBonus = %d, want 2500", r.MilestoneBonus)
	}
	if r.ItemsTotal != 500 {
		t.Errorf("ItemsTotal = %d, want the medal's own 500", r.ItemsTotal)
	}
	if r.Total != 5000+500+2500 {
		t.Errorf("Total = %d, want %d", r.Total, 5000+500+2500)
	}
}

func TestZeroCountLinesIgnored(t *testing.T) {
	r := Compute(testScoringConfig(), 0, []Delivered{
		{Type: "medal", Count: 0},
		{Type: "grain", Count: -2},
	})
	if r.ItemsTotal != 0 || r.MilestoneBonus != 0 {
		t.Errorf("zero-count lines scored: %+v", r)
	}
}
