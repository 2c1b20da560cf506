package tui

import (
	"testing"

	"github.com/oliban/lander-game-sub002/internal/core"
)

func TestFrameEffectsExpire(t *testing.T) {
	fx := NewFrameEffects()
	fx.SpawnVisualEffect("explosion", core.Vec2{X: 10, Y: 10})

	if len(fx.effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(fx.effects))
	}

	for i := 0; i < 17; i++ {
		fx.Advance()
	}
	if len(fx.effects) != 1 {
		t.Fatalf("effect expired early after 17 ticks")
	}
	fx.Advance()
	if len(fx.effects) != 0 {
		t.Errorf("effect still live after its ttl")
	}
}

func TestPopupFormat(t *testing.T) {
	fx := NewFrameEffects()
	fx.ShowDestructionPoints(core.Vec2{}, 250, "tower-1")
	fx.ShowDestructionPoints(core.Vec2{}, -200, "seal-0")

	if fx.popups[0].text != "+250 tower-1" {
		t.Errorf("popup text = %q, want %q", fx.popups[0].text, "+250 tower-1")
	}
	if fx.popups[1].text != "-200 seal-0" {
		t.Errorf("popup text = %q, want %q", fx.popups[1].text, "-200 seal-0")
	}
}

func TestLastCueFades(t *testing.T) {
	fx := NewFrameEffects()
	fx.PlaySound("explosion", 1.0)

	if fx.LastCue() != "explosion" {
		t.Fatalf("LastCue = %q, want explosion", fx.LastCue())
	}
	for i := 0; i < 30; i++ {
		fx.Advance()
	}
	if fx.LastCue() != "" {
		t.Errorf("LastCue = %q after fade window, want empty", fx.LastCue())
	}
}

func TestPlaySoundIfNotPlaying(t *testing.T) {
	fx := NewFrameEffects()
	fx.PlaySound("splash", 1.0)
	for i := 0; i < 5; i++ {
		fx.Advance()
	}
	ttl := fx.cueTTL

	// Same cue still live: no restart.
	fx.PlaySoundIfNotPlaying("splash")
	if fx.cueTTL != ttl {
		t.Error("live cue restarted")
	}

	// Different cue replaces it.
	fx.PlaySoundIfNotPlaying("kill-fanfare")
	if fx.LastCue() != "kill-fanfare" {
		t.Errorf("LastCue = %q, want kill-fanfare", fx.LastCue())
	}
}

func TestEffectGlyphs(t *testing.T) {
	kinds := []string{
		"explosion", "building-explosion", "vehicle-explosion", "aircraft-explosion",
		"oil-fire", "oil-slick", "ice-shatter", "splash", "gulp", "bubbles", "toxic-fume",
	}
	for _, kind := range kinds {
		r, _ := effectGlyph(kind)
		if r == '·' {
			t.Errorf("kind %q falls through to the default glyph", kind)
		}
	}
}
