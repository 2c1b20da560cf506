package tui

import (
	"fmt"

	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/sim"
)

// Collaborators wires a frame effect collector into all three
// presentation-side collaborator slots.
func Collaborators(fx *FrameEffects) sim.Collaborators {
	return sim.Collaborators{
		Audio:   fx,
		Effects: fx,
		Popup:   fx,
	}
}

// effect is a short-lived visual marker spawned by the simulation.
type effect struct {
	kind string
	pos  core.Vec2
	ttl  int
}

// popup is a floating points label shown after a destruction.
type popup struct {
	text string
	pos  core.Vec2
	ttl  int
}

// FrameEffects collects transient effects and popups the simulation emits
// during a tick so the renderer can draw them for a few frames. It implements
// the simulation's effect, popup and audio collaborator interfaces; audio cues
// are surfaced as a HUD hint since the terminal has no sound device.
type FrameEffects struct {
	effects []effect
	popups  []popup
	lastCue string
	cueTTL  int
}

// NewFrameEffects creates an empty effect collector.
func NewFrameEffects() *FrameEffects {
	return &FrameEffects{}
}

// SpawnVisualEffect implements sim.ExplosionEffects.
func (fe *FrameEffects) SpawnVisualEffect(kind string, pos core.Vec2) {
	fe.effects = append(fe.effects, effect{kind: kind, pos: pos, ttl: 18})
}

// ShowDestructionPoints implements sim.PointsPopup.
func (fe *FrameEffects) ShowDestructionPoints(pos core.Vec2, points int, name string) {
	text := fmt.Sprintf("%+d %s", points, name)
	fe.popups = append(fe.popups, popup{text: text, pos: pos, ttl: 45})
}

// PlaySound implements sim.AudioCue.
func (fe *FrameEffects) PlaySound(name string, _ float64) {
	fe.lastCue = name
	fe.cueTTL = 30
}

// PlaySoundIfNotPlaying implements sim.AudioCue.
func (fe *FrameEffects) PlaySoundIfNotPlaying(name string) {
	if fe.lastCue == name && fe.cueTTL > 0 {
		return
	}
	fe.PlaySound(name, 1.0)
}

// Advance ages all live effects by one tick and drops expired ones.
func (fe *FrameEffects) Advance() {
	live := fe.effects[:0]
	for _, e := range fe.effects {
		e.ttl--
		e.pos.Y -= 0.1 // drift upward
		if e.ttl > 0 {
			live = append(live, e)
		}
	}
	fe.effects = live

	livePopups := fe.popups[:0]
	for _, p := range fe.popups {
		p.ttl--
		p.pos.Y -= 0.3
		if p.ttl > 0 {
			livePopups = append(livePopups, p)
		}
	}
	fe.popups = livePopups

	if fe.cueTTL > 0 {
		fe.cueTTL--
	}
}

// LastCue returns the most recent audio cue name for the HUD, or empty.
func (fe *FrameEffects) LastCue() string {
	if fe.cueTTL <= 0 {
		return ""
	}
	return fe.lastCue
}

// effectGlyph maps an effect kind to its glyph and color.
func effectGlyph(kind string) (rune, core.Color) {
	switch kind {
	case "explosion", "building-explosion", "vehicle-explosion", "aircraft-explosion":
		return '✸', core.ColorBrightRed
	case "oil-fire":
		return '▲', core.ColorOrange
	case "oil-slick":
		return '~', core.ColorGray
	case "ice-shatter":
		return '*', core.ColorBrightCyan
	case "splash":
		return '◌', core.ColorBrightBlue
	case "gulp":
		return 'o', core.ColorBlue
	case "bubbles":
		return '°', core.ColorCyan
	case "toxic-fume":
		return '§', core.ColorGreen
	case "scorch":
		return '#', core.ColorGray
	default:
		return '·', core.ColorDefault
	}
}
