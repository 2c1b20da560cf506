package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/creatures"
	"github.com/oliban/lander-game-sub002/internal/sim"
	"github.com/oliban/lander-game-sub002/internal/world"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// worldDepth is the vertical span of world coordinates mapped onto the screen.
const worldDepth = 250.0

// viewport projects world coordinates onto the screen, following the camera.
type viewport struct {
	camX    float64
	width   int
	height  int
	hudRows int // rows at the top reserved for the HUD
}

func newViewport(camX float64, s *core.Screen) viewport {
	return viewport{camX: camX, width: s.Width(), height: s.Height(), hudRows: 2}
}

// project maps a world position to screen cell coordinates.
func (v viewport) project(p core.Vec2) (int, int) {
	sx := int(p.X-v.camX) + v.width/2
	rows := v.height - v.hudRows
	sy := v.hudRows + int(p.Y/worldDepth*float64(rows))
	return sx, sy
}

// drawFrame renders one simulation frame into the screen buffer.
func drawFrame(s *core.Screen, sess *sim.Session, fx *FrameEffects) {
	s.Clear()

	cam := 0.0
	if v := sess.Vehicle(core.Player1); v != nil {
		cam = v.Pos.X
	}
	vp := newViewport(cam, s)
	w := sess.World()

	drawTerrain(s, vp, w)
	drawEntities(s, vp, w)
	drawShark(s, vp, sess.Shark())
	drawPickups(s, vp, sess)
	drawProjectiles(s, vp, sess)
	drawVehicles(s, vp, sess)
	drawEffects(s, vp, fx)
}

// drawTerrain fills the ground profile column by column. Water columns get an
// animated wave surface instead of solid ground.
func drawTerrain(s *core.Screen, vp viewport, w *world.World) {
	phase := w.WavePhase()
	for sx := 0; sx < vp.width; sx++ {
		wx := vp.camX + float64(sx-vp.width/2)
		if wx < 0 || wx > w.Terrain.Width() {
			continue
		}
		wy := w.Terrain.HeightAt(wx)
		if w.Terrain.IsWater(wx) {
			// Wave crest bobs with the global phase.
			bob := 0
			if int(phase*2+wx/6)%2 == 0 {
				bob = 1
			}
			_, sy := vp.project(core.Vec2{X: wx, Y: wy})
			s.SetColored(sx, sy-bob, '≈', core.ColorBlue)
			for y := sy + 1; y < vp.height; y++ {
				s.SetColored(sx, y, '~', core.ColorBlue)
			}
			continue
		}
		_, sy := vp.project(core.Vec2{X: wx, Y: wy})
		s.SetColored(sx, sy, '▔', core.ColorGreen)
		for y := sy + 1; y < vp.height; y++ {
			s.SetColored(sx, y, '░', core.ColorGray)
		}
	}

	for _, mark := range w.Terrain.ScorchMarks() {
		sx, sy := vp.project(mark)
		s.SetColored(sx, sy, '▒', core.ColorGray)
	}
}

// categoryGlyph is the glyph and color each world category is drawn with.
var categoryGlyphs = []struct {
	glyph rune
	color core.Color
}{
	{'⌂', core.ColorWhite},        // buildings
	{'♜', core.ColorBrightWhite}, // towers
	{'▣', core.ColorYellow},       // ground vehicles
	{'╥', core.ColorOrange},       // oil rigs
	{'▢', core.ColorBrightCyan},  // ice blocks
	{'s', core.ColorMagenta},      // wildlife
}

func drawEntities(s *core.Screen, vp viewport, w *world.World) {
	for ci, category := range w.GroundCategories() {
		g := categoryGlyphs[ci]
		for _, d := range category {
			if d.Destroyed() {
				continue
			}
			sx, sy := vp.project(d.Position())
			s.SetColored(sx, sy, g.glyph, g.color)
		}
	}
	for _, d := range w.AirborneCategory() {
		if d.Destroyed() {
			continue
		}
		sx, sy := vp.project(d.Position())
		s.SetColored(sx, sy, '✈', core.ColorBrightWhite)
	}
}

func drawShark(s *core.Screen, vp viewport, shark *creatures.Shark) {
	if shark == nil {
		return
	}
	sx, sy := vp.project(shark.Position())
	glyph := '◁'
	color := core.ColorCyan
	switch shark.State() {
	case creatures.SharkCoughing:
		color = core.ColorYellow
	case creatures.SharkDead:
		glyph = '×'
		color = core.ColorGray
	}
	s.SetColored(sx, sy, glyph, color)
}

func drawPickups(s *core.Screen, vp viewport, sess *sim.Session) {
	for _, pk := range sess.Pickups() {
		sx, sy := vp.project(pk.Pos)
		s.SetColored(sx, sy, '◈', core.ColorBrightYellow)
	}
	for _, b := range sess.Banners() {
		sx, sy := vp.project(b.Pos)
		s.DrawTextColored(sx, sy, b.Message, core.ColorBrightGreen)
	}
}

func drawProjectiles(s *core.Screen, vp viewport, sess *sim.Session) {
	for _, p := range sess.Projectiles() {
		if p.HasExploded {
			continue
		}
		sx, sy := vp.project(p.Pos)
		glyph := '•'
		if p.Sinking {
			glyph = '◦'
		}
		s.SetColored(sx, sy, glyph, core.ColorBrightRed)
	}
}

func drawVehicles(s *core.Screen, vp viewport, sess *sim.Session) {
	colors := map[core.PlayerID]core.Color{
		core.Player1: core.ColorBrightGreen,
		core.Player2: core.ColorBrightYellow,
	}
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		v := sess.Vehicle(id)
		if v == nil || v.Destroyed {
			continue
		}
		sx, sy := vp.project(v.Pos)
		s.SetColored(sx, sy, '▲', colors[id])
		if v.Landed {
			s.SetColored(sx-1, sy+1, '_', colors[id])
			s.SetColored(sx+1, sy+1, '_', colors[id])
		}
	}
}

func drawEffects(s *core.Screen, vp viewport, fx *FrameEffects) {
	for _, e := range fx.effects {
		sx, sy := vp.project(e.pos)
		glyph, color := effectGlyph(e.kind)
		s.SetColored(sx, sy, glyph, color)
	}
	for _, p := range fx.popups {
		sx, sy := vp.project(p.pos)
		s.DrawTextColored(sx, sy, p.text, core.ColorBrightYellow)
	}
}
