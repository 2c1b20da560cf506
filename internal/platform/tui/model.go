package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/economy"
	"github.com/oliban/lander-game-sub002/internal/sim"
	"github.com/oliban/lander-game-sub002/internal/storage"
)

// Model is the Bubble Tea model for running a lander session.
type Model struct {
	sess       *sim.Session
	fx         *FrameEffects
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	keyMapper  *KeyMapper
	state      core.SessionState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	saved      bool // Whether the session has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given session.
// The FrameEffects collector must be the same one wired into the session's
// collaborators so effects emitted during Step show up in the frame.
func NewModel(sess *sim.Session, fx *FrameEffects, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sess:       sess,
		fx:         fx,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the session.
func (m Model) Init() tea.Cmd {
	m.sess.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			return m, nil
		}
	case "]":
		// Manual quality bump pins the level.
		gov := m.sess.Governor()
		gov.SetLevel(gov.Level() - 1)
		return m, nil
	case "[":
		gov := m.sess.Governor()
		gov.SetLevel(gov.Level() + 1)
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Measure the real frame rate for the governor.
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
			m.sess.SampleFPS(1.0 / dt)
		}
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Player(core.Player1).Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.sess.Reset(m.config)
		m.state = m.sess.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.state = m.sess.Step(m.inputFrame)
	m.fx.Advance()

	// Save session on game over (once)
	if m.state.GameOver && !m.saved {
		m.saveSession()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession persists the finished run. Best-effort; failures are ignored so
// the end screen still shows.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	report := m.sess.Report()
	goods := make(map[string]int)
	for t, n := range m.sess.Delivered() {
		goods[string(t)] = n
	}
	fuel := 0
	if v := m.sess.Vehicle(core.Player1); v != nil {
		fuel = v.Fuel
	}
	//nolint:errcheck // Best-effort save, session end screen shows regardless
	m.store.SaveSession(storage.SessionRecord{
		Mode:        string(m.sess.Mode()),
		Score:       report.Total,
		FuelLeft:    fuel,
		ElapsedSecs: m.sess.ElapsedSeconds(),
		Goods:       goods,
		Medal:       m.sess.Delivered()[economy.ItemMedal] > 0,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.sess, m.fx)

	dir := filepath.Join(os.Getenv("HOME"), ".lander", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sess.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.sess, m.fx)
	m.drawHUD()
	if m.state.GameOver {
		m.drawEndScreen()
	} else if m.state.Paused {
		m.drawCentered(m.screen.Height()/2, "P A U S E D", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// drawHUD writes the status rows at the top of the screen.
func (m Model) drawHUD() {
	hud := fmt.Sprintf(" SCORE %6d   FUEL %4d   %s", m.state.Score, m.state.Fuel, m.sess.Governor().Level())
	m.screen.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	inv := m.sess.Inventory()
	var parts []string
	for _, t := range inv.SellableTypes() {
		if n := inv.Count(t); n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", t, n))
		}
	}
	if cue := m.fx.LastCue(); cue != "" {
		parts = append(parts, "♪ "+cue)
	}
	m.screen.DrawTextColored(1, 1, strings.Join(parts, "  "), core.ColorGray)

	if v := m.sess.Vehicle(core.Player2); v != nil {
		p2 := fmt.Sprintf("P2 KILLS %d", v.Kills)
		m.screen.DrawTextColored(m.screen.Width()-len(p2)-1, 0, p2, core.ColorBrightYellow)
	}
}

// drawEndScreen overlays the end-of-session report.
func (m Model) drawEndScreen() {
	report := m.sess.Report()
	mid := m.screen.Height() / 2

	title := "S E S S I O N   O V E R"
	if w := m.sess.Winner(); w != 0 {
		title = fmt.Sprintf("P L A Y E R  %d  W I N S", w)
	}
	m.drawCentered(mid-3, title, core.ColorBrightRed)
	m.drawCentered(mid-1, fmt.Sprintf("Time bonus  %6d", report.TimeBonus), core.ColorWhite)
	m.drawCentered(mid, fmt.Sprintf("Deliveries  %6d", report.ItemsTotal), core.ColorWhite)
	if report.MilestoneBonus > 0 {
		m.drawCentered(mid+1, fmt.Sprintf("Medal bonus %6d", report.MilestoneBonus), core.ColorBrightYellow)
	}
	m.drawCentered(mid+2, fmt.Sprintf("TOTAL       %6d", report.Total), core.ColorBrightGreen)
	m.drawCentered(mid+4, "R: restart   B: menu   Q: quit", core.ColorGray)
}

func (m Model) drawCentered(y int, text string, c core.Color) {
	x := (m.screen.Width() - len(text)) / 2
	m.screen.DrawTextColored(x, y, text, c)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(sess *sim.Session, fx *FrameEffects, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sess, fx, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
