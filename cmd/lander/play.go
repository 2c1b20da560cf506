package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/perf"
	"github.com/oliban/lander-game-sub002/internal/platform/tui"
	"github.com/oliban/lander-game-sub002/internal/registry"
	"github.com/oliban/lander-game-sub002/internal/settings"
	"github.com/oliban/lander-game-sub002/internal/sim"
	"github.com/oliban/lander-game-sub002/internal/storage"
)

var (
	flagConfig  string
	flagQuality string
	flagNoAuto  bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a session",
	Long: `Start a session in the given mode (default: solo).

Controls:
  W          - Thrust
  A/D        - Steer left/right
  Space      - Drop bomb
  T          - Trade cargo for fuel
  [ / ]      - Lower/raise render quality (pins the level)
  P/Esc      - Pause
  R          - Restart (after session end)
  Q/Ctrl+C   - Quit

In duel modes the second pilot flies on the arrow keys and drops with Enter.

Quality options:
  ultra, high, medium, low, minimal - Pin a fixed render quality

Examples:
  lander play
  lander play duel
  lander play solo --quality low
  lander play solo --no-auto-quality
  lander play solo --config ./my-lander.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagQuality, "quality", "", "Pin render quality: ultra, high, medium, low, minimal")
	playCmd.Flags().BoolVar(&flagNoAuto, "no-auto-quality", false, "Disable automatic quality adjustment")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "solo"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		gameCfg = config.DefaultGameConfig()
	}

	sess, fx, govErr := buildSession(modeID, gameCfg, rc)
	if govErr != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", govErr)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - session still works
		store = nil
	}

	runErr := tui.Run(sess, fx, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

// buildSession wires the governor, effects and session for a mode.
func buildSession(modeID string, gameCfg config.GameConfig, rc core.RuntimeConfig) (*sim.Session, *tui.FrameEffects, error) {
	hint := perf.HintDesktop
	if rc.ScreenW < 100 {
		hint = perf.HintConstrained
	}

	settingsStore := settings.NewStore(settingsDir(), log.Default())
	gov := perf.NewGovernor(gameCfg.Governor, settingsStore, hint)

	if flagQuality != "" {
		level, ok := perf.ParseLevel(flagQuality)
		if !ok {
			return nil, nil, fmt.Errorf("unknown quality level %q", flagQuality)
		}
		gov.SetLevel(level)
	}
	if flagNoAuto {
		gov.DisableAutoAdjust()
	}

	fx := tui.NewFrameEffects()
	s, err := registry.Create(modeID, gameCfg, gov, tui.Collaborators(fx))
	if err != nil {
		return nil, nil, err
	}
	return s, fx, nil
}

// settingsDir is where quality settings blobs live.
func settingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lander", "settings")
	}
	return filepath.Join(home, ".lander", "settings")
}
