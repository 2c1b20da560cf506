package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/core"
	"github.com/oliban/lander-game-sub002/internal/platform/tui"
	"github.com/oliban/lander-game-sub002/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lander with a mode picker menu",
	Long: `Start the lander in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a session ends, you return to the menu to fly again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Best runs
  Q            - Quit

Examples:
  lander menu
  lander menu --fps 60
  lander menu --db ./sessions.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			quit, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if quit {
				break
			}
			continue // Back to menu
		}

		modeID := menuResult.ModeID
		if modeID == "" {
			break
		}

		sess, fx, buildErr := buildSession(modeID, gameCfg, rc)
		if buildErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating session: %v\n", buildErr)
			continue
		}

		// Fresh seed for each run
		rc.Seed = time.Now().UnixNano()

		if err := tui.Run(sess, fx, store, rc); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
