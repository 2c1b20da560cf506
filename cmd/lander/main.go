// lander is a terminal side-scrolling cargo flight game.
//
// Usage:
//
//	lander list              - List available session modes
//	lander play [mode]       - Fly a session
//	lander menu              - Start the interactive mode picker
//	lander serve             - Start SSH server for remote play
//	lander scores [mode]     - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.lander/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lander - Terminal cargo flight arcade",
	Long: `Lander is a terminal side-scroller: fly a cargo craft over a destructible
coastline, drop bombs, deliver goods and trade cargo for fuel before you
run dry.

Available commands:
  list     - Show all session modes
  play     - Fly a session directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  lander list
  lander play solo
  lander play duel
  lander menu
  lander serve --ssh :2222
  lander scores solo`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
