package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oliban/lander-game-sub002/internal/registry"
	"github.com/oliban/lander-game-sub002/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode (default: solo).

Examples:
  lander scores
  lander scores duel`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := "solo"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available modes.")
		os.Exit(1)
	}

	var title string
	for _, m := range registry.List() {
		if m.ID == modeID {
			title = m.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.TopSessions(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Fly 'lander play %s' to set the first best run!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Fuel", "Time", "Medal", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "----", "----", "-----", "----")

	for i, rec := range sessions {
		medal := ""
		if rec.Medal {
			medal = "yes"
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-5ds  %-5s  %s\n", i+1, rec.Score, rec.FuelLeft, rec.ElapsedSecs, medal, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetModeStats(modeID); err == nil && stats.Runs > 0 {
		fmt.Printf("Best: %d  (%d runs, %d medals)\n", stats.HighScore, stats.Runs, stats.Medals)
	}
}
