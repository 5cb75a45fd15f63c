package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-highway/internal/registry"
	"github.com/vovakirdan/neon-highway/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top runs for a mode, or a summary of every mode.

Examples:
  neonhighway scores
  neonhighway scores racer
  neonhighway scores racer_timetrial --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'neonhighway modes' to see available modes.")
		os.Exit(1)
	}
	printTopScores(store, modeID)
}

// printSummary prints one line of stats per mode.
func printSummary(store *storage.Store) {
	fmt.Println("Neon Highway - Summary")
	fmt.Println()
	fmt.Printf("  %-18s  %-5s  %-8s  %-8s  %s\n", "Mode", "Runs", "Best", "Avg", "Last played")
	fmt.Printf("  %-18s  %-5s  %-8s  %-8s  %s\n", "----", "----", "----", "---", "-----------")

	for _, m := range registry.List() {
		stats, err := store.GetModeStats(m.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats for %s: %v\n", m.ID, err)
			continue
		}
		last := "-"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-18s  %-5d  %-8d  %-8.0f  %s\n", m.ID, stats.RunsCount, stats.HighScore, stats.AvgScore, last)
	}

	achievements, err := store.Achievements()
	if err == nil && len(achievements) > 0 {
		fmt.Println()
		fmt.Printf("Achievements unlocked: %d\n", len(achievements))
	}
}

// printTopScores prints the best runs for one mode.
func printTopScores(store *storage.Store, modeID string) {
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'neonhighway play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Distance", "Level", "Combo", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "--------", "-----", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-8.0f  %-5d  x%-5.1f  %s\n",
			i+1, e.Score, e.Distance, e.Level, e.MaxMultiplier, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
