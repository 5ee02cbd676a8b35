package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <pack>",
	Short: "Show best times for a pack",
	Long: `Display the fastest level clears and attempt totals for a pack.

Examples:
  platformer scores classic
  platformer scores classic --limit 25
  platformer scores tutorial --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results for the pack")
}

func runScores(_ *cobra.Command, args []string) {
	packID := args[0]

	pack, err := registry.Create(packID)
	if err != nil {
		fail("%v\nRun 'platformer list' to see installed packs.", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(packID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared results for %s.\n", pack.Title())
		return
	}

	results, err := store.TopResults(packID, flagScoresLimit)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Best Times - %s\n", pack.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first time!\n", packID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-9s  %-5s  %s\n", "Rank", "Level", "Time", "Coins", "Date")
	fmt.Printf("  %-4s  %-5s  %-9s  %-5s  %s\n", "----", "-----", "----", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-9s  %-5d  %s\n",
			i+1, r.LevelIndex+1, tui.FormatTicks(r.Ticks, flagFPS), r.Coins,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	levelCount := len(pack.Plans())
	for level := range levelCount {
		best, ok, err := store.BestTicks(packID, level)
		if err != nil || !ok {
			continue
		}
		fmt.Printf("Level %d best: %s\n", level+1, tui.FormatTicks(best, flagFPS))
	}

	if stats, err := store.Stats(packID); err == nil {
		fmt.Printf("\nAttempts: %d  Wins: %d  Losses: %d  Coins: %d\n",
			stats.Attempts, stats.Wins, stats.Losses, stats.TotalCoins)
	}
}
