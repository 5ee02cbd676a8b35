package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/driver"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play <pack|file>",
	Short: "Play a level pack",
	Long: `Start playing the given pack, by registered ID or pack file path.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back (while paused or after game over)
  Ctrl+S           - Screenshot to ~/.platformer/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, hazards start slow
  normal - 3 lives
  hard   - 2 lives, shorter pause after each level, fast hazards
  fixed  - Hazard speed never scales

Examples:
  platformer play classic
  platformer play classic --start 3
  platformer play tutorial --difficulty easy
  platformer play ./packs/mine.yaml --config ./physics.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "start", 0, "Level to start from (1-based, 0 = show level picker)")
}

func runPlay(_ *cobra.Command, args []string) {
	pack, err := levels.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see installed packs.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	cfg := runtimeConfig()

	start := flagStartLevel - 1
	if flagStartLevel == 0 {
		selection, selErr := tui.RunLevelSelector(pack, cfg)
		if selErr != nil {
			fail("%v", selErr)
		}
		if selection == nil {
			return
		}
		start = selection.Level
	}

	logger := newLogger("platformer")

	opts := []driver.Option{
		driver.WithConfig(gameCfg),
		driver.WithLogger(logger),
		driver.WithStartLevel(start),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
	} else {
		opts = append(opts, driver.WithRecorder(store))
	}

	runErr := tui.Run(driver.New(pack, opts...), cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
