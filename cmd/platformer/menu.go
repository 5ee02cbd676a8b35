package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a pack picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a pack, Tab for best
times. Leaving a game (Esc while paused or after game over) returns here.

Examples:
  platformer menu
  platformer menu --levels ./packs
  platformer menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	deps := tui.SessionDeps{
		Store:  store,
		Game:   gameCfg,
		Logger: newLogger("platformer"),
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		pack, err := registry.Create(menuResult.PackID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		selection, err := tui.RunLevelSelector(pack, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if selection == nil {
			continue
		}

		deps.StartLevel = selection.Level
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(deps.NewGame(pack), runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
