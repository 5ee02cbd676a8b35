// platformer is a terminal tile platformer: collect every coin, avoid lava
// and fireballs.
//
// Usage:
//
//	platformer list              - List installed level packs
//	platformer play <pack>       - Play a pack
//	platformer menu              - Pick packs interactively
//	platformer run <pack|file>   - Simulate a level headlessly
//	platformer scores <pack>     - Show best times for a pack
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible fireball rain
//	--db <path>          - Set database path (default: ~/.platformer/results.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a tile platformer in your terminal",
	Long: `Platformer runs grid levels made of walls, lava, coins and fireballs.
Collect every coin in a level to advance; touching lava or a fireball
costs a life.

Available commands:
  list     - Show installed level packs
  play     - Play a pack directly
  menu     - Interactive pack picker
  run      - Simulate a level without a terminal UI
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  platformer list
  platformer play classic
  platformer play ./my-pack.yaml --difficulty hard
  platformer run classic --level 2 --hold right --ticks 300
  platformer serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadExtraPacks(flagLevelsDir)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.platformer/results.db", "Path to results database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of extra level packs (.yaml, .yml, .json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger at the --log-level threshold.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadExtraPacks registers every valid pack under dir that does not
// clash with an installed one.
func loadExtraPacks(dir string) error {
	if dir == "" {
		return nil
	}

	packs, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	for _, p := range packs {
		if registry.Exists(p.ID()) {
			fmt.Fprintf(os.Stderr, "Warning: pack %q in %s shadows an installed pack, skipped\n", p.ID(), p.FilePath())
			continue
		}
		registry.Register(p.ID(), func() registry.Pack { return p })
	}
	return nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
