package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the platformer SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a pack picker menu.
Results are stored per server, so every player shares the best times.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.platformer/host_key

Examples:
  platformer serve                           # Listen on :23234
  platformer serve --ssh :2222               # Listen on port 2222
  platformer serve --host-key ./my_host_key  # Use specific host key
  platformer serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger("platformer-ssh")
	// The server always reports sessions
	if logger.GetLevel() > log.InfoLevel {
		logger.SetLevel(log.InfoLevel)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game = gameCfg
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting platformer SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
