package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/driver"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.platformer/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game holds the physics and campaign rules shared by all sessions.
	Game config.PlatformerConfig

	// Logger receives server and per-session logs. Nil uses a stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.platformer/results.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
		Game:        config.DefaultPlatformerConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the platformer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "platformer-ssh",
		})
	}

	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".platformer", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	session := SessionDeps{
		Store:  s.store,
		Game:   s.config.Game,
		Logger: s.logger.With("user", sshSession.User()),
	}

	return NewSessionModel(session, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		//nolint:errcheck // Already failing, report the serve error
		s.Shutdown()
		return err
	}
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionDeps carries what a session needs to build games.
type SessionDeps struct {
	Store      *storage.Store
	Game       config.PlatformerConfig
	Logger     *log.Logger
	StartLevel int // 0-based
}

// NewGame creates a driver for the pack with the session's rules.
func (d SessionDeps) NewGame(pack registry.Pack) *driver.Game {
	opts := []driver.Option{
		driver.WithConfig(d.Game),
		driver.WithStartLevel(d.StartLevel),
	}
	if d.Logger != nil {
		opts = append(opts, driver.WithLogger(d.Logger))
	}
	// A nil *Store in the interface would still be called
	if d.Store != nil {
		opts = append(opts, driver.WithRecorder(d.Store))
	}
	return driver.New(pack, opts...)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	deps       SessionDeps
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu forwards to the menu. Child screens finish with tea.Quit,
// which the session swallows when it switches screens.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.deps.Store, m.config.TickRate, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		pack, err := registry.Create(m.menu.Selected().PackID)
		if err != nil {
			// Shouldn't happen since menu only shows registered packs
			m.menu = NewMenuModel(m.config)
			return m, nil
		}
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.game = NewModel(m.deps.NewGame(pack), cfg)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
