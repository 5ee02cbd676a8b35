package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/driver"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing a pack.
type Model struct {
	game       *driver.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	help       help.Model
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *driver.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalized()

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(DefaultHoldTicks),
		help:      h,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The camera follows the player, so a resize never resets the level
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Only leave from a halted screen so a stray Esc can't end a run
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
	case core.ActionNone:
		if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
			m.saveScreenshot()
		}
		return m, nil
	}

	m.held.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	in := m.held.Frame()
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for a new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.held.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_L%d_%s.txt", m.game.ID(), m.game.LevelIndex()+1, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the given game.
// Returning to the menu from a standalone run simply exits.
func Run(game *driver.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		standalone{model},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standalone quits the program when the player asks for the menu.
type standalone struct {
	Model
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.Model.Update(msg)
	if m, ok := next.(Model); ok {
		s.Model = m
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
