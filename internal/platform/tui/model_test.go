package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/driver"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

type stubPack struct {
	plans [][]string
}

func (p stubPack) ID() string            { return "stub" }
func (p stubPack) Title() string         { return "Stub" }
func (p stubPack) Plans() [][]string     { return p.plans }
func (p stubPack) Symbols() game.Symbols { return game.DefaultSymbols() }

var (
	runPlan  = []string{"      ", "@    o", "xxxxxx"}
	lavaPlan = []string{"  ", "@ ", "!!"}
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
}

func newTestModel(cfg config.PlatformerConfig, plans ...[]string) Model {
	g := driver.New(stubPack{plans: plans}, driver.WithConfig(cfg), driver.WithLogger(log.New(io.Discard)))
	return NewModel(g, testConfig())
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = send(t, m, TickMsg(time.Now()))
	}
	return m
}

func playerX(m Model) float64 {
	return m.game.Level().Player().Body().Pos.X
}

func TestModelInitialState(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)

	state := m.State()
	if state.Level != 1 {
		t.Errorf("Level = %d, expected 1", state.Level)
	}
	if state.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", state.Lives)
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestModelHeldRunMovesPlayer(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)
	m = tick(t, m, 10) // settle on the floor

	start := playerX(m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, DefaultHoldTicks)

	if moved := playerX(m) - start; moved <= 0 {
		t.Fatalf("player moved %.3f, expected to run right", moved)
	}

	// Without repeats the hold runs out and the player stops
	m = tick(t, m, 2)
	stopped := playerX(m)
	m = tick(t, m, 5)
	if playerX(m) != stopped {
		t.Errorf("player kept moving after hold expired: %.3f -> %.3f", stopped, playerX(m))
	}
}

func TestModelPauseAndBack(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)

	// Esc while playing does nothing
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)
	if m.BackToMenu() {
		t.Fatal("Esc while playing should not leave the game")
	}

	m = send(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if !m.State().Paused {
		t.Fatal("expected game to be paused")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc while paused should go back to menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResizeKeepsLevel(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 5)
	x := playerX(m)

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 20-helpHeight {
		t.Errorf("screen = %dx%d, expected 60x%d", m.screen.Width(), m.screen.Height(), 20-helpHeight)
	}
	if playerX(m) != x {
		t.Error("resize should not reset the level")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Gameplay.Lives = 1
	cfg.Gameplay.FinishDelay = 0.1

	m := newTestModel(cfg, lavaPlan)
	m = tick(t, m, 30)
	if !m.State().GameOver {
		t.Fatal("expected game over after falling in lava")
	}

	m = send(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if m.State().GameOver {
		t.Error("restart should begin a new run")
	}
	if m.State().Lives != 1 {
		t.Errorf("Lives = %d, expected 1", m.State().Lives)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(config.DefaultPlatformerConfig(), runPlan)
	view := m.View()

	if !strings.Contains(view, string(driver.PlayerGlyph)) {
		t.Error("View() should draw the player")
	}
	if !strings.Contains(view, "jump") {
		t.Error("View() should include key help")
	}
}

func TestStandaloneQuitsOnBack(t *testing.T) {
	s := standalone{newTestModel(config.DefaultPlatformerConfig(), runPlan)}

	next, _ := s.Update(runeKey('p'))
	s = next.(standalone)
	next, _ = s.Update(TickMsg(time.Now()))
	s = next.(standalone)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone should quit when leaving to the menu")
	}
}
