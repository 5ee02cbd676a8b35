package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable pack in the menu.
type MenuItem struct {
	PackID string
	Title  string
	Levels int
}

// MenuModel is the Bubble Tea model for the pack picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered pack.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	packs := registry.List()
	items := make([]MenuItem, 0, len(packs))
	for _, p := range packs {
		items = append(items, MenuItem{PackID: p.ID, Title: p.Title, Levels: p.Levels})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, n-1), 0)
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		if n == 0 {
			break
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("P L A T F O R M E R"),
		"",
		"Select a level pack",
		"",
	}

	if len(m.items) == 0 {
		lines = append(lines, menuDimStyle.Render("No level packs installed."))
	}
	for i, item := range m.items {
		entry := fmt.Sprintf("%s (%d levels)", item.Title, item.Levels)
		if i == m.cursor {
			entry = menuCursorStyle.Render("> " + entry)
		} else {
			entry = "  " + entry
		}
		lines = append(lines, entry)
	}

	lines = append(lines, "", menuDimStyle.Render("↑/↓ move · enter play · tab best times · q quit"))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PackID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.PackID = m.Selected().PackID
	default:
		result.Quit = true
	}

	return result, nil
}
