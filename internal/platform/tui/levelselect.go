package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// namedLevels is implemented by packs that carry level names.
type namedLevels interface {
	LevelName(i int) string
}

// LevelSelection holds the chosen starting level (0-based).
type LevelSelection struct {
	Level int
}

// LevelSelectModel lets users start a pack from the top or from a chosen level.
type LevelSelectModel struct {
	title         string
	names         []string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     *LevelSelection
	quitting      bool
	back          bool
}

// NewLevelSelectModel creates a selector for the given pack.
func NewLevelSelectModel(pack registry.Pack, width, height int) LevelSelectModel {
	count := len(pack.Plans())
	names := make([]string, count)
	named, hasNames := pack.(namedLevels)
	for i := range names {
		if hasNames {
			names[i] = named.LevelName(i)
		} else {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}

	return LevelSelectModel{
		title:     pack.Title(),
		names:     names,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleModeKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelSelectModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // Campaign, Select Level
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 || len(m.names) == 0 {
			m.selection = &LevelSelection{}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LevelSelectModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.names)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection = &LevelSelection{Level: m.levelCursor}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the selector.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back || m.selection != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")

	var lines []string
	if m.inLevelSelect {
		b.WriteString(centerText("Select level:", m.width))
		for i, name := range m.names {
			lines = append(lines, fmt.Sprintf("%2d. %s", i+1, name))
		}
	} else {
		b.WriteString(centerText("Select mode:", m.width))
		lines = []string{
			fmt.Sprintf("Campaign (%d levels)", len(m.names)),
			"Select Level...",
		}
	}
	b.WriteString("\n\n")

	cursor := m.cursor
	if m.inLevelSelect {
		cursor = m.levelCursor
	}
	for i, line := range lines {
		if i == cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m LevelSelectModel) Selected() *LevelSelection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector shows the selector and returns the choice.
// A nil selection means the user backed out or quit.
func RunLevelSelector(pack registry.Pack, cfg core.RuntimeConfig) (*LevelSelection, error) {
	p := tea.NewProgram(NewLevelSelectModel(pack, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
