package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show pack list sidebar
	sidebarWidth       = 22  // Width of pack list sidebar
	maxResults         = 100 // Max results to load
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the fastest level clears per pack.
type ScoreboardModel struct {
	packs       []registry.PackInfo
	packCursor  int
	store       *storage.Store
	tickRate    int
	results     []storage.ResultEntry
	stats       *storage.PackStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
// tickRate converts stored tick counts to seconds.
func NewScoreboardModel(store *storage.Store, tickRate, width, height int) ScoreboardModel {
	if tickRate <= 0 {
		tickRate = 60
	}

	m := ScoreboardModel{
		packs:       registry.List(),
		store:       store,
		tickRate:    tickRate,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.packs) > 0 {
		m.loadResults(m.packs[0].ID)
	}

	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Coins", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults loads the fastest wins and summary for a pack.
func (m *ScoreboardModel) loadResults(packID string) {
	m.results = nil
	m.stats = nil
	if m.store != nil {
		if results, err := m.store.TopResults(packID, maxResults); err == nil {
			m.results = results
		}
		if stats, err := m.store.Stats(packID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.LevelIndex+1),
			FormatTicks(r.Ticks, m.tickRate),
			fmt.Sprintf("%d", r.Coins),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// FormatTicks renders a tick count as seconds.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	return fmt.Sprintf("%.2fs", float64(ticks)/float64(tickRate))
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			m.selectPack(m.packCursor + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			m.selectPack(m.packCursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectPack moves the cursor with wrap-around and reloads results.
func (m *ScoreboardModel) selectPack(i int) {
	n := len(m.packs)
	if n == 0 {
		return
	}
	m.packCursor = ((i % n) + n) % n
	m.loadResults(m.packs[m.packCursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST TIMES"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("BEST TIMES - %s", m.packs[m.packCursor].Title)
	}
	b.WriteString(centerText(activeStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	body := borderStyle.Render(m.renderTableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Attempts == 0 {
		return "No attempts yet"
	}
	best := "-"
	if m.stats.BestLevel >= 0 {
		best = fmt.Sprintf("%d", m.stats.BestLevel+1)
	}
	return fmt.Sprintf("Attempts %d  Wins %d  Losses %d  Coins %d  Furthest level %s",
		m.stats.Attempts, m.stats.Wins, m.stats.Losses, m.stats.TotalCoins, best)
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Packs\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, p := range m.packs {
		name := truncate(p.Title, sidebarWidth-6)
		if i == m.packCursor {
			sb.WriteString(activeStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}

	return borderStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) renderTabs() string {
	if len(m.packs) == 0 {
		return ""
	}
	tabs := make([]string, len(m.packs))
	for i, p := range m.packs {
		name := truncate(p.Title, 10)
		if i == m.packCursor {
			tabs[i] = activeStyle.Render("[" + name + "]")
		} else {
			tabs[i] = menuDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.packs[m.packCursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		return menuDimStyle.Italic(true).Padding(2, 4).
			Render("No levels cleared yet.\nFinish a level to set a time!")
	}
	return m.table.View()
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, tickRate, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, tickRate, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
