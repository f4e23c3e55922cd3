package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-grab/internal/storage"
)

// Results board layout constants
const (
	minWidthForSidebar = 96  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxResults         = 100 // Max results to load
)

// allModes is the pseudo-mode that shows every result.
const allModes = ""

// ScoreboardKeyMap defines the key bindings for the results board.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev mode"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev mode"),
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

// ScoreboardModel is the Bubble Tea model for the results board.
type ScoreboardModel struct {
	modes       []string // allModes first, then every recorded mode
	modeCursor  int
	store       *storage.Store
	results     []storage.ResultEntry
	stats       map[string]*storage.ModeStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new results board model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	modes := []string{allModes}
	var stats map[string]*storage.ModeStats
	if store != nil {
		if recorded, err := store.Modes(); err == nil {
			modes = append(modes, recorded...)
		}
		stats, _ = store.Stats()
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		modes:       modes,
		store:       store,
		stats:       stats,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadResults()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Mode", Width: 14},
		{Title: "P1", Width: 5},
		{Title: "P2", Width: 5},
		{Title: "Winner", Width: 6},
		{Title: "Ended", Width: 14},
	}

	height := m.height - 10 // Leave room for header, tabs, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
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

// currentMode returns the mode filter of the active tab.
func (m ScoreboardModel) currentMode() string {
	return m.modes[m.modeCursor]
}

// loadResults loads results for the active tab.
func (m *ScoreboardModel) loadResults() {
	if m.store == nil {
		m.results = nil
		m.updateTableRows()
		return
	}

	results, err := m.store.RecentResults(m.currentMode(), maxResults)
	if err != nil {
		m.results = nil
	} else {
		m.results = results
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Mode,
			fmt.Sprintf("%d", r.P1Total),
			fmt.Sprintf("%d", r.P2Total),
			winner,
			r.Reason,
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the results board model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
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

		case key.Matches(msg, m.keys.NextMode), key.Matches(msg, m.keys.Right):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode), key.Matches(msg, m.keys.Left):
			m.modeCursor--
			if m.modeCursor < 0 {
				m.modeCursor = len(m.modes) - 1
			}
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RESULTS - "+modeTitle(m.currentMode()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderSidebar()))
	} else {
		b.WriteString(tableRendered)
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per mode.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		name := modeTitle(mode)
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		// Just show current mode with arrows
		tabLine = fmt.Sprintf("< %s >", modeTitle(m.currentMode()))
	}
	return tabLine
}

// renderSidebar renders win/loss statistics for the active mode.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	st := m.modeStats()

	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Games:   %d\n", st.Games)
	fmt.Fprintf(&b, "P1 wins: %d\n", st.P1Wins)
	fmt.Fprintf(&b, "P2 wins: %d\n", st.P2Wins)
	fmt.Fprintf(&b, "Ties:    %d\n", st.Ties)
	fmt.Fprintf(&b, "Best:    %d", st.BestTotal)

	return sidebarStyle.Render(b.String())
}

// modeStats returns the statistics of the active tab, summing every mode
// for the "all" tab.
func (m ScoreboardModel) modeStats() storage.ModeStats {
	if mode := m.currentMode(); mode != allModes {
		if st := m.stats[mode]; st != nil {
			return *st
		}
		return storage.ModeStats{Mode: mode}
	}

	var total storage.ModeStats
	for _, st := range m.stats {
		total.Games += st.Games
		total.P1Wins += st.P1Wins
		total.P2Wins += st.P2Wins
		total.Ties += st.Ties
		if st.BestTotal > total.BestTotal {
			total.BestTotal = st.BestTotal
		}
	}
	return total
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}

	return m.table.View()
}

// modeTitle turns a ledger mode into a tab label.
func modeTitle(mode string) string {
	switch {
	case mode == allModes:
		return "All"
	case mode == "two-player":
		return "Two players"
	case strings.HasPrefix(mode, "vs-cpu-d"):
		return "vs CPU " + strings.TrimPrefix(mode, "vs-cpu-d")
	case strings.HasPrefix(mode, "cpu-first-d"):
		return "CPU first " + strings.TrimPrefix(mode, "cpu-first-d")
	}
	return mode
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunResultsBoard runs the results board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunResultsBoard(store *storage.Store, width, height int, opts ...tea.ProgramOption) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...,
	)

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
