package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-grab/internal/config"
	"github.com/vovakirdan/number-grab/internal/core"
)

// MenuItem is one match setup the player can pick.
type MenuItem struct {
	Title      string
	AI         bool
	Player2    bool
	Difficulty config.Difficulty
}

// Apply copies the setup into s, leaving every other setting alone.
func (it MenuItem) Apply(s *config.Settings) {
	s.AI = it.AI
	s.Player2 = it.Player2
	if it.AI {
		s.Difficulty = it.Difficulty
	}
}

// MenuItems lists the match setups in menu order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Two players"},
		{Title: "Versus easy opponent", AI: true, Difficulty: config.DifficultyEasy},
		{Title: "Versus medium opponent", AI: true, Difficulty: config.DifficultyMedium},
		{Title: "Versus hard opponent", AI: true, Difficulty: config.DifficultyHard},
		{Title: "Hard opponent moves first", AI: true, Player2: true, Difficulty: config.DifficultyHard},
	}
}

// MenuModel is the Bubble Tea model for the match setup menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	settings       config.Settings
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a setup
	openScoreboard bool      // True if user pressed Tab for results
}

// NewMenuModel creates a new menu model. The cursor starts on the setup
// that matches s.
func NewMenuModel(s config.Settings, cfg core.RuntimeConfig) MenuModel {
	items := MenuItems()
	cursor := 0
	for i, it := range items {
		if it.AI == s.AI && it.Player2 == s.Player2 && (!it.AI || it.Difficulty == s.Difficulty) {
			cursor = i
			break
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		settings:  s,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		selected.Apply(&m.settings)
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show results

	case MenuActionTogglePassing:
		m.settings.Passing = !m.settings.Passing

	case MenuActionToggleFrenzy:
		// frenzy cannot be combined with a time budget
		if !m.settings.Timed() {
			m.settings.Frenzy = !m.settings.Frenzy
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  N U M B E R   G R A B  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your match", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	options := fmt.Sprintf("Passing: %s   Frenzy: %s   Line: %d values up to %d",
		onOff(m.settings.Passing), onOff(m.settings.Frenzy), m.settings.Length, m.settings.Max)
	b.WriteString(centerText(options, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Play  |  P: Passing  |  F: Frenzy  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Settings returns the settings with the menu choices applied.
func (m MenuModel) Settings() config.Settings {
	return m.settings
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the results board.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Settings        config.Settings
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// menuResult extracts the outcome from a finished menu model.
func menuResult(finalModel tea.Model, s config.Settings, cfg core.RuntimeConfig) MenuResult {
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Settings: s, Config: cfg, Quit: true}
	}

	result := MenuResult{
		Settings: m.Settings(),
		Config:   m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(s config.Settings, cfg core.RuntimeConfig, opts ...tea.ProgramOption) (MenuResult, error) {
	model := NewMenuModel(s, cfg)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...,
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Settings: s, Config: cfg}, err
	}

	return menuResult(finalModel, s, cfg), nil
}
