package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// MenuItem represents a selectable pack in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Levels int
	Solved int
	Level  int // 0 = start from the beginning, 1-N = specific level
}

// menuStage is the list the menu is currently showing.
type menuStage int

const (
	stagePacks menuStage = iota
	stageLevels
)

// MenuModel is the Bubble Tea model for the pack and level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	stage          menuStage
	levelTitles    []string
	levelSolved    map[int]bool
	levelCursor    int // 0 = "Start from Beginning"
	scrollOffset   int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	theme          Theme
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Levels: g.Levels,
		}
		if store != nil {
			if done, err := store.CompletedLevels(g.ID); err == nil {
				item.Solved = len(done)
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
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
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	if m.stage == stageLevels {
		return m.handleLevelKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.Levels <= 1 {
			m.selected = &item
			return m, tea.Quit // Exit menu to start game
		}
		m.openLevels(item)
	}

	return m, nil
}

// openLevels switches to the level list of a pack.
func (m *MenuModel) openLevels(item MenuItem) {
	m.levelTitles = nil
	if g, err := registry.Create(item.GameID); err == nil {
		if p, ok := g.(registry.LevelPicker); ok {
			m.levelTitles = p.LevelTitles()
		}
	}
	m.levelSolved = nil
	if m.store != nil {
		if done, err := m.store.CompletedLevels(item.GameID); err == nil {
			m.levelSolved = done
		}
	}
	m.stage = stageLevels
	m.levelCursor = 0
	m.scrollOffset = 0
}

// handleLevelKey processes navigation in the level list.
func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levelTitles) {
			m.levelCursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		item := m.items[m.cursor]
		item.Level = m.levelCursor
		m.selected = &item
		return m, tea.Quit
	case MenuActionBack:
		m.stage = stagePacks
	}
	return m, nil
}

// visibleLevels returns how many level rows fit on screen.
func (m MenuModel) visibleLevels() int {
	return max(3, m.height-10) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleLevels()
	if m.levelCursor < m.scrollOffset {
		m.scrollOffset = m.levelCursor
	} else if m.levelCursor >= m.scrollOffset+visible {
		m.scrollOffset = m.levelCursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S O K O B A N"), m.width))
	b.WriteString("\n\n")

	if m.stage == stageLevels {
		m.viewLevels(&b)
	} else {
		m.viewPacks(&b)
	}

	return b.String()
}

// viewPacks renders the pack list.
func (m MenuModel) viewPacks(b *strings.Builder) {
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a pack"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No packs found"), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		progress := fmt.Sprintf(" (%d/%d)", item.Solved, item.Levels)
		if item.Levels > 0 && item.Solved >= item.Levels {
			progress = m.theme.MenuItemSolved.Render(progress)
		} else {
			progress = m.theme.MenuDescription.Render(progress)
		}

		line := style.Render(cursor+item.Title) + progress
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuControls.Render(controls), m.width))
	b.WriteString("\n")
}

// viewLevels renders the level list of the chosen pack.
func (m MenuModel) viewLevels(b *strings.Builder) {
	subtitle := fmt.Sprintf("%s: select a level", m.items[m.cursor].Title)
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	// "Start from Beginning" option
	if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.levelCursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	// Level list
	start := max(0, m.scrollOffset-1)
	end := min(len(m.levelTitles), start+m.visibleLevels())

	for i := start; i < end; i++ {
		n := i + 1 // Account for "Start from Beginning" option
		cursor := "  "
		style := m.theme.MenuItemNormal
		if n == m.levelCursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		mark := "  "
		if m.levelSolved[n] {
			mark = m.theme.MenuItemSolved.Render(" ✓")
		}

		line := style.Render(fmt.Sprintf("%s%2d. %s", cursor, n, m.levelTitles[i])) + mark
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if start > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levelTitles) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Esc: Packs  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuControls.Render(controls), m.width))
	b.WriteString("\n")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
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
	GameID          string
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Level = m.Selected().Level
	} else {
		result.Quit = true
	}

	return result, nil
}
