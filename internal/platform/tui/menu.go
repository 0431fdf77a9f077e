package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/theme"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScoreboard
	ChoiceQuit
)

const (
	itemPlay = iota
	itemScores
	itemTheme
	itemQuit
	itemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	theme     string
	highScore uint64
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(themeName string, highScore uint64, cfg core.RuntimeConfig) MenuModel {
	if !theme.Exists(themeName) {
		themeName = theme.Default
	}
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		theme:     themeName,
		highScore: highScore,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < itemCount-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		if m.cursor == itemTheme {
			m.theme = theme.Next(m.theme)
		}

	case MenuActionScoreboard:
		m.choice = ChoiceScoreboard

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.choice = ChoicePlay
		case itemScores:
			m.choice = ChoiceScoreboard
		case itemTheme:
			m.theme = theme.Next(m.theme)
		case itemQuit:
			m.choice = ChoiceQuit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	items := [itemCount]string{
		itemPlay:   "Play",
		itemScores: "High Scores",
		itemTheme:  fmt.Sprintf("Theme: < %s >", m.theme),
		itemQuit:   "Quit",
	}
	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or ChoiceNone while browsing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Theme returns the selected color scheme.
func (m MenuModel) Theme() string {
	return m.theme
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
