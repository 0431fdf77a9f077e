package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Scores is the score storage a session reads and writes.
// *storage.Store satisfies it.
type Scores interface {
	ScoreSaver
	ScoreReader
	HighScore() (uint64, error)
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// This is the top-level model used for SSH sessions and menu mode.
type SessionModel struct {
	scores     Scores
	logger     *log.Logger
	player     string
	opts       t2048.Options
	config     core.RuntimeConfig
	current    screen
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model. scores and logger may be nil.
func NewSessionModel(scores Scores, logger *log.Logger, player string, opts t2048.Options, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	m := SessionModel{
		scores: scores,
		logger: logger,
		player: player,
		opts:   opts,
		config: cfg,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	var high uint64
	if m.scores != nil {
		h, err := m.scores.HighScore()
		if err != nil {
			m.logger.Warn("could not read high score", "error", err)
		}
		high = h
	}
	return NewMenuModel(m.opts.Theme, high, m.config)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.opts.Theme = m.menu.Theme()

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		cfg := m.config
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		var saver ScoreSaver
		if m.scores != nil {
			saver = m.scores
		}
		m.game = NewModel(t2048.New(m.opts), saver, m.logger, m.player, cfg)
		m.game.embedded = true
		m.current = screenGame
		return m, m.game.Init()

	case ChoiceScoreboard:
		var reader ScoreReader
		if m.scores != nil {
			reader = m.scores
		}
		m.scoreboard = NewScoreboardModel(reader, m.player, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScoreboard
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
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

// updateScoreboard handles updates when showing the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
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

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the menu-driven program locally.
func RunSession(scores Scores, logger *log.Logger, player string, opts t2048.Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(scores, logger, player, opts, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
