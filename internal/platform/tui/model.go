package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveScore(r storage.Result) (int64, error)
}

// Model is the Bubble Tea model for playing one 2048 board.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	saver      ScoreSaver
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	runID      string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Inside a SessionModel: leaving returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// saver and logger may be nil.
func NewModel(game *t2048.Game, saver ScoreSaver, logger *log.Logger, player string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:      saver,
		logger:     logger,
		player:     player,
		config:     cfg,
		runID:      storage.NewRunID(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "run", m.runID, "seed", m.config.Seed, "theme", m.game.Theme().Name)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// ctrl+c leaves immediately; keep the game if it was worth anything.
		session := m.game.Session()
		if session.State() == t2048.StatePlaying && session.Score() > 0 {
			m.saveResult(session.Summary())
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended != nil {
		m.saveResult(*result.Ended)
		m.runID = storage.NewRunID()
	}

	if result.Quit {
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records a finished game. Best-effort: failures are logged only.
func (m *Model) saveResult(sum core.Summary) {
	if m.saver == nil || sum.Score == 0 {
		return
	}

	_, err := m.saver.SaveScore(storage.Result{
		RunID:   m.runID,
		Player:  m.player,
		Theme:   m.game.Theme().Name,
		Score:   sum.Score,
		MaxTile: sum.MaxTile,
		Moves:   sum.Moves,
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
		return
	}
	m.logger.Info("score saved", "run", m.runID, "player", m.player, "score", sum.Score, "max_tile", sum.MaxTile)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player left the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player left the game inside a session.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game *t2048.Game, saver ScoreSaver, logger *log.Logger, player string, cfg core.RuntimeConfig) error {
	model := NewModel(game, saver, logger, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
