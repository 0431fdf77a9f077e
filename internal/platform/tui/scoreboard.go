package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForStats = 90 // narrower terminals drop the stats panel
	statsWidth       = 22
	scoreboardLimit  = 100
)

// ScoreReader reads recorded games.
type ScoreReader interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// scoreFilter selects which recorded games the table lists.
type scoreFilter int

const (
	filterAll scoreFilter = iota
	filterMine
)

func (f scoreFilter) String() string {
	if f == filterMine {
		return "YOUR GAMES"
	}
	return "HIGH SCORES"
}

type scoreboardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Filter, k.Back, k.Quit},
	}
}

var defaultScoreboardKeys = scoreboardKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "best")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Filter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "all/mine")),
	Back:   key.NewBinding(key.WithKeys("esc", "b", "backspace"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists recorded 2048 games with aggregate statistics.
type ScoreboardModel struct {
	player  string
	filter  scoreFilter
	entries []storage.ScoreEntry // everything loaded, best first
	stats   *storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel loads scores from reader, which may be nil.
// Rows recorded by player are marked.
func NewScoreboardModel(reader ScoreReader, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		player: player,
		keys:   defaultScoreboardKeys,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	if reader != nil {
		m.entries, m.loadErr = reader.TopScores(scoreboardLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = reader.Stats()
		}
	}

	m.table = m.newTable()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// visible returns the entries the current filter selects, keeping their
// position in the overall ranking.
func (m ScoreboardModel) visible() (rows []storage.ScoreEntry, ranks []int) {
	for i, e := range m.entries {
		if m.filter == filterMine && e.Player != m.player {
			continue
		}
		rows = append(rows, e)
		ranks = append(ranks, i+1)
	}
	return rows, ranks
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Played", Width: 12},
	}

	avail := m.width - 4
	if m.showStats() {
		avail -= statsWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := avail - used; extra > 0 {
		columns[4].Width += min(extra, 8)
	}

	entries, ranks := m.visible()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rank := strconv.Itoa(ranks[i])
		if m.player != "" && e.Player == m.player {
			rank += "*"
		}
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			rank,
			strconv.FormatUint(e.Score, 10),
			strconv.FormatUint(e.MaxTile, 10),
			strconv.Itoa(e.Moves),
			player,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("178")).
		Bold(true)
	t.SetStyles(s)

	return t
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.Filter):
			if m.filter == filterAll {
				m.filter = filterMine
			} else {
				m.filter = filterAll
			}
			m.table = m.newTable()
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
	}
	return m, nil
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	body := panel.Render(m.tableView())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.statsView(panel), "  ", body)
	}

	var b strings.Builder
	b.WriteString(title.Render(centerText(m.filter.String(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsView(panel lipgloss.Style) string {
	if m.stats == nil {
		return panel.Width(statsWidth).Render("Stats\n\nn/a")
	}
	lines := []string{
		"Stats",
		strings.Repeat("─", statsWidth-4),
		fmt.Sprintf("Games:  %d", m.stats.GamesCount),
		fmt.Sprintf("Best:   %d", m.stats.HighScore),
		fmt.Sprintf("Avg:    %.0f", m.stats.AvgScore),
		fmt.Sprintf("Tile:   %d", m.stats.BestTile),
		fmt.Sprintf("Moves:  %d", m.stats.TotalMoves),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "Last:   "+m.stats.LastPlayed.Format("Jan 02"))
	}
	return panel.Width(statsWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) tableView() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return empty.Render("Could not load scores:\n" + m.loadErr.Error())
	}
	if len(m.table.Rows()) == 0 {
		if m.filter == filterMine && len(m.entries) > 0 {
			return empty.Render("No games recorded for " + m.player + " yet.")
		}
		return empty.Render("No scores recorded yet.\nReach 2048 and set the first one!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
