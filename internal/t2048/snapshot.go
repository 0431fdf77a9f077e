package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlayingName     GameStateType = "playing"
	StateGameOverName    GameStateType = "game_over"
	StatePausedName      GameStateType = "paused"
	StatePromptName      GameStateType = "prompt"
	StatePausedSmallName GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Theme   string
	Score   uint64
	Moves   int
	Board   [Size][Size]Rank // Row-major ranks
	MaxTile uint64
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlayingName
	switch {
	case g.tooSmall:
		state = StatePausedSmallName
	case g.session.State() == StateGameOver:
		state = StateGameOverName
	case g.prompt != PromptNone:
		state = StatePromptName
	case g.paused:
		state = StatePausedName
	}

	grid := g.session.Grid()
	return Snapshot{
		Tick:    g.tick,
		Theme:   g.theme.Name,
		Score:   g.session.Score(),
		Moves:   g.session.Moves(),
		Board:   grid.Rows(),
		MaxTile: g.session.MaxTile(),
		State:   state,
	}
}
