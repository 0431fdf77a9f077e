package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// State is the session's position in its state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// MoveOutcome is what a player move did to the session.
type MoveOutcome struct {
	MoveResult

	// Spawned is the tile added after a changing move; valid when HasSpawn.
	Spawned  Tile
	HasSpawn bool
}

// Session holds the live game: one grid and one score.
// It is mutated only through ApplyMove, SpawnTile and Restart.
type Session struct {
	grid    Grid
	score   uint64
	moves   int
	state   State
	spawner *Spawner
}

// NewSession creates a session and starts the first game.
func NewSession(spawner *Spawner) *Session {
	s := &Session{spawner: spawner}
	s.Restart()
	return s
}

// Restart clears the grid, seeds it with two tiles and zeroes the score.
// It is valid in any state and always returns to StatePlaying.
func (s *Session) Restart() {
	s.grid.Clear()
	s.score = 0
	s.moves = 0
	s.state = StatePlaying
	s.spawner.Spawn(&s.grid)
	s.spawner.Spawn(&s.grid)
}

// ApplyMove moves the board in direction d. A changing move adds its score,
// spawns a tile and checks for the end of the game. A move that changes
// nothing, or any move after game over, leaves the session untouched.
func (s *Session) ApplyMove(d Direction) MoveOutcome {
	if s.state != StatePlaying {
		return MoveOutcome{}
	}

	next := s.grid
	res := next.Move(d)
	if !res.Changed {
		return MoveOutcome{}
	}

	s.grid = next
	s.score += res.ScoreDelta
	s.moves++

	out := MoveOutcome{MoveResult: res}
	out.Spawned, out.HasSpawn = s.SpawnTile()

	if s.grid.IsGameOver() {
		s.state = StateGameOver
	}
	return out
}

// SpawnTile places one random tile. It is a no-op on a full grid.
func (s *Session) SpawnTile() (Tile, bool) {
	return s.spawner.Spawn(&s.grid)
}

// IsGameOver reports whether no further move is possible. It does not
// change the session.
func (s *Session) IsGameOver() bool {
	return s.grid.IsGameOver()
}

// Cell returns the rank at column x, row y.
func (s *Session) Cell(x, y int) Rank {
	return s.grid.Get(Coord{X: x, Y: y})
}

// Score returns the accumulated score.
func (s *Session) Score() uint64 {
	return s.score
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return Size
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Moves returns the number of moves that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// MaxTile returns the highest tile value on the board.
func (s *Session) MaxTile() uint64 {
	return s.grid.MaxRank().Value()
}

// Grid returns a copy of the board.
func (s *Session) Grid() Grid {
	return s.grid
}

// Summary describes the current game for score persistence.
func (s *Session) Summary() core.Summary {
	return core.Summary{
		Score:   s.score,
		MaxTile: s.MaxTile(),
		Moves:   s.moves,
	}
}
