package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in dispatch order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// rotations is how many counter-clockwise turns bring d to "up".
func (d Direction) rotations() int {
	switch d {
	case DirLeft:
		return 1
	case DirDown:
		return 2
	case DirRight:
		return 3
	default:
		return 0
	}
}

// TileMove is a tile movement in board coordinates.
type TileMove struct {
	From   Coord
	To     Coord
	Rank   Rank // Rank before the move
	Merged bool // Whether this tile merged with another
}

// MoveResult is the outcome of moving the whole grid in one direction.
type MoveResult struct {
	Changed    bool
	ScoreDelta uint64
	Moves      []TileMove
}

// Move slides every line of the grid in direction d.
//
// Only "up" is implemented directly: the grid is rotated so d points up,
// each column is slid toward row 0, and the grid is rotated back. The
// rotations always add up to a full turn, so orientation is preserved.
func (g *Grid) Move(d Direction) MoveResult {
	var res MoveResult
	turns := d.rotations()

	g.RotateTimes(turns)
	for x := range Size {
		line := SlideLine(&g[x])
		res.Changed = res.Changed || line.Changed
		res.ScoreDelta += line.ScoreDelta
		for _, m := range line.Moves {
			res.Moves = append(res.Moves, TileMove{
				From:   Coord{X: x, Y: m.From}.Unrotate(turns),
				To:     Coord{X: x, Y: m.To}.Unrotate(turns),
				Rank:   m.Rank,
				Merged: m.Merged,
			})
		}
	}
	g.RotateTimes(4 - turns)

	return res
}

// MoveUp slides every column toward row 0.
func (g *Grid) MoveUp() MoveResult { return g.Move(DirUp) }

// MoveDown slides every column toward the last row.
func (g *Grid) MoveDown() MoveResult { return g.Move(DirDown) }

// MoveLeft slides every row toward column 0.
func (g *Grid) MoveLeft() MoveResult { return g.Move(DirLeft) }

// MoveRight slides every row toward the last column.
func (g *Grid) MoveRight() MoveResult { return g.Move(DirRight) }
