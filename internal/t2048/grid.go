// Package t2048 implements the 2048 sliding-tile puzzle: the rank-encoded grid,
// the slide/merge engine, rotation-based move dispatch, tile spawning,
// end-of-game detection, and the session state machine that ties them together.
package t2048

import "fmt"

// Size is the board dimension. It is a compile-time constant.
const Size = 4

// Rank is the exponent stored per cell: 0 is empty, r >= 1 is a tile of value 2^r.
//
// The highest rank reachable on a Size x Size board is Size*Size+1 (17 for
// Size 4), so uint8 is wide enough. Value stays exact for ranks below 64,
// which holds for any Size up to 7.
type Rank uint8

// Empty is the rank of an empty cell.
const Empty Rank = 0

// Value returns the displayed tile value (2^r), or 0 for an empty cell.
func (r Rank) Value() uint64 {
	if r == Empty {
		return 0
	}
	return 1 << r
}

// Coord addresses a cell by column (X) and row (Y), both in [0, Size).
type Coord struct {
	X, Y int
}

// Line is one column (or rotated row) ordered from index 0 toward the far end.
type Line [Size]Rank

// Grid stores Size x Size ranks indexed [column][row], so each column is a
// contiguous Line running top to bottom.
type Grid [Size]Line

func (c Coord) check() {
	if c.X < 0 || c.X >= Size || c.Y < 0 || c.Y >= Size {
		panic(fmt.Sprintf("t2048: coordinate (%d, %d) out of range", c.X, c.Y))
	}
}

// Get returns the rank at c. Out-of-range coordinates panic.
func (g *Grid) Get(c Coord) Rank {
	c.check()
	return g[c.X][c.Y]
}

// Set stores r at c. Out-of-range coordinates panic.
func (g *Grid) Set(c Coord, r Rank) {
	c.check()
	g[c.X][c.Y] = r
}

// Clear empties every cell.
func (g *Grid) Clear() {
	*g = Grid{}
}

// CountEmpty returns the number of empty cells.
func (g *Grid) CountEmpty() int {
	count := 0
	for x := range Size {
		for y := range Size {
			if g[x][y] == Empty {
				count++
			}
		}
	}
	return count
}

// EmptyCells returns the coordinates of all empty cells, column by column.
func (g *Grid) EmptyCells() []Coord {
	cells := make([]Coord, 0, Size*Size)
	for x := range Size {
		for y := range Size {
			if g[x][y] == Empty {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxRank returns the highest rank on the board.
func (g *Grid) MaxRank() Rank {
	var maxRank Rank
	for x := range Size {
		for y := range Size {
			if g[x][y] > maxRank {
				maxRank = g[x][y]
			}
		}
	}
	return maxRank
}

// GridFromRows builds a grid from row-major ranks, the way boards are
// usually written down. rows[y][x] becomes the cell at (x, y).
func GridFromRows(rows [Size][Size]Rank) Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			g[x][y] = rows[y][x]
		}
	}
	return g
}

// Rows returns the grid in row-major order, the inverse of GridFromRows.
func (g *Grid) Rows() [Size][Size]Rank {
	var rows [Size][Size]Rank
	for y := range Size {
		for x := range Size {
			rows[y][x] = g[x][y]
		}
	}
	return rows
}
