package t2048

// HasEmptyCell returns true if there's at least one empty cell.
func (g *Grid) HasEmptyCell() bool {
	for x := range Size {
		for y := range Size {
			if g[x][y] == Empty {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two adjacent cells in any row or column
// hold the same rank.
func (g *Grid) HasPossibleMerge() bool {
	for x := range Size {
		for y := range Size {
			r := g[x][y]
			if x < Size-1 && g[x+1][y] == r {
				return true
			}
			if y < Size-1 && g[x][y+1] == r {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether no move can change the board: no empty cell
// and no equal neighbours along either axis. The grid is not modified.
func (g *Grid) IsGameOver() bool {
	return !g.HasEmptyCell() && !g.HasPossibleMerge()
}

// CanMove reports whether moving in direction d would change the board.
// It probes a copy, leaving g untouched.
func (g *Grid) CanMove(d Direction) bool {
	probe := *g
	return probe.Move(d).Changed
}
