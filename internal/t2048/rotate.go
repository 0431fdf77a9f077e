package t2048

// Rotate turns the grid a quarter turn in place: counter-clockwise in
// [column][row] index space, which is clockwise as drawn on screen.
// Each ring layer is rotated by cycling four symmetric cells at a time.
func (g *Grid) Rotate() {
	const n = Size
	for i := 0; i < n/2; i++ {
		for j := i; j < n-i-1; j++ {
			tmp := g[i][j]
			g[i][j] = g[j][n-i-1]
			g[j][n-i-1] = g[n-i-1][n-j-1]
			g[n-i-1][n-j-1] = g[n-j-1][i]
			g[n-j-1][i] = tmp
		}
	}
}

// RotateTimes applies Rotate times mod 4 times.
func (g *Grid) RotateTimes(times int) {
	for range ((times % 4) + 4) % 4 {
		g.Rotate()
	}
}

// Unrotate maps a coordinate in a grid rotated `times` times back to the
// coordinate of the same cell in the unrotated grid.
func (c Coord) Unrotate(times int) Coord {
	for range ((times % 4) + 4) % 4 {
		c = Coord{X: c.Y, Y: Size - 1 - c.X}
	}
	return c
}
