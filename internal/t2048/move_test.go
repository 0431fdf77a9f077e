package t2048

import "testing"

var sampleRows = [Size][Size]Rank{
	{1, 1, 0, 0},
	{2, 0, 2, 0},
	{1, 1, 1, 1},
	{0, 0, 0, 1},
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected [Size][Size]Rank
		score    uint64
	}{
		{
			dir: DirLeft,
			expected: [Size][Size]Rank{
				{2, 0, 0, 0},
				{3, 0, 0, 0},
				{2, 2, 0, 0},
				{1, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirRight,
			expected: [Size][Size]Rank{
				{0, 0, 0, 2},
				{0, 0, 0, 3},
				{0, 0, 2, 2},
				{0, 0, 0, 1},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirUp,
			expected: [Size][Size]Rank{
				{1, 2, 2, 2},
				{2, 0, 1, 0},
				{1, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 4,
		},
		{
			dir: DirDown,
			expected: [Size][Size]Rank{
				{0, 0, 0, 0},
				{1, 0, 0, 0},
				{2, 0, 2, 0},
				{1, 2, 1, 2},
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := GridFromRows(sampleRows)
			res := g.Move(tt.dir)

			if got := g.Rows(); got != tt.expected {
				t.Errorf("Move(%s): got\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
			if !res.Changed {
				t.Errorf("Move(%s) should report a change", tt.dir)
			}
			if res.ScoreDelta != tt.score {
				t.Errorf("Move(%s) score = %d, want %d", tt.dir, res.ScoreDelta, tt.score)
			}
		})
	}
}

func TestMoveEmptyGrid(t *testing.T) {
	for _, d := range Directions {
		var g Grid
		res := g.Move(d)
		if res.Changed || res.ScoreDelta != 0 || len(res.Moves) != 0 {
			t.Errorf("Move(%s) on empty grid = %+v, want no change", d, res)
		}
		if g != (Grid{}) {
			t.Errorf("Move(%s) modified an empty grid", d)
		}
	}
}

func TestMoveReportsBoardCoordinates(t *testing.T) {
	tests := []struct {
		dir  Direction
		from Coord
		to   Coord
	}{
		{DirUp, Coord{X: 2, Y: 3}, Coord{X: 2, Y: 0}},
		{DirDown, Coord{X: 2, Y: 0}, Coord{X: 2, Y: 3}},
		{DirLeft, Coord{X: 3, Y: 1}, Coord{X: 0, Y: 1}},
		{DirRight, Coord{X: 0, Y: 1}, Coord{X: 3, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			var g Grid
			g.Set(tt.from, 4)
			res := g.Move(tt.dir)

			if len(res.Moves) != 1 {
				t.Fatalf("got %d moves, want 1", len(res.Moves))
			}
			m := res.Moves[0]
			if m.From != tt.from || m.To != tt.to || m.Rank != 4 || m.Merged {
				t.Errorf("move = %+v, want %v -> %v rank 4", m, tt.from, tt.to)
			}
			if g.Get(tt.to) != 4 {
				t.Errorf("tile not found at %v", tt.to)
			}
		})
	}
}

func TestMoveUnchangedWhenPacked(t *testing.T) {
	g := GridFromRows([Size][Size]Rank{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g

	for _, d := range []Direction{DirUp, DirLeft} {
		if res := g.Move(d); res.Changed {
			t.Errorf("Move(%s) should not change a packed corner", d)
		}
	}
	if g != before {
		t.Error("unchanged moves modified the grid")
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	g := GridFromRows([Size][Size]Rank{
		{1, 1, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.MoveLeft()

	want := [Size]Rank{2, 2, 0, 0}
	if got := g.Rows()[0]; got != want {
		t.Errorf("row after MoveLeft = %v, want %v", got, want)
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{
		DirUp:         "up",
		DirDown:       "down",
		DirLeft:       "left",
		DirRight:      "right",
		Direction(42): "unknown",
	}
	for d, want := range names {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, got, want)
		}
	}
}
