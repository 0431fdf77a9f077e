package t2048

import "testing"

var checkerRows = [Size][Size]Rank{
	{1, 2, 1, 2},
	{2, 1, 2, 1},
	{1, 2, 1, 2},
	{2, 1, 2, 1},
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		name string
		rows [Size][Size]Rank
		want bool
	}{
		{
			name: "full without merges",
			rows: checkerRows,
			want: true,
		},
		{
			name: "one empty cell",
			rows: [Size][Size]Rank{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 0},
			},
			want: false,
		},
		{
			name: "horizontal pair only",
			rows: [Size][Size]Rank{
				{3, 3, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			want: false,
		},
		{
			name: "vertical pair only",
			rows: [Size][Size]Rank{
				{3, 2, 1, 2},
				{3, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			want: false,
		},
		{
			name: "empty grid",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GridFromRows(tt.rows)
			before := g
			if got := g.IsGameOver(); got != tt.want {
				t.Errorf("IsGameOver() = %v, want %v", got, tt.want)
			}
			if g != before {
				t.Error("IsGameOver modified the grid")
			}
		})
	}
}

func TestGameOverMeansNoMoveChanges(t *testing.T) {
	g := GridFromRows(checkerRows)
	for _, d := range Directions {
		if g.CanMove(d) {
			t.Errorf("CanMove(%s) = true on a finished board", d)
		}
	}
}

func TestCanMove(t *testing.T) {
	var g Grid
	g.Set(Coord{X: 0, Y: 0}, 1)
	before := g

	want := map[Direction]bool{
		DirUp:    false,
		DirLeft:  false,
		DirDown:  true,
		DirRight: true,
	}
	for d, w := range want {
		if got := g.CanMove(d); got != w {
			t.Errorf("CanMove(%s) = %v, want %v", d, got, w)
		}
	}
	if g != before {
		t.Error("CanMove modified the grid")
	}
}

func TestGridHelpers(t *testing.T) {
	g := GridFromRows([Size][Size]Rank{
		{0, 1, 0, 0},
		{0, 0, 0, 5},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	if got := g.CountEmpty(); got != 13 {
		t.Errorf("CountEmpty() = %d, want 13", got)
	}
	if got := len(g.EmptyCells()); got != 13 {
		t.Errorf("len(EmptyCells()) = %d, want 13", got)
	}
	if got := g.MaxRank(); got != 5 {
		t.Errorf("MaxRank() = %d, want 5", got)
	}
	if got := g.Get(Coord{X: 3, Y: 1}); got != 5 {
		t.Errorf("Get(3,1) = %d, want 5", got)
	}
	if got := GridFromRows(g.Rows()); got != g {
		t.Error("GridFromRows(Rows()) should round-trip")
	}

	g.Clear()
	if g.CountEmpty() != Size*Size {
		t.Error("Clear should empty the grid")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get with an out-of-range coordinate should panic")
		}
	}()
	var g Grid
	g.Get(Coord{X: Size, Y: 0})
}
