package t2048

import "testing"

func numberedGrid() Grid {
	var g Grid
	for x := range Size {
		for y := range Size {
			g[x][y] = Rank(x*Size + y + 1)
		}
	}
	return g
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	orig := numberedGrid()
	g := orig
	for i := range 4 {
		g.Rotate()
		if i < 3 && g == orig {
			t.Fatalf("grid unchanged after %d rotations", i+1)
		}
	}
	if g != orig {
		t.Errorf("four rotations changed the grid:\n%v\nwant\n%v", g, orig)
	}
}

func TestUnrotateMatchesRotate(t *testing.T) {
	orig := numberedGrid()
	for times := range 4 {
		g := orig
		g.RotateTimes(times)
		for x := range Size {
			for y := range Size {
				c := Coord{X: x, Y: y}
				if got, want := g.Get(c), orig.Get(c.Unrotate(times)); got != want {
					t.Errorf("times=%d: rotated %v = %d, original at %v = %d",
						times, c, got, c.Unrotate(times), want)
				}
			}
		}
	}
}

func TestRotateTimesNegative(t *testing.T) {
	g := numberedGrid()
	want := g
	want.RotateTimes(3)
	g.RotateTimes(-1)
	if g != want {
		t.Error("RotateTimes(-1) should equal RotateTimes(3)")
	}
}
