package t2048

import (
	"math"
	"math/rand"
	"testing"
)

// fakeSource replays fixed values, cycling when exhausted.
type fakeSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *fakeSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *fakeSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

func TestSpawnPicksEmptyCell(t *testing.T) {
	var g Grid
	g.Set(Coord{X: 0, Y: 0}, 3)

	// Empty cells in column order: (0,1), (0,2), (0,3), (1,0), ...
	sp := NewSpawner(&fakeSource{ints: []int{2}, floats: []float64{0.5}}, 0.1)
	tile, ok := sp.Spawn(&g)

	if !ok {
		t.Fatal("Spawn should succeed on a grid with empty cells")
	}
	want := Tile{At: Coord{X: 0, Y: 3}, Rank: 1}
	if tile != want {
		t.Errorf("Spawn = %+v, want %+v", tile, want)
	}
	if g.Get(want.At) != 1 {
		t.Error("spawned tile not placed on the grid")
	}
	if g.Get(Coord{X: 0, Y: 0}) != 3 {
		t.Error("spawn overwrote an occupied cell")
	}
}

func TestSpawnFour(t *testing.T) {
	var g Grid
	sp := NewSpawner(&fakeSource{floats: []float64{0.05}}, 0.1)
	tile, _ := sp.Spawn(&g)
	if tile.Rank != 2 {
		t.Errorf("rank = %d, want 2 when draw is below the probability", tile.Rank)
	}
}

func TestSpawnFullGrid(t *testing.T) {
	var g Grid
	for x := range Size {
		for y := range Size {
			g[x][y] = Rank((x+y)%3 + 1)
		}
	}
	before := g

	sp := NewSpawner(rand.New(rand.NewSource(1)), DefaultFourProbability)
	if _, ok := sp.Spawn(&g); ok {
		t.Error("Spawn on a full grid should report false")
	}
	if g != before {
		t.Error("Spawn on a full grid modified it")
	}
}

func TestSpawnNeverOverwrites(t *testing.T) {
	var g Grid
	sp := NewSpawner(rand.New(rand.NewSource(7)), DefaultFourProbability)

	for i := range Size * Size {
		if g.CountEmpty() != Size*Size-i {
			t.Fatalf("after %d spawns: %d empty cells, want %d", i, g.CountEmpty(), Size*Size-i)
		}
		if _, ok := sp.Spawn(&g); !ok {
			t.Fatalf("spawn %d failed with empty cells left", i)
		}
	}
	if g.CountEmpty() != 0 {
		t.Errorf("grid should be full, %d empty", g.CountEmpty())
	}
}

func TestSpawnDistribution(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(42)), DefaultFourProbability)

	fours := 0
	const trials = 2000
	for range trials {
		var g Grid
		tile, _ := sp.Spawn(&g)
		switch tile.Rank {
		case 1:
		case 2:
			fours++
		default:
			t.Fatalf("unexpected rank %d", tile.Rank)
		}
	}

	if fours < trials/20 || fours > trials*3/20 {
		t.Errorf("spawned %d fours out of %d, want about 10%%", fours, trials)
	}
}

func TestNewSpawnerProbability(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{-0.5, DefaultFourProbability},
		{1.5, DefaultFourProbability},
		{math.NaN(), DefaultFourProbability},
		{math.Inf(1), DefaultFourProbability},
	}
	for _, tt := range tests {
		sp := NewSpawner(&fakeSource{}, tt.in)
		if got := sp.FourProbability(); got != tt.want {
			t.Errorf("NewSpawner(%v).FourProbability() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSameSeedSameSpawns(t *testing.T) {
	var a, b Grid
	spA := NewSpawner(rand.New(rand.NewSource(99)), DefaultFourProbability)
	spB := NewSpawner(rand.New(rand.NewSource(99)), DefaultFourProbability)
	for range 8 {
		ta, _ := spA.Spawn(&a)
		tb, _ := spB.Spawn(&b)
		if ta != tb {
			t.Fatalf("spawns diverged: %+v vs %+v", ta, tb)
		}
	}
}
