package t2048

import "math"

// DefaultFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.10

// Source is the random number generator a Spawner draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Tile is a tile placed on the board by the spawner.
type Tile struct {
	At   Coord
	Rank Rank
}

// Spawner places new tiles on random empty cells.
// The source is seeded once by the caller and never reseeded here.
type Spawner struct {
	rng        Source
	fourChance float64
}

// NewSpawner creates a spawner. A probability outside [0, 1], or NaN, falls
// back to DefaultFourProbability.
func NewSpawner(rng Source, fourProbability float64) *Spawner {
	if math.IsNaN(fourProbability) || fourProbability < 0 || fourProbability > 1 {
		fourProbability = DefaultFourProbability
	}
	return &Spawner{rng: rng, fourChance: fourProbability}
}

// FourProbability returns the chance of spawning a 4.
func (s *Spawner) FourProbability() float64 {
	return s.fourChance
}

// Spawn puts a rank 1 tile (value 2), or with FourProbability a rank 2 tile
// (value 4), on a uniformly chosen empty cell. A full grid is left untouched
// and Spawn reports false.
func (s *Spawner) Spawn(g *Grid) (Tile, bool) {
	cells := g.EmptyCells()
	if len(cells) == 0 {
		return Tile{}, false
	}

	at := cells[s.rng.Intn(len(cells))]
	rank := Rank(1)
	if s.rng.Float64() < s.fourChance {
		rank = 2
	}

	g.Set(at, rank)
	return Tile{At: at, Rank: rank}, true
}
