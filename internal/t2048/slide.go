package t2048

// LineMove records one tile moving inside a line during a slide.
type LineMove struct {
	From   int
	To     int
	Rank   Rank // Rank of the tile before it moved
	Merged bool // The tile merged into an equal tile at To
}

// LineResult is the outcome of sliding a single line.
type LineResult struct {
	ScoreDelta uint64
	Changed    bool
	Moves      []LineMove
}

// findTarget returns the index the tile at x should move to. It scans back
// from x-1 toward stop: the first occupied cell is the merge target when it
// holds the same rank, otherwise the tile lands just after it. With no
// occupied cell down to stop, the target is stop itself.
func findTarget(line *Line, x, stop int) int {
	if x == 0 {
		return x
	}
	for t := x - 1; ; t-- {
		if line[t] != Empty {
			if line[t] != line[x] {
				return t + 1
			}
			return t
		}
		if t == stop {
			return t
		}
	}
}

// SlideLine slides and merges a line toward index 0 in place.
//
// Each tile merges at most once per slide: after a merge at t the stop
// boundary advances to t+1, so later tiles can no longer reach the merged one.
func SlideLine(line *Line) LineResult {
	var res LineResult
	stop := 0

	for x := range Size {
		if line[x] == Empty {
			continue
		}

		t := findTarget(line, x, stop)
		if t == x {
			continue
		}

		move := LineMove{From: x, To: t, Rank: line[x]}
		if line[t] == Empty {
			line[t] = line[x]
		} else {
			line[t]++
			res.ScoreDelta += line[t].Value()
			stop = t + 1
			move.Merged = true
		}
		line[x] = Empty

		res.Changed = true
		res.Moves = append(res.Moves, move)
	}

	return res
}
