package t2048

// Default animation lengths in ticks. At 60 ticks per second the slide plus
// the pause before the new tile appears take roughly 150ms.
const (
	defaultSlideTicks = 6
	defaultPopTicks   = 4
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Rank     Rank    // Tile rank while moving
	From     Coord   // Start cell
	To       Coord   // End cell
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Ends in a merge
	IsNew    bool    // Newly spawned tile
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// startSlideAnimation initializes slide animations from the move's tile moves.
func (g *Game) startSlideAnimation(moves []TileMove) {
	g.animations = g.animations[:0]
	for _, m := range moves {
		g.animations = append(g.animations, TileAnimation{
			Rank:   m.Rank,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}
	g.animating = true
	g.animationPhase = PhaseSlide
	g.animationTicks = 0
}

// startPopAnimation initializes the reveal of a new tile.
func (g *Game) startPopAnimation(t Tile) {
	g.animations = []TileAnimation{{
		Rank:  t.Rank,
		From:  t.At,
		To:    t.At,
		IsNew: true,
	}}
	g.animating = true
	g.animationPhase = PhasePop
	g.animationTicks = 0
}

// updateAnimation advances the animation state.
// Returns true if animation is still in progress.
func (g *Game) updateAnimation() bool {
	if !g.animating {
		return false
	}

	g.animationTicks++

	var duration int
	switch g.animationPhase {
	case PhaseSlide:
		duration = g.opts.SlideTicks
	case PhasePop:
		duration = g.opts.PopTicks
	default:
		g.stopAnimation()
		return false
	}

	progress := float64(g.animationTicks) / float64(duration)
	if progress > 1.0 {
		progress = 1.0
	}
	for i := range g.animations {
		g.animations[i].Progress = progress
	}

	if g.animationTicks >= duration {
		g.finishAnimation()
		return g.animating
	}
	return true
}

// finishAnimation completes the current animation phase.
func (g *Game) finishAnimation() {
	if g.animationPhase == PhaseSlide && g.pendingNewTile != nil {
		t := *g.pendingNewTile
		g.pendingNewTile = nil
		g.startPopAnimation(t)
		return
	}
	g.stopAnimation()
}

func (g *Game) stopAnimation() {
	g.animating = false
	g.animationPhase = PhaseNone
	g.animationTicks = 0
	g.animations = nil
	g.pendingNewTile = nil
}

// Animating reports whether tiles are currently in motion.
func (g *Game) Animating() bool {
	return g.animating
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition returns the tile's current cell position.
func (a *TileAnimation) interpolatePosition() (x, y float64) {
	t := easeOutQuad(a.Progress)
	x = float64(a.From.X) + float64(a.To.X-a.From.X)*t
	y = float64(a.From.Y) + float64(a.To.Y-a.From.Y)*t
	return x, y
}
