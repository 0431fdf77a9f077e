package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/theme"
)

// Prompt is a yes/no question waiting for the player.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptRestart
	PromptQuit
)

// Options tunes a Game. Zero theme and tick counts fall back to defaults.
// FourProbability is used as given, so 0 spawns only 2s; out-of-range values
// fall back to DefaultFourProbability.
type Options struct {
	Theme           string
	FourProbability float64
	SlideTicks      int // Ticks spent sliding tiles after a move
	PopTicks        int // Ticks spent revealing the spawned tile
}

// Game drives a Session from per-tick input and renders it to a screen.
type Game struct {
	opts    Options
	rng     *rand.Rand
	session *Session
	theme   theme.Theme
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	prompt   Prompt

	// Animation state
	animating      bool
	animationPhase AnimationPhase
	animationTicks int
	animations     []TileAnimation
	pendingNewTile *Tile
	previous       Grid // Board before the last move, drawn under sliding tiles
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.SlideTicks <= 0 {
		opts.SlideTicks = defaultSlideTicks
	}
	if opts.PopTicks <= 0 {
		opts.PopTicks = defaultPopTicks
	}
	return &Game{
		opts:  opts,
		theme: theme.MustGet(opts.Theme),
	}
}

// ID returns the identifier scores are stored under.
func (g *Game) ID() string {
	return "2048"
}

// Theme returns the active color scheme.
func (g *Game) Theme() theme.Theme {
	return g.theme
}

// SetTheme switches the color scheme; unknown names select the default.
func (g *Game) SetTheme(name string) {
	g.theme = theme.MustGet(name)
	g.opts.Theme = g.theme.Name
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset initializes a brand new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(NewSpawner(g.rng, g.opts.FourProbability))
	g.tick = 0
	g.paused = false
	g.prompt = PromptNone
	g.stopAnimation()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to new terminal dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < boardWidth || h < boardHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	res := core.StepResult{}

	if g.animating {
		g.updateAnimation()
	}

	if g.prompt != PromptNone {
		g.answerPrompt(in, &res)
		res.State = g.State()
		return res
	}

	switch {
	case in.Has(core.ActionQuit):
		if g.session.State() == StateGameOver {
			res.Quit = true
		} else {
			g.prompt = PromptQuit
		}
		res.State = g.State()
		return res

	case in.Has(core.ActionRestart):
		if g.session.State() == StateGameOver {
			g.restart()
		} else {
			g.prompt = PromptRestart
		}
		res.State = g.State()
		return res

	case in.Has(core.ActionPause):
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.animating {
		res.State = g.State()
		return res
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir, &res)
	}

	res.State = g.State()
	return res
}

// answerPrompt resolves a pending yes/no question.
func (g *Game) answerPrompt(in core.InputFrame, res *core.StepResult) {
	switch {
	case in.Has(core.ActionConfirm):
		if g.session.State() == StatePlaying && g.session.Score() > 0 {
			summary := g.session.Summary()
			res.Ended = &summary
		}
		if g.prompt == PromptQuit {
			res.Quit = true
		} else {
			g.restart()
		}
		g.prompt = PromptNone
	case in.Has(core.ActionBack):
		g.prompt = PromptNone
	}
}

func (g *Game) restart() {
	g.session.Restart()
	g.paused = false
	g.stopAnimation()
}

func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction, res *core.StepResult) {
	before := g.session.Grid()
	out := g.session.ApplyMove(dir)
	if !out.Changed {
		// Board didn't change - nothing spawned
		return
	}

	g.previous = before
	g.startSlideAnimation(out.Moves)
	if out.HasSpawn {
		spawned := out.Spawned
		g.pendingNewTile = &spawned
	}

	if g.session.State() == StateGameOver {
		summary := g.session.Summary()
		res.Ended = &summary
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused || g.tooSmall || g.prompt != PromptNone,
	}
}

// Prompt returns the question currently waiting for an answer.
func (g *Game) Prompt() Prompt {
	return g.prompt
}
