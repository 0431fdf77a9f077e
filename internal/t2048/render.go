package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileWidth  = 7 // Width of each tile in characters
	tileHeight = 3 // Height of each tile in lines

	boardWidth  = Size * tileWidth
	boardHeight = 2 + Size*tileHeight + 2 // header + blank, tiles, blank + status
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	originX := core.Max(0, (g.screenW-boardWidth)/2)
	originY := core.Max(0, (g.screenH-boardHeight)/2)

	dst.DrawText(originX, originY, fmt.Sprintf("2048 %19d pts", g.session.Score()))

	boardY := originY + 2
	g.renderBoard(dst, originX, boardY)

	statusY := boardY + Size*tileHeight + 1
	g.renderStatus(dst, originX, statusY)

	g.renderOverlays(dst, core.NewRect(originX, boardY, boardWidth, Size*tileHeight))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the tiles, including any in-flight animation.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	switch g.animationPhase {
	case PhaseSlide:
		moving := make(map[Coord]bool, len(g.animations))
		for _, a := range g.animations {
			moving[a.From] = true
		}
		for x := range Size {
			for y := range Size {
				c := Coord{X: x, Y: y}
				rank := g.previous.Get(c)
				if moving[c] {
					rank = Empty
				}
				g.drawTile(dst, boardX+x*tileWidth, boardY+y*tileHeight, rank)
			}
		}
		for i := range g.animations {
			fx, fy := g.animations[i].interpolatePosition()
			px := boardX + int(math.Round(fx*tileWidth))
			py := boardY + int(math.Round(fy*tileHeight))
			g.drawTile(dst, px, py, g.animations[i].Rank)
		}

	default:
		grid := g.session.Grid()
		for x := range Size {
			for y := range Size {
				c := Coord{X: x, Y: y}
				rank := grid.Get(c)
				if g.hiddenNewTile(c) {
					rank = Empty
				}
				g.drawTile(dst, boardX+x*tileWidth, boardY+y*tileHeight, rank)
			}
		}
	}
}

// hiddenNewTile reports whether c holds a spawned tile that is not revealed yet.
// The tile stays hidden for the first half of the pop phase.
func (g *Game) hiddenNewTile(c Coord) bool {
	if g.animationPhase != PhasePop {
		return false
	}
	for _, a := range g.animations {
		if a.IsNew && a.To == c && a.Progress < 0.5 {
			return true
		}
	}
	return false
}

// drawTile draws one colored tile block with its value centered.
func (g *Game) drawTile(dst *core.Screen, px, py int, rank Rank) {
	style := g.theme.Tile(uint8(rank))
	dst.FillRect(core.NewRect(px, py, tileWidth, tileHeight), ' ', style)

	label := "·"
	if rank != Empty {
		label = strconv.FormatUint(rank.Value(), 10)
	}
	pad := tileWidth - len([]rune(label))
	dst.DrawTextStyled(px+core.Max(0, pad-pad/2), py+tileHeight/2, label, style)
}

// renderStatus draws the line under the board: controls, prompts or game over.
func (g *Game) renderStatus(dst *core.Screen, x, y int) {
	var msg string
	switch {
	case g.prompt == PromptQuit:
		msg = "QUIT? (y/n)"
	case g.prompt == PromptRestart:
		msg = "RESTART? (y/n)"
	case g.session.State() == StateGameOver && !g.animating:
		msg = "GAME OVER"
	default:
		msg = "←,↑,→,↓ or q"
	}
	pad := (boardWidth - len([]rune(msg))) / 2
	dst.DrawText(x+core.Max(0, pad), y, msg)
}

// renderOverlays draws game state overlays on top of the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.State() == StateGameOver && !g.animating && g.prompt == PromptNone {
		maxStr := fmt.Sprintf("Max tile: %d", g.session.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "R: restart  Q: quit")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.DefaultStyle)
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
