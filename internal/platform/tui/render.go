package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	styleCache   = make(map[core.Style]lipgloss.Style)
	styleCacheMu sync.Mutex
)

// lipglossStyle maps a cell style to a lipgloss style, caching the result.
func lipglossStyle(s core.Style) lipgloss.Style {
	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	if style, ok := styleCache[s]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if s.FG != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(s.FG))))
	}
	if s.BG != core.ColorDefault {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(s.BG))))
	}
	styleCache[s] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			startStyle := s.GetCell(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startStyle.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipglossStyle(startStyle).Render(run.String()))
		}
	}
	return sb.String()
}
