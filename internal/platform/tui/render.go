package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexchandel/gravity-worm/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings, caching one lipgloss
// style per colour pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(k.bg))
	}
	r.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
