package worm

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/core"
)

// Visual characters for rendering
const (
	WallChar  = '█'
	WormChar  = '●'
	PrizeChar = '◆'
)

// Palette holds the cosmetic colours used by Render.
type Palette struct {
	Background core.Color
	Wall       core.Color
	Prize      core.Color
	Text       core.Color
}

// NewPalette builds a palette from configured hex colours.
func NewPalette(c config.ColorConfig) Palette {
	return Palette{
		Background: core.Color(c.Background),
		Wall:       core.Color(c.Wall),
		Prize:      core.Color(c.Prize),
		Text:       core.Color(c.Text),
	}
}

// hexColor parses a validated "#rrggbb" colour, falling back to black.
func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Render draws a snapshot scaled onto dst. It only reads snap.
func Render(dst *core.Screen, snap Snapshot, pal Palette) {
	dst.SetColors(pal.Text, pal.Background)
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 || snap.Columns <= 0 || snap.Rows <= 0 {
		return
	}

	drawCave(dst, snap, pal)

	for _, p := range snap.Prizes {
		x, y := toScreen(float64(p.Col), float64(p.Row), snap, w, h)
		dst.SetCell(x, y, core.Cell{Rune: PrizeChar, FG: pal.Prize, BG: pal.Background})
	}

	for i, seg := range snap.Worm {
		x, y := toScreen(float64(i), seg.Height, snap, w, h)
		dst.SetCell(x, y, core.Cell{Rune: WormChar, FG: seg.Color, BG: pal.Background})
	}

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	switch snap.Status {
	case StatusBefore:
		drawCenteredMessage(dst, pal, "GRAVITY WORM", "Tap space to begin. Hold to go up, release to fall.")
	case StatusDead:
		drawCenteredMessage(dst, pal, "DEAD", fmt.Sprintf("Score: %d  |  Tap space to restart", snap.Score))
	}
}

// drawCave fills each screen column with the walls of the block column under it.
// The top wall covers rows 0..top, the bottom wall rows bottom..Rows-1.
func drawCave(dst *core.Screen, snap Snapshot, pal Palette) {
	w, h := dst.Width(), dst.Height()
	wall := core.Cell{Rune: WallChar, FG: pal.Wall, BG: pal.Background}

	for x := 0; x < w; x++ {
		col := x * snap.Columns / w
		if col >= len(snap.CaveTop) || col >= len(snap.CaveBottom) {
			continue
		}

		topEnd := ceilDiv((snap.CaveTop[col]+1)*h, snap.Rows)
		dst.DrawVLine(x, 0, topEnd, wall)

		bottomStart := max(0, snap.CaveBottom[col]*h/snap.Rows)
		dst.DrawVLine(x, bottomStart, h-bottomStart, wall)
	}
}

// toScreen maps a block position to a screen cell.
func toScreen(col, row float64, snap Snapshot, w, h int) (int, int) {
	x := int(math.Floor(col * float64(w) / float64(snap.Columns)))
	y := int(math.Floor(row * float64(h) / float64(snap.Rows)))
	return x, y
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, pal Palette, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Cell{Rune: ' ', FG: pal.Text, BG: pal.Background})
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
