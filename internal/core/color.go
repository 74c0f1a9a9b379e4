package core

// Color is a foreground or background colour for a screen cell, written as a
// "#rrggbb" hex string. The empty Color means the terminal default.
type Color string

// ColorDefault leaves the terminal colour untouched.
const ColorDefault Color = ""

// Cell is a single screen position.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}
