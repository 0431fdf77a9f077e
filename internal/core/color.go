package core

// Color is an ANSI 256-color palette index.
// ColorDefault leaves the terminal's own color in place.
type Color int16

// ColorDefault means "no color set" for a cell.
const ColorDefault Color = -1

// Style is the foreground/background pair of a screen cell.
type Style struct {
	FG Color
	BG Color
}

// DefaultStyle leaves both foreground and background to the terminal.
var DefaultStyle = Style{FG: ColorDefault, BG: ColorDefault}

// NewStyle builds a style from 256-color palette indices.
func NewStyle(fg, bg uint8) Style {
	return Style{FG: Color(fg), BG: Color(bg)}
}

// IsDefault reports whether neither color is set.
func (s Style) IsDefault() bool {
	return s.FG == ColorDefault && s.BG == ColorDefault
}
