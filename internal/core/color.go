package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Predefined colors for level elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorOrange
	ColorGray
)
