package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// hexColors holds the CSS equivalents used by canvas frontends.
var hexColors = map[Color]string{
	ColorDefault:       "#dddddd",
	ColorRed:           "#aa0000",
	ColorGreen:         "#00aa00",
	ColorYellow:        "#aa5500",
	ColorBlue:          "#0066aa",
	ColorMagenta:       "#aa00aa",
	ColorCyan:          "#00aaaa",
	ColorWhite:         "#aaaaaa",
	ColorBrightRed:     "#ff5555",
	ColorBrightGreen:   "#55ff55",
	ColorBrightYellow:  "#ffff55",
	ColorBrightBlue:    "#0095dd",
	ColorBrightMagenta: "#ff55ff",
	ColorBrightCyan:    "#55ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
}

// Hex returns the color as a CSS hex string.
func (c Color) Hex() string {
	if h, ok := hexColors[c]; ok {
		return h
	}
	return hexColors[ColorDefault]
}
