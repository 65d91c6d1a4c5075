package core

// Color is a foreground color for a screen cell.
// The zero value leaves the terminal's own color in place.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorDimGray
	ColorOrange
	ColorBrown
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan

	colorCount
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [colorCount]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorGray:         "245",
	ColorDimGray:      "238",
	ColorOrange:       "208",
	ColorBrown:        "130",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
}

// ANSI returns the 256-color code for c, or "" for the default color and
// values outside the palette.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every palette entry, default first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
