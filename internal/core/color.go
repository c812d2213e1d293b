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
	ColorDarkGray
	ColorPink
	ColorBlack
)

// palette holds the ANSI code and the approximate sRGB value of each color.
// The RGB values follow the xterm 256-color table.
var palette = [...]struct {
	ansi string
	hex  string
}{
	ColorDefault:       {"", "#c0c0c0"},
	ColorRed:           {"1", "#800000"},
	ColorGreen:         {"2", "#008000"},
	ColorYellow:        {"3", "#808000"},
	ColorBlue:          {"4", "#000080"},
	ColorMagenta:       {"5", "#800080"},
	ColorCyan:          {"6", "#008080"},
	ColorWhite:         {"7", "#c0c0c0"},
	ColorBrightRed:     {"9", "#ff0000"},
	ColorBrightGreen:   {"10", "#00ff00"},
	ColorBrightYellow:  {"11", "#ffff00"},
	ColorBrightBlue:    {"12", "#0000ff"},
	ColorBrightMagenta: {"13", "#ff00ff"},
	ColorBrightCyan:    {"14", "#00ffff"},
	ColorBrightWhite:   {"15", "#ffffff"},
	ColorOrange:        {"208", "#ff8700"},
	ColorGray:          {"245", "#8a8a8a"},
	ColorDarkGray:      {"240", "#585858"},
	ColorPink:          {"211", "#ff87af"},
	ColorBlack:         {"16", "#000000"},
}

// Palette returns every drawable color, excluding ColorDefault.
func Palette() []Color {
	colors := make([]Color, 0, len(palette)-1)
	for c := ColorRed; int(c) < len(palette); c++ {
		colors = append(colors, c)
	}
	return colors
}

// ANSI returns the 256-color code of c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// Hex returns the approximate sRGB value of c as "#rrggbb".
func (c Color) Hex() string {
	if int(c) >= len(palette) {
		return palette[ColorDefault].hex
	}
	return palette[c].hex
}
