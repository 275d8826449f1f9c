package core

import "math"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the engines.
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
	ColorPink
	ColorViolet
)

// Cell is a single character on the screen together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// hueWheel splits the color circle into twelve 30° sectors.
var hueWheel = [12]Color{
	ColorRed, ColorOrange, ColorYellow, ColorBrightYellow,
	ColorGreen, ColorBrightGreen, ColorCyan, ColorBrightCyan,
	ColorBlue, ColorViolet, ColorMagenta, ColorPink,
}

// HueColor maps a hue in degrees to the palette color of its 30° sector.
// Any hue is accepted; it is wrapped into [0, 360).
func HueColor(hue float64) Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return hueWheel[int(h/30)%len(hueWheel)]
}
