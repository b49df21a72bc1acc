package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes (terminal) or RGBA (window).
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
	ColorPink
	ColorSky
)

// RGB returns an approximate 24-bit value for the color.
// The default color renders as light gray.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xff, 0x7b, 0x7b
	case ColorGreen:
		return 0x34, 0xd3, 0x99
	case ColorYellow:
		return 0xfa, 0xcc, 0x15
	case ColorBlue:
		return 0x60, 0xa5, 0xfa
	case ColorMagenta:
		return 0xc0, 0x84, 0xfc
	case ColorCyan:
		return 0x7d, 0xd3, 0xfc
	case ColorWhite, ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorBrightRed:
		return 0xff, 0x50, 0x50
	case ColorBrightGreen:
		return 0x73, 0xf0, 0xa6
	case ColorBrightYellow:
		return 0xff, 0xd8, 0x6b
	case ColorBrightBlue:
		return 0x93, 0xc5, 0xfd
	case ColorBrightMagenta:
		return 0xf0, 0xab, 0xfc
	case ColorBrightCyan:
		return 0xbd, 0xe4, 0xf9
	case ColorOrange:
		return 0xf9, 0x73, 0x16
	case ColorGray:
		return 0x80, 0x80, 0x80
	case ColorPink:
		return 0xf4, 0x72, 0xb6
	case ColorSky:
		return 0x7d, 0xd3, 0xfc
	default:
		return 0xdd, 0xdd, 0xdd
	}
}
