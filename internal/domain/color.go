package domain

import "strings"

// Color is an RGB dye color
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Named dye colors
var (
	ColorWhite   = Color{0xFF, 0xFF, 0xFF}
	ColorSilver  = Color{0xC0, 0xC0, 0xC0}
	ColorGray    = Color{0x80, 0x80, 0x80}
	ColorBlack   = Color{0x00, 0x00, 0x00}
	ColorRed     = Color{0xFF, 0x00, 0x00}
	ColorMaroon  = Color{0x80, 0x00, 0x00}
	ColorYellow  = Color{0xFF, 0xFF, 0x00}
	ColorOlive   = Color{0x80, 0x80, 0x00}
	ColorLime    = Color{0x00, 0xFF, 0x00}
	ColorGreen   = Color{0x00, 0x80, 0x00}
	ColorAqua    = Color{0x00, 0xFF, 0xFF}
	ColorTeal    = Color{0x00, 0x80, 0x80}
	ColorBlue    = Color{0x00, 0x00, 0xFF}
	ColorNavy    = Color{0x00, 0x00, 0x80}
	ColorFuchsia = Color{0xFF, 0x00, 0xFF}
	ColorPurple  = Color{0x80, 0x00, 0x80}
)

var colorPalette = []struct {
	name  string
	color Color
}{
	{"WHITE", ColorWhite},
	{"SILVER", ColorSilver},
	{"GRAY", ColorGray},
	{"BLACK", ColorBlack},
	{"RED", ColorRed},
	{"MAROON", ColorMaroon},
	{"YELLOW", ColorYellow},
	{"OLIVE", ColorOlive},
	{"LIME", ColorLime},
	{"GREEN", ColorGreen},
	{"AQUA", ColorAqua},
	{"TEAL", ColorTeal},
	{"BLUE", ColorBlue},
	{"NAVY", ColorNavy},
	{"FUCHSIA", ColorFuchsia},
	{"PURPLE", ColorPurple},
}

// ColorByName looks up one of the 16 palette colors, ignoring case
func ColorByName(name string) (Color, bool) {
	for _, c := range colorPalette {
		if strings.EqualFold(name, c.name) {
			return c.color, true
		}
	}
	return Color{}, false
}
