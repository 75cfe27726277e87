package pdf

import (
	"regexp"
	"strconv"

	"github.com/invoicing-microservice/smartinvoice/pkg/invoice"
)

// RGB is a color with 0-255 channels.
type RGB struct {
	R, G, B int
}

func gray(v int) RGB { return RGB{v, v, v} }

// ColorScheme is the resolved palette for one render.
type ColorScheme struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Dark      RGB
	Medium    RGB
	Light     RGB
	Bg        RGB
	White     RGB
}

var white = RGB{255, 255, 255}

var palettes = map[invoice.Theme]ColorScheme{
	invoice.ThemeProfessional: {
		Primary: RGB{13, 60, 97}, Secondary: RGB{14, 165, 233}, Accent: RGB{16, 185, 129},
		Dark: RGB{15, 23, 42}, Medium: RGB{71, 85, 105}, Light: RGB{148, 163, 184},
		Bg: RGB{248, 250, 252}, White: white,
	},
	invoice.ThemeCreativeAgency: {
		Primary: RGB{236, 0, 140}, Secondary: RGB{0, 0, 0}, Accent: RGB{245, 245, 245},
		Dark: RGB{0, 0, 0}, Medium: RGB{100, 100, 100}, Light: RGB{230, 230, 230},
		Bg: white, White: white,
	},
	invoice.ThemeProfessionalServices: {
		Primary: RGB{0, 33, 71}, Secondary: RGB{134, 142, 150}, Accent: RGB{248, 249, 250},
		Dark: RGB{33, 37, 41}, Medium: RGB{108, 117, 125}, Light: RGB{222, 226, 230},
		Bg: white, White: white,
	},
	invoice.ThemeModern: {
		Primary: RGB{79, 70, 229}, Secondary: RGB{139, 92, 246}, Accent: RGB{236, 72, 153},
		Dark: RGB{17, 24, 39}, Medium: RGB{75, 85, 99}, Light: RGB{156, 163, 175},
		Bg: RGB{249, 250, 251}, White: white,
	},
	invoice.ThemeLuxury: {
		Primary: RGB{113, 63, 18}, Secondary: RGB{217, 119, 6}, Accent: RGB{245, 158, 11},
		Dark: RGB{20, 83, 45}, Medium: RGB{52, 73, 94}, Light: RGB{127, 140, 141},
		Bg: RGB{254, 252, 232}, White: white,
	},
	invoice.ThemeMinimal: {
		Primary: RGB{31, 41, 55}, Secondary: RGB{75, 85, 99}, Accent: RGB{99, 102, 241},
		Dark: RGB{17, 24, 39}, Medium: RGB{107, 114, 128}, Light: RGB{156, 163, 175},
		Bg: white, White: white,
	},
	invoice.ThemeElegantBlackGold: {
		Primary: RGB{0, 0, 0}, Secondary: RGB{212, 175, 55}, Accent: RGB{255, 215, 0},
		Dark: gray(20), Medium: gray(64), Light: gray(128),
		Bg: gray(15), White: white,
	},
	invoice.ThemeMinimalWhiteSilver: {
		Primary: gray(64), Secondary: gray(192), Accent: gray(128),
		Dark: gray(32), Medium: gray(96), Light: gray(160),
		Bg: white, White: white,
	},
	invoice.ThemeIvorySerifClassic: {
		Primary: RGB{139, 69, 19}, Secondary: RGB{160, 82, 45}, Accent: RGB{205, 133, 63},
		Dark: RGB{101, 67, 33}, Medium: RGB{139, 115, 85}, Light: RGB{188, 170, 164},
		Bg: RGB{255, 255, 240}, White: white,
	},
	invoice.ThemeModernRoseGold: {
		Primary: RGB{188, 143, 143}, Secondary: RGB{255, 182, 193}, Accent: RGB{255, 192, 203},
		Dark: RGB{139, 69, 19}, Medium: RGB{205, 133, 63}, Light: RGB{255, 218, 185},
		Bg: white, White: white,
	},
	invoice.ThemeUltraLuxury: {
		Primary: gray(0), Secondary: gray(50), Accent: gray(100),
		Dark: gray(0), Medium: gray(80), Light: gray(230),
		Bg: white, White: white,
	},
}

// ResolveColors picks the palette for theme. When custom is set it wins
// outright: its four colors are parsed and paired with fixed slate neutrals.
// Themes without a palette of their own use professional.
func ResolveColors(theme invoice.Theme, custom *invoice.CustomColors) ColorScheme {
	if custom != nil {
		return ColorScheme{
			Primary:   HexToRGB(custom.Primary),
			Secondary: HexToRGB(custom.Secondary),
			Accent:    HexToRGB(custom.Accent),
			Dark:      RGB{15, 23, 42},
			Medium:    RGB{71, 85, 105},
			Light:     RGB{148, 163, 184},
			Bg:        HexToRGB(custom.Background),
			White:     white,
		}
	}
	if cs, ok := palettes[theme]; ok {
		return cs
	}
	return palettes[invoice.ThemeProfessional]
}

var hexColor = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// HexToRGB parses "#rrggbb" or "rrggbb" in either case. Anything else is black.
func HexToRGB(hex string) RGB {
	m := hexColor.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}
	}
	ch := func(s string) int {
		v, _ := strconv.ParseUint(s, 16, 8)
		return int(v)
	}
	return RGB{ch(m[1]), ch(m[2]), ch(m[3])}
}
