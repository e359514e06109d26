package color

// Encoding selects the color form themes are rendered in and therefore which
// lightness axis dark-mode adjustment operates on.
type Encoding string

const (
	EncodingHSL   Encoding = "hsl"
	EncodingOKLCH Encoding = "oklch"
	EncodingHex   Encoding = "hex"
)

// Dark-mode lightness bands per role, in percent. Brand roles are nudged into
// a visible band instead; hue and chroma are preserved throughout.
const (
	darkBackgroundMaxL = 15
	darkForegroundMinL = 90
	darkBorderMinL     = 20
	darkBorderMaxL     = 35
	darkMutedMinL      = 25
	darkMutedMaxL      = 40
	darkBrandLiftBelow = 30
	darkBrandDropAbove = 80
)

// DarkVariant derives the dark-theme value of a color for the given role.
// The adjustment happens on the requested encoding's lightness axis so the
// round trip through that encoding is stable.
func DarkVariant(c RGBA, role string, enc Encoding) RGBA {
	if enc == EncodingOKLCH {
		o := ToOKLCH(c)
		o.L = adjustLightness(o.L*100, role) / 100
		return FromOKLCH(o)
	}
	h := ToHSL(c)
	h.L = adjustLightness(h.L, role)
	return FromHSL(h)
}

func adjustLightness(l float64, role string) float64 {
	switch role {
	case "background":
		if l > darkBackgroundMaxL {
			return darkBackgroundMaxL
		}
	case "foreground":
		if l < darkForegroundMinL {
			return darkForegroundMinL
		}
	case "border":
		return clampRange(l, darkBorderMinL, darkBorderMaxL)
	case "muted":
		return clampRange(l, darkMutedMinL, darkMutedMaxL)
	case "primary", "secondary", "accent", "destructive":
		if l < darkBrandLiftBelow {
			return l + 20
		}
		if l > darkBrandDropAbove {
			return l - 10
		}
	}
	return l
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render formats a color in the requested encoding.
func Render(c RGBA, enc Encoding) string {
	switch enc {
	case EncodingOKLCH:
		return FormatOKLCH(ToOKLCH(c))
	case EncodingHex:
		return Hex(c)
	default:
		return FormatHSL(ToHSL(c))
	}
}
