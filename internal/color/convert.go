package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ToHSL converts to cylindrical HSL with S and L as percentages.
func ToHSL(c RGBA) HSL {
	h, s, l := toColorful(c).Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// FromHSL converts back to 8-bit sRGB, clamping out-of-gamut values.
func FromHSL(h HSL) RGBA {
	hue := math.Mod(math.Mod(h.H, 360)+360, 360)
	return fromColorful(colorful.Hsl(hue, clamp01(h.S/100), clamp01(h.L/100)))
}

// FormatHSL renders the CSS hsl() form with rounded components.
func FormatHSL(h HSL) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h.H)), int(math.Round(h.S)), int(math.Round(h.L)))
}

// ToOKLCH runs the standard sRGB -> linear -> LMS -> OKLab -> OKLCH chain.
func ToOKLCH(c RGBA) OKLCH {
	r, g, b := toColorful(c).LinearRgb()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lc, mc, sc := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	okL := 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	okA := 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	okB := 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc

	chroma := math.Hypot(okA, okB)
	if chroma < 0 {
		chroma = 0
	}
	hue := math.Atan2(okB, okA) * 180 / math.Pi
	hue = math.Mod(math.Mod(hue, 360)+360, 360)
	return OKLCH{L: okL, C: chroma, H: hue}
}

// FromOKLCH inverts ToOKLCH, clamping the result into sRGB.
func FromOKLCH(o OKLCH) RGBA {
	if o.C < 0 {
		o.C = 0
	}
	rad := o.H * math.Pi / 180
	okA := o.C * math.Cos(rad)
	okB := o.C * math.Sin(rad)

	lc := o.L + 0.3963377774*okA + 0.2158037573*okB
	mc := o.L - 0.1055613458*okA - 0.0638541728*okB
	sc := o.L - 0.0894841775*okA - 1.2914855480*okB

	l, m, s := lc*lc*lc, mc*mc*mc, sc*sc*sc

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return fromColorful(colorful.LinearRgb(r, g, b))
}

// FormatOKLCH renders the CSS oklch() form. Lightness is a percentage.
func FormatOKLCH(o OKLCH) string {
	return fmt.Sprintf("oklch(%.1f%% %.3f %.1f)", o.L*100, o.C, o.H)
}
