package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

/*
Package color is the color-space engine: parsing of CSS color literals,
conversions between sRGB/HSL/OKLCH, WCAG contrast, and normalization to a
canonical 6-digit hex used as the dedup key everywhere downstream.

All functions are pure and total: unparseable input degrades to opaque black
rather than returning an error.
*/

// RGBA is a parsed color. R, G, B are 8-bit sRGB channels; A is 0..1.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// HSL uses degrees for H and percentages (0..100) for S and L, matching the
// bands the classifier reasons in.
type HSL struct {
	H, S, L float64
}

// OKLCH lightness is 0..1, chroma >= 0, hue in [0,360).
type OKLCH struct {
	L, C, H float64
}

var (
	reRGBFunc = regexp.MustCompile(`(?i)^rgba?\(\s*([\d.]+)\s*[, ]\s*([\d.]+)\s*[, ]\s*([\d.]+)\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
	reHSLFunc = regexp.MustCompile(`(?i)^hsla?\(\s*([\d.-]+)(?:deg)?\s*[, ]\s*([\d.]+)%?\s*[, ]\s*([\d.]+)%?\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
	reHex     = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#008000",
	"blue":        "#0000ff",
	"yellow":      "#ffff00",
	"orange":      "#ffa500",
	"purple":      "#800080",
	"pink":        "#ffc0cb",
	"gray":        "#808080",
	"grey":        "#808080",
	"silver":      "#c0c0c0",
	"navy":        "#000080",
	"teal":        "#008080",
	"aqua":        "#00ffff",
	"cyan":        "#00ffff",
	"magenta":     "#ff00ff",
	"fuchsia":     "#ff00ff",
	"maroon":      "#800000",
	"olive":       "#808000",
	"lime":        "#00ff00",
	"coral":       "#ff7f50",
	"gold":        "#ffd700",
	"indigo":      "#4b0082",
	"violet":      "#ee82ee",
	"transparent": "#000000",
}

// Parse accepts hex (3/6/8 digit), rgb()/rgba(), hsl()/hsla() and a small set
// of named colors. Unparseable input yields opaque black.
func Parse(value string) RGBA {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return RGBA{A: 1}
	}
	if hex, ok := namedColors[v]; ok {
		c := mustHex(hex)
		if v == "transparent" {
			c.A = 0
		}
		return c
	}
	if m := reHex.FindStringSubmatch(v); m != nil {
		return parseHexDigits(m[1])
	}
	if m := reRGBFunc.FindStringSubmatch(v); m != nil {
		return RGBA{
			R: clampChannel(m[1]),
			G: clampChannel(m[2]),
			B: clampChannel(m[3]),
			A: parseAlpha(m[4]),
		}
	}
	if m := reHSLFunc.FindStringSubmatch(v); m != nil {
		h := parseFloat(m[1])
		s := parseFloat(m[2]) / 100
		l := parseFloat(m[3]) / 100
		h = math.Mod(math.Mod(h, 360)+360, 360)
		c := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped()
		r, g, b := c.RGB255()
		return RGBA{R: r, G: g, B: b, A: parseAlpha(m[4])}
	}
	return RGBA{A: 1}
}

// IsColorLiteral reports whether value looks like something Parse understands.
// Used by the extractor to separate colors from other declaration values.
func IsColorLiteral(value string) bool {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" || v == "transparent" || v == "inherit" || v == "initial" || v == "currentcolor" || v == "none" || v == "unset" {
		return false
	}
	if _, ok := namedColors[v]; ok {
		return true
	}
	return reHex.MatchString(v) || reRGBFunc.MatchString(v) || reHSLFunc.MatchString(v)
}

func parseHexDigits(d string) RGBA {
	switch len(d) {
	case 3:
		return RGBA{
			R: uint8(hexByte(string([]byte{d[0], d[0]}))),
			G: uint8(hexByte(string([]byte{d[1], d[1]}))),
			B: uint8(hexByte(string([]byte{d[2], d[2]}))),
			A: 1,
		}
	case 6:
		return RGBA{R: hexByte(d[0:2]), G: hexByte(d[2:4]), B: hexByte(d[4:6]), A: 1}
	case 8:
		return RGBA{
			R: hexByte(d[0:2]), G: hexByte(d[2:4]), B: hexByte(d[4:6]),
			A: float64(hexByte(d[6:8])) / 255,
		}
	}
	return RGBA{A: 1}
}

func hexByte(s string) uint8 {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(n)
}

func mustHex(s string) RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{A: 1}
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

func clampChannel(s string) uint8 {
	f := parseFloat(s)
	if f < 0 {
		f = 0
	}
	if f > 255 {
		f = 255
	}
	return uint8(math.Round(f))
}

func parseAlpha(s string) float64 {
	if s == "" {
		return 1
	}
	if strings.HasSuffix(s, "%") {
		return clamp01(parseFloat(strings.TrimSuffix(s, "%")) / 100)
	}
	return clamp01(parseFloat(s))
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// HasOpacity reports whether the literal carries an alpha channel below 1.
func HasOpacity(value string) bool {
	return Parse(value).A < 1
}

// StripOpacity drops the alpha channel, keeping the solid channel values.
// This is a truncation, not a composite against a background; downstream
// scoring is tuned to this behavior.
func StripOpacity(c RGBA) RGBA {
	c.A = 1
	return c
}

// Hex renders the canonical lowercase 6-digit hex, ignoring alpha.
func Hex(c RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// NormalizeHex is the dedup key: parse, strip opacity, render 6-digit hex.
// Idempotent over its own output.
func NormalizeHex(value string) string {
	return Hex(StripOpacity(Parse(value)))
}
