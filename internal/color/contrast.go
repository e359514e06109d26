package color

// Luminance is WCAG relative luminance on sRGB-linearized channels.
func Luminance(c RGBA) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio, always >= 1.
func ContrastRatio(a, b RGBA) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

var (
	// White and Black anchor the contrast-potential checks and foreground pairing.
	White = RGBA{R: 255, G: 255, B: 255, A: 1}
	Black = RGBA{A: 1}
)

// ContrastVsWhite and ContrastVsBlack are the two poles the classifier scores
// contrast potential against.
func ContrastVsWhite(c RGBA) float64 { return ContrastRatio(c, White) }
func ContrastVsBlack(c RGBA) float64 { return ContrastRatio(c, Black) }
