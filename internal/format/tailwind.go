package format

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
	semanticx "github.com/switmer/Get-Site-Styles-API/internal/semantic"
)

// ColorCorrelation maps an extracted color to its nearest default Tailwind
// palette entry.
type ColorCorrelation struct {
	Hex      string  `json:"hex"`
	Role     string  `json:"role"`
	Nearest  string  `json:"nearestTailwind"`
	Distance float64 `json:"distance"` // euclidean in sRGB, 0 = exact
	Exact    bool    `json:"exact"`
}

// SpacingCorrelation maps a pixel value to the Tailwind spacing scale
// (scale unit = 4px).
type SpacingCorrelation struct {
	RawValue string `json:"rawValue"`
	Scale    string `json:"scale,omitempty"`
	OnScale  bool   `json:"onScale"`
}

// TailwindReport correlates extracted colors and spacing values with the
// default Tailwind scales.
func TailwindReport(ts *cssx.TokenSet, colors []classify.ColorAnalysis) ([]byte, error) {
	report := struct {
		Colors  []ColorCorrelation   `json:"colors"`
		Spacing []SpacingCorrelation `json:"spacing"`
	}{}

	palette := semanticx.TailwindPalette()
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, c := range colors {
		nearest, dist := nearestPaletteEntry(c.Hex, names, palette)
		report.Colors = append(report.Colors, ColorCorrelation{
			Hex:      c.Hex,
			Role:     string(c.Role),
			Nearest:  nearest,
			Distance: dist,
			Exact:    dist == 0,
		})
	}

	if ts != nil {
		for _, tok := range ts.Tokens[cssx.KindSpacing] {
			report.Spacing = append(report.Spacing, correlateSpacing(tok.RawValue))
		}
	}
	return json.MarshalIndent(report, "", "  ")
}

func nearestPaletteEntry(hex string, names []string, palette map[string]string) (string, float64) {
	target := colorx.Parse(hex)
	best := ""
	bestDist := math.MaxFloat64
	for _, name := range names {
		c := colorx.Parse(palette[name])
		d := rgbDistance(target, c)
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, bestDist
}

func rgbDistance(a, b colorx.RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func correlateSpacing(raw string) SpacingCorrelation {
	out := SpacingCorrelation{RawValue: raw}
	if !strings.HasSuffix(raw, "px") {
		return out
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
	if err != nil {
		return out
	}
	scale := px / 4
	if scale == math.Trunc(scale) {
		out.OnScale = true
		out.Scale = strconv.FormatFloat(scale, 'f', -1, 64)
	}
	return out
}
