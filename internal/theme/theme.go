package theme

import (
	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
)

/*
Package theme turns role-assigned colors into light/dark variable maps in the
caller's chosen encoding. The output is always structurally complete: a
missing role falls back to a built-in neutral default, never a blank.
*/

// Theme is the terminal artifact of a run.
type Theme struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark,omitempty"`
}

// baseRoles is the fixed role -> variable mapping; each gets a paired
// "-foreground" variable.
var baseRoles = []classify.Role{
	classify.RolePrimary,
	classify.RoleSecondary,
	classify.RoleAccent,
	classify.RoleDestructive,
	classify.RoleBackground,
	classify.RoleForeground,
	classify.RoleBorder,
	classify.RoleMuted,
}

// Foreground pairing thresholds: HSL lightness above the threshold pairs
// with the dark foreground, below with white.
const (
	lightPairingThreshold = 50
	darkPairingThreshold  = 60

	// Dark themes are only worth emitting when the palette actually has
	// color in it.
	darkWorthySaturation = 30
)

var (
	pairWhite = colorx.RGBA{R: 255, G: 255, B: 255, A: 1}
	pairDark  = colorx.RGBA{R: 26, G: 26, B: 26, A: 1} // #1a1a1a
)

// Generate builds the light palette and, when the palette shows genuine
// color variation, a derived dark palette.
func Generate(analyses []classify.ColorAnalysis, enc colorx.Encoding) Theme {
	chosen := pickRoleColors(analyses)

	t := Theme{Light: make(map[string]string, len(baseRoles)*2)}
	for _, role := range baseRoles {
		c := chosen[role]
		t.Light[string(role)] = colorx.Render(c, enc)
		t.Light[string(role)+"-foreground"] = colorx.Render(pairForeground(c, lightPairingThreshold), enc)
	}

	if hasColorVariation(analyses) {
		t.Dark = make(map[string]string, len(baseRoles)*2)
		for _, role := range baseRoles {
			dark := colorx.DarkVariant(chosen[role], string(role), enc)
			t.Dark[string(role)] = colorx.Render(dark, enc)
			t.Dark[string(role)+"-foreground"] = colorx.Render(pairForeground(dark, darkPairingThreshold), enc)
		}
	}
	return t
}

// pickRoleColors selects the highest-confidence analysis per role, falling
// back to the neutral defaults for roles nothing was classified into.
func pickRoleColors(analyses []classify.ColorAnalysis) map[classify.Role]colorx.RGBA {
	out := make(map[classify.Role]colorx.RGBA, len(baseRoles))
	bestConf := make(map[classify.Role]float64, len(baseRoles))
	for _, a := range analyses {
		if conf, seen := bestConf[a.Role]; !seen || a.Confidence > conf {
			bestConf[a.Role] = a.Confidence
			out[a.Role] = colorx.Parse(a.Hex)
		}
	}
	for _, role := range baseRoles {
		if _, ok := out[role]; !ok {
			out[role] = defaultRoleColor(role)
		}
	}
	return out
}

func pairForeground(c colorx.RGBA, threshold float64) colorx.RGBA {
	if colorx.ToHSL(c).L > threshold {
		return pairDark
	}
	return pairWhite
}

func hasColorVariation(analyses []classify.ColorAnalysis) bool {
	for _, a := range analyses {
		if a.Saturation > darkWorthySaturation {
			return true
		}
	}
	return false
}
