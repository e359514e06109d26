package format

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
	"github.com/switmer/Get-Site-Styles-API/internal/theme"
)

/*
Package format renders the extraction/classification output into the
supported target encodings. Every formatter derives from the same TokenSet
and ColorAnalysis list; none of them re-runs analysis.
*/

// Format names a supported output shape.
type Format string

const (
	FormatJSON            Format = "json"
	FormatStyleDictionary Format = "style-dictionary"
	FormatShadcn          Format = "shadcn"
	FormatTailwind        Format = "tailwind"
	FormatThemeJSON       Format = "theme-json"
)

// Supported reports whether f names a known format.
func Supported(f Format) bool {
	switch f {
	case FormatJSON, FormatStyleDictionary, FormatShadcn, FormatTailwind, FormatThemeJSON:
		return true
	}
	return false
}

// FlatJSON is the raw token dump: kinds to values with counts and
// prevalence, plus the color analyses.
func FlatJSON(ts *cssx.TokenSet, colors []classify.ColorAnalysis) ([]byte, error) {
	out := struct {
		Tokens map[cssx.TokenKind][]cssx.Token `json:"tokens"`
		Colors []classify.ColorAnalysis       `json:"colors"`
	}{Colors: colors}
	if ts != nil {
		out.Tokens = ts.Tokens
	}
	return json.MarshalIndent(out, "", "  ")
}

// StyleDictionary renders the Style-Dictionary nested map shape:
// category -> name -> { value }.
func StyleDictionary(ts *cssx.TokenSet, colors []classify.ColorAnalysis) ([]byte, error) {
	type entry struct {
		Value string `json:"value"`
	}
	root := map[string]map[string]entry{}

	colorMap := map[string]entry{}
	for _, c := range colors {
		name := string(c.Role)
		if _, taken := colorMap[name]; taken {
			name = fmt.Sprintf("%s-%s", c.Role, strings.TrimPrefix(c.Hex, "#"))
		}
		colorMap[name] = entry{Value: c.Hex}
	}
	if len(colorMap) > 0 {
		root["color"] = colorMap
	}

	if ts != nil {
		for kind, category := range map[cssx.TokenKind]string{
			cssx.KindFontSize:   "fontSize",
			cssx.KindSpacing:    "spacing",
			cssx.KindRadius:     "borderRadius",
			cssx.KindShadow:     "boxShadow",
			cssx.KindBreakpoint: "breakpoint",
		} {
			toks := ts.Tokens[kind]
			if len(toks) == 0 {
				continue
			}
			m := map[string]entry{}
			for i, tok := range toks {
				m[fmt.Sprintf("%s-%d", category, i+1)] = entry{Value: tok.RawValue}
			}
			root[category] = m
		}
	}
	return json.MarshalIndent(root, "", "  ")
}

// ShadcnCSS renders :root {} / .dark {} custom-property blocks from the
// generated theme.
func ShadcnCSS(th theme.Theme) string {
	var b strings.Builder
	writeBlock := func(selector string, vars map[string]string) {
		b.WriteString(selector)
		b.WriteString(" {\n")
		for _, name := range sortedKeys(vars) {
			fmt.Fprintf(&b, "  --%s: %s;\n", name, vars[name])
		}
		b.WriteString("}\n")
	}
	writeBlock(":root", th.Light)
	if th.Dark != nil {
		b.WriteString("\n")
		writeBlock(".dark", th.Dark)
	}
	return b.String()
}

// ThemeJSON is the flat custom-property map (theme.json style).
func ThemeJSON(th theme.Theme) ([]byte, error) {
	out := struct {
		Light map[string]string `json:"light"`
		Dark  map[string]string `json:"dark,omitempty"`
	}{Light: prefixVars(th.Light), Dark: prefixVars(th.Dark)}
	return json.MarshalIndent(out, "", "  ")
}

func prefixVars(vars map[string]string) map[string]string {
	if vars == nil {
		return nil
	}
	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out["--"+k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
