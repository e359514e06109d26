package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
	"github.com/switmer/Get-Site-Styles-API/internal/theme"
)

func sampleAnalyses() []classify.ColorAnalysis {
	return []classify.ColorAnalysis{
		{Hex: "#1a73e8", Role: classify.RolePrimary, Saturation: 82, Confidence: 0.9},
		{Hex: "#ffffff", Role: classify.RoleBackground, Confidence: 0.7},
	}
}

func TestFlatJSON(t *testing.T) {
	ts := cssx.Extract(`.a { color: #1a73e8; margin: 8px; }`)
	raw, err := FlatJSON(ts, sampleAnalyses())
	require.NoError(t, err)

	var decoded struct {
		Tokens map[string][]cssx.Token `json:"tokens"`
		Colors []classify.ColorAnalysis
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotEmpty(t, decoded.Tokens["color"])
	assert.Len(t, decoded.Colors, 2)
}

func TestStyleDictionaryShape(t *testing.T) {
	ts := cssx.Extract(`.a { font-size: 14px; padding: 8px; border-radius: 4px; }`)
	raw, err := StyleDictionary(ts, sampleAnalyses())
	require.NoError(t, err)

	var root map[string]map[string]struct {
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(raw, &root))
	assert.Equal(t, "#1a73e8", root["color"]["primary"].Value)
	assert.NotEmpty(t, root["fontSize"])
	assert.NotEmpty(t, root["spacing"])
	assert.NotEmpty(t, root["borderRadius"])
}

func TestShadcnCSSBlocks(t *testing.T) {
	th := theme.Generate(sampleAnalyses(), colorx.EncodingHSL)
	out := ShadcnCSS(th)
	assert.True(t, strings.HasPrefix(out, ":root {"))
	assert.Contains(t, out, "--primary:")
	assert.Contains(t, out, "--primary-foreground:")
	assert.Contains(t, out, ".dark {")
}

func TestShadcnCSSLightOnly(t *testing.T) {
	th := theme.Generate(nil, colorx.EncodingHSL)
	out := ShadcnCSS(th)
	assert.NotContains(t, out, ".dark")
}

func TestThemeJSONPrefixesVars(t *testing.T) {
	th := theme.Generate(sampleAnalyses(), colorx.EncodingHex)
	raw, err := ThemeJSON(th)
	require.NoError(t, err)
	var decoded struct {
		Light map[string]string `json:"light"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "#1a73e8", decoded.Light["--primary"])
}

func TestTailwindReport(t *testing.T) {
	ts := cssx.Extract(`.a { margin: 8px; padding: 7px; }`)
	analyses := []classify.ColorAnalysis{
		{Hex: "#2563eb", Role: classify.RolePrimary}, // exactly blue-600
		{Hex: "#2564ea", Role: classify.RoleSecondary},
	}
	raw, err := TailwindReport(ts, analyses)
	require.NoError(t, err)

	var report struct {
		Colors  []ColorCorrelation
		Spacing []SpacingCorrelation
	}
	require.NoError(t, json.Unmarshal(raw, &report))

	require.Len(t, report.Colors, 2)
	assert.Equal(t, "blue-600", report.Colors[0].Nearest)
	assert.True(t, report.Colors[0].Exact)
	assert.Equal(t, "blue-600", report.Colors[1].Nearest)
	assert.False(t, report.Colors[1].Exact)

	onScale := map[string]bool{}
	for _, s := range report.Spacing {
		onScale[s.RawValue] = s.OnScale
	}
	assert.True(t, onScale["8px"])
	assert.False(t, onScale["7px"])
}

func TestSupported(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatStyleDictionary, FormatShadcn, FormatTailwind, FormatThemeJSON} {
		assert.True(t, Supported(f))
	}
	assert.False(t, Supported(Format("yaml")))
}
