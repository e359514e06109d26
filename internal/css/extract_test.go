package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findToken(ts *TokenSet, kind TokenKind, raw string) (Token, bool) {
	for _, tok := range ts.Tokens[kind] {
		if tok.RawValue == raw {
			return tok, true
		}
	}
	return Token{}, false
}

func TestExtractColorsAndSizes(t *testing.T) {
	ts := Extract(`
		.btn { background: #1a73e8; color: white; padding: 8px 16px; border-radius: 4px; }
		.card { background: #1a73e8; font-size: 14px; margin: 8px; }
		h1 { font-size: 32px; color: rgb(20, 20, 20); }
	`)

	tok, ok := findToken(ts, KindColor, "#1a73e8")
	require.True(t, ok, "expected #1a73e8 color token")
	assert.Equal(t, 2, tok.Count)

	_, ok = findToken(ts, KindColor, "rgb(20, 20, 20)")
	assert.True(t, ok)

	if _, ok := findToken(ts, KindSpacing, "8px"); !ok {
		t.Fatalf("expected 8px spacing token, got %+v", ts.Tokens[KindSpacing])
	}
	if _, ok := findToken(ts, KindRadius, "4px"); !ok {
		t.Fatalf("expected 4px radius token")
	}
	if _, ok := findToken(ts, KindFontSize, "14px"); !ok {
		t.Fatalf("expected 14px fontSize token")
	}
}

func TestExtractPrevalenceAndOrder(t *testing.T) {
	ts := Extract(`.a{color:#111111}.b{color:#111111}.c{color:#222222}`)
	colors := ts.Tokens[KindColor]
	require.Len(t, colors, 2)
	assert.Equal(t, "#111111", colors[0].RawValue)
	assert.Equal(t, 2, colors[0].Count)
	assert.InDelta(t, 66.67, colors[0].Prevalence, 0.1)
	assert.InDelta(t, 33.33, colors[1].Prevalence, 0.1)
}

func TestExtractPseudoStateDenylist(t *testing.T) {
	ts := Extract(`
		a:hover { color: #0000ee; }
		a:visited { color: #551a8b; }
		.btn:focus { outline-color: #4d90fe; }
		.btn { background: #1a73e8; }
	`)
	for _, bad := range []string{"#0000ee", "#551a8b", "#4d90fe"} {
		if _, ok := findToken(ts, KindColor, bad); ok {
			t.Fatalf("pseudo-state color %s must be excluded", bad)
		}
	}
	if _, ok := findToken(ts, KindColor, "#1a73e8"); !ok {
		t.Fatalf("non-pseudo color missing")
	}
}

func TestCustomPropertyResolution(t *testing.T) {
	ts := Extract(`
		:root { --brand: #1a73e8; --brand-alias: var(--brand); --pad: 8px; }
		.btn { background: var(--brand); padding: var(--pad); }
	`)

	brand := ts.CustomProperties["--brand"]
	require.NotNil(t, brand)
	assert.Equal(t, "#1a73e8", brand.ResolvedValue)
	assert.Equal(t, 2, brand.ReferenceCount)

	alias := ts.CustomProperties["--brand-alias"]
	require.NotNil(t, alias)
	assert.Equal(t, "#1a73e8", alias.ResolvedValue)
	assert.Equal(t, "--brand", alias.AliasOf)

	assert.True(t, ts.ColorsFromVariables["#1a73e8"])

	// var() usage resolves to the literal, so the color is counted twice:
	// once in the variable definition context, once at the use site.
	tok, ok := findToken(ts, KindColor, "#1a73e8")
	require.True(t, ok)
	assert.GreaterOrEqual(t, tok.Count, 2)
}

func TestCustomPropertyCycleIsBroken(t *testing.T) {
	ts := Extract(`:root { --a: var(--b); --b: var(--a); } .x { color: var(--a); }`)
	// Must terminate; cyclic values keep their var() text.
	a := ts.CustomProperties["--a"]
	if a == nil {
		t.Fatalf("--a missing")
	}
	if a.ResolvedValue == "" {
		t.Fatalf("cyclic property lost its value entirely")
	}
}

func TestVarFallback(t *testing.T) {
	ts := Extract(`.x { color: var(--missing, #ff0000); }`)
	if _, ok := findToken(ts, KindColor, "#ff0000"); !ok {
		t.Fatalf("fallback color not extracted: %+v", ts.Tokens[KindColor])
	}
}

func TestBreakpoints(t *testing.T) {
	ts := Extract(`@media (min-width: 768px) { .x { color: #123456; } } @media (max-width: 1024px) { .y { margin: 4px; } }`)
	if _, ok := findToken(ts, KindBreakpoint, "768px"); !ok {
		t.Fatalf("missing 768px breakpoint")
	}
	if _, ok := findToken(ts, KindBreakpoint, "1024px"); !ok {
		t.Fatalf("missing 1024px breakpoint")
	}
	// Colors inside media rules are still collected.
	if _, ok := findToken(ts, KindColor, "#123456"); !ok {
		t.Fatalf("color inside media rule not collected")
	}
}

func TestMalformedCSSNeverAborts(t *testing.T) {
	ts := Extract(`.ok { color: #abcdef; } .broken { color:: ; !!; } @media garbage { .x { color: #fedcba } }`)
	if _, ok := findToken(ts, KindColor, "#abcdef"); !ok {
		t.Fatalf("good declaration lost when sibling rule is malformed")
	}
}

func TestShadowAndGradientTokens(t *testing.T) {
	ts := Extract(`
		.card { box-shadow: 0 1px 3px rgba(0,0,0,0.2); }
		.hero { background: linear-gradient(90deg, #ff0000, #0000ff); }
	`)
	require.NotEmpty(t, ts.Tokens[KindShadow])
	require.NotEmpty(t, ts.Tokens[KindGradient])
	// Shadow and gradient colors also land in the color table.
	if _, ok := findToken(ts, KindColor, "rgba(0,0,0,0.2)"); !ok {
		t.Fatalf("shadow color not collected")
	}
	if _, ok := findToken(ts, KindColor, "#ff0000"); !ok {
		t.Fatalf("gradient color not collected")
	}
}
