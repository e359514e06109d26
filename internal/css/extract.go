package css

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
)

/*
Package css extracts typed design tokens from a CSS text blob. Malformed
rules are skipped individually; the extractor never aborts on a bad rule.
*/

var (
	reColorProp   = regexp.MustCompile(`(?i)color|background|border|fill|stroke|shadow|outline`)
	reFontSize    = regexp.MustCompile(`(?i)^font-size$`)
	reFontFamily  = regexp.MustCompile(`(?i)^font-family$`)
	reFontWeight  = regexp.MustCompile(`(?i)^font-weight$`)
	reLineHeight  = regexp.MustCompile(`(?i)^line-height$`)
	reSpacingProp = regexp.MustCompile(`(?i)^(margin|padding|gap|row-gap|column-gap|top|right|bottom|left|inset)`)
	reRadiusProp  = regexp.MustCompile(`(?i)radius`)
	reShadowProp  = regexp.MustCompile(`(?i)shadow`)
	reSizeValue   = regexp.MustCompile(`-?\d*\.?\d+(px|rem|em|%|vw|vh)`)
	reBreakpoint  = regexp.MustCompile(`(?i)(?:min|max)-width\s*:\s*(\d*\.?\d+(?:px|rem|em))`)
	reGradient    = regexp.MustCompile(`(?i)(linear|radial|conic)-gradient\([^;]*\)`)
	reVarRef      = regexp.MustCompile(`var\(\s*(--[\w-]+)\s*(?:,\s*([^)]+))?\)`)

	reHexLit   = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)
	reFuncLit  = regexp.MustCompile(`(?i)(rgba?|hsla?)\([^)]*\)`)
	reNamedLit = regexp.MustCompile(`(?i)\b(black|white|red|green|blue|yellow|orange|purple|pink|gray|grey|silver|navy|teal|aqua|cyan|magenta|fuchsia|maroon|olive|lime|coral|gold|indigo|violet)\b`)

	// Declarations under these pseudo-state selectors frequently encode
	// non-brand browser defaults and are excluded from color collection.
	rePseudoDeny = regexp.MustCompile(`(?i):(hover|focus|focus-visible|focus-within|visited|active|target)\b|::?-moz-focus`)
)

// Extract parses a CSS blob into the token-group record. Pure and
// deterministic for identical input.
func Extract(cssText string) *TokenSet {
	decls := parseDeclarations(cssText)

	props := collectCustomProperties(decls)
	resolveAll(props)

	ts := &TokenSet{
		Tokens:              make(map[TokenKind][]Token),
		CustomProperties:    props,
		ColorsFromVariables: make(map[string]bool),
	}
	for _, p := range props {
		for _, lit := range ColorLiterals(p.ResolvedValue) {
			ts.ColorsFromVariables[colorx.NormalizeHex(lit)] = true
		}
	}

	counters := map[TokenKind]*counter{}
	count := func(kind TokenKind, value string) {
		c := counters[kind]
		if c == nil {
			c = newCounter()
			counters[kind] = c
		}
		c.add(value)
	}

	for _, d := range decls {
		value := substituteVars(d.value, props)
		prop := strings.ToLower(d.property)

		// Custom-property values count as color occurrences too: a color a
		// designer named is at least as intentional as one used inline.
		if (reColorProp.MatchString(prop) || strings.HasPrefix(prop, "--")) && !d.pseudoState {
			for _, lit := range ColorLiterals(value) {
				count(KindColor, lit)
			}
		}
		switch {
		case reFontSize.MatchString(prop):
			for _, v := range reSizeValue.FindAllString(value, -1) {
				count(KindFontSize, v)
			}
		case reFontFamily.MatchString(prop):
			count(KindFontFamily, strings.TrimSpace(value))
		case reFontWeight.MatchString(prop):
			count(KindFontWeight, strings.TrimSpace(value))
		case reLineHeight.MatchString(prop):
			count(KindLineHeight, strings.TrimSpace(value))
		case reRadiusProp.MatchString(prop):
			for _, v := range reSizeValue.FindAllString(value, -1) {
				count(KindRadius, v)
			}
		case reShadowProp.MatchString(prop):
			count(KindShadow, strings.TrimSpace(value))
		case reSpacingProp.MatchString(prop):
			for _, v := range reSizeValue.FindAllString(value, -1) {
				count(KindSpacing, v)
			}
		}
		if g := reGradient.FindString(value); g != "" {
			count(KindGradient, g)
		}
	}

	for _, m := range reBreakpoint.FindAllStringSubmatch(cssText, -1) {
		count(KindBreakpoint, m[1])
	}

	for kind, c := range counters {
		ts.Tokens[kind] = c.tokens(kind)
	}
	return ts
}

// ColorLiterals pulls every color literal out of a declaration value.
func ColorLiterals(value string) []string {
	var out []string
	out = append(out, reHexLit.FindAllString(value, -1)...)
	out = append(out, reFuncLit.FindAllString(value, -1)...)
	lower := strings.ToLower(value)
	for _, m := range reNamedLit.FindAllString(lower, -1) {
		if colorx.IsColorLiteral(m) {
			out = append(out, m)
		}
	}
	return out
}

type declaration struct {
	selector    string
	property    string
	value       string
	pseudoState bool
}

// parseDeclarations flattens the stylesheet into (selector, property, value)
// triples. Douceur handles well-formed sheets; on a parse failure the
// scanner-based sweep recovers whatever declarations it can.
func parseDeclarations(cssText string) []declaration {
	sheet, err := parser.Parse(cssText)
	if err != nil || sheet == nil {
		return sweepDeclarations(cssText)
	}
	var out []declaration
	var walk func(rules []*css.Rule)
	walk = func(rules []*css.Rule) {
		for _, r := range rules {
			if r == nil {
				continue
			}
			sel := strings.Join(r.Selectors, ", ")
			if sel == "" {
				sel = r.Prelude
			}
			deny := rePseudoDeny.MatchString(sel)
			for _, d := range r.Declarations {
				if d == nil || strings.TrimSpace(d.Property) == "" {
					continue
				}
				out = append(out, declaration{
					selector:    sel,
					property:    d.Property,
					value:       d.Value,
					pseudoState: deny,
				})
			}
			if len(r.Rules) > 0 {
				walk(r.Rules)
			}
		}
	}
	walk(sheet.Rules)
	return out
}

var reSweepRule = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)

// sweepDeclarations is the recovery path for CSS douceur refuses to parse.
func sweepDeclarations(cssText string) []declaration {
	var out []declaration
	for _, m := range reSweepRule.FindAllStringSubmatch(cssText, -1) {
		sel := strings.TrimSpace(m[1])
		deny := rePseudoDeny.MatchString(sel)
		for _, part := range strings.Split(m[2], ";") {
			idx := strings.Index(part, ":")
			if idx <= 0 {
				continue
			}
			prop := strings.TrimSpace(part[:idx])
			val := strings.TrimSpace(part[idx+1:])
			if prop == "" || val == "" {
				continue
			}
			out = append(out, declaration{selector: sel, property: prop, value: val, pseudoState: deny})
		}
	}
	return out
}
