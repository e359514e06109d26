package semantic

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
)

/*
Package semantic walks the DOM against a ranked table of structural selectors
and attaches contextual weight and positional signals to every color
occurrence. It deliberately pattern-matches the raw CSS text for selector
fragments instead of running a full cascade: component-framework pages carry
class names whose styles never appear inline, and a fragment match recovers
those colors.
*/

var reColorBearingProp = regexp.MustCompile(`(?i)^(color|background|background-color|border|border-color|fill|stroke|outline-color)$`)

// Analyze evaluates the selector table against the parsed DOM and the raw
// CSS text. A selector matching zero elements contributes nothing.
func Analyze(htmlText, cssText string) *Analysis {
	a := &Analysis{ByColor: make(map[string][]Signal)}
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		// Parse errors on fragments are rare (html.Parse is forgiving); an
		// empty analysis degrades the classifier to heuristic-only scoring.
		return a
	}

	w := &walker{
		analysis:  a,
		cssText:   cssText,
		firstSeen: make(map[string]int),
		perKey:    make(map[string]*Signal),
	}
	w.total = countElements(doc)
	w.walk(doc, 0)
	w.flush()
	return a
}

type walker struct {
	analysis *Analysis
	cssText  string

	total     int
	index     int
	firstSeen map[string]int
	seenCount int

	// perKey aggregates signals per (color, context): repeated matches bump
	// ElementCount and keep the strongest weight and shallowest position.
	perKey   map[string]*Signal
	keyOrder []string
}

func countElements(n *html.Node) int {
	count := 0
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.ElementNode {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return count
}

func (w *walker) walk(n *html.Node, depth int) {
	if n.Type == html.ElementNode {
		w.index++
		w.visit(n, depth)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, depth+1)
	}
}

func (w *walker) visit(n *html.Node, depth int) {
	var styleAttr, classAttr, idAttr string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "style":
			styleAttr = attr.Val
		case "class":
			classAttr = attr.Val
		case "id":
			idAttr = attr.Val
		}
	}
	classes := strings.Fields(classAttr)
	matches := matchRules(n.Data, idAttr, classes)

	pos := 0.0
	if w.total > 0 {
		pos = float64(w.index) / float64(w.total)
	}

	for _, c := range classes {
		if hex, ok := utilityClassColor(c); ok {
			w.record(hex, ContextAccent, utilityClassWeight, depth, pos)
		}
	}

	for _, m := range matches {
		for _, lit := range inlineStyleColors(styleAttr) {
			w.record(lit, m.rule.Context, m.rule.Weight, depth, pos)
		}
		for _, lit := range fragmentColors(w.cssText, m.fragment) {
			w.record(lit, m.rule.Context, m.rule.Weight, depth, pos)
		}
	}
}

// record folds an occurrence into the per-(color,context) aggregate.
func (w *walker) record(literal string, ctx Context, weight, depth int, pos float64) {
	hex := colorx.NormalizeHex(literal)
	if _, ok := w.firstSeen[hex]; !ok {
		w.firstSeen[hex] = w.seenCount
		w.seenCount++
	}
	key := hex + "|" + string(ctx)
	s, ok := w.perKey[key]
	if !ok {
		w.perKey[key] = &Signal{
			Color:            hex,
			Context:          ctx,
			Weight:           weight,
			DOMDepth:         depth,
			FirstSeenIndex:   w.firstSeen[hex],
			DocumentPosition: pos,
			ElementCount:     1,
		}
		w.keyOrder = append(w.keyOrder, key)
		return
	}
	s.ElementCount++
	if weight > s.Weight {
		s.Weight = weight
	}
	if depth < s.DOMDepth {
		s.DOMDepth = depth
	}
	if pos < s.DocumentPosition {
		s.DocumentPosition = pos
	}
}

func (w *walker) flush() {
	for _, key := range w.keyOrder {
		w.analysis.add(*w.perKey[key])
	}
}

// inlineStyleColors extracts colors from a style="" attribute, keeping only
// color-bearing properties.
func inlineStyleColors(style string) []string {
	if style == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(style, ";") {
		idx := strings.Index(part, ":")
		if idx <= 0 {
			continue
		}
		prop := strings.TrimSpace(part[:idx])
		if !reColorBearingProp.MatchString(prop) {
			continue
		}
		out = append(out, cssx.ColorLiterals(part[idx+1:])...)
	}
	return out
}
