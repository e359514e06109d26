package css

import "sort"

// TokenKind buckets extracted design values.
type TokenKind string

const (
	KindColor      TokenKind = "color"
	KindFontSize   TokenKind = "fontSize"
	KindFontFamily TokenKind = "fontFamily"
	KindFontWeight TokenKind = "fontWeight"
	KindLineHeight TokenKind = "lineHeight"
	KindSpacing    TokenKind = "spacing"
	KindRadius     TokenKind = "radius"
	KindShadow     TokenKind = "shadow"
	KindGradient   TokenKind = "gradient"
	KindBreakpoint TokenKind = "breakpoint"
)

// Token is a single extracted design value. Immutable once emitted;
// deduplicated by exact raw value within a kind.
type Token struct {
	Kind       TokenKind `json:"kind"`
	RawValue   string    `json:"rawValue"`
	Count      int       `json:"occurrenceCount"`
	Prevalence float64   `json:"prevalence"`
}

// CustomProperty is a CSS variable with its resolved value. AliasOf is set
// when the value was a bare var() reference to another property.
type CustomProperty struct {
	Name           string `json:"name"`
	ResolvedValue  string `json:"resolvedValue"`
	ReferenceCount int    `json:"referenceCount"`
	AliasOf        string `json:"aliasOf,omitempty"`
}

// TokenSet is the extractor output: frequency-sorted tokens per kind plus the
// resolved custom-property table and the set of colors (normalized hex) that
// were defined through a custom property.
type TokenSet struct {
	Tokens              map[TokenKind][]Token      `json:"tokens"`
	CustomProperties    map[string]*CustomProperty `json:"customProperties"`
	ColorsFromVariables map[string]bool            `json:"colorsFromVariables"`
}

// ColorFrequencies folds the color tokens into normalizedHex -> total count.
func (ts *TokenSet) ColorFrequencies(normalize func(string) string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range ts.Tokens[KindColor] {
		freq[normalize(tok.RawValue)] += tok.Count
	}
	return freq
}

type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(value string) {
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// tokens emits the frequency table: prevalence is the share of all
// occurrences of the kind, sorted by count descending with first-seen order
// as the tie break.
func (c *counter) tokens(kind TokenKind) []Token {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	if total == 0 {
		return nil
	}
	firstSeen := make(map[string]int, len(c.order))
	for i, v := range c.order {
		firstSeen[v] = i
	}
	out := make([]Token, 0, len(c.counts))
	for v, n := range c.counts {
		out = append(out, Token{
			Kind:       kind,
			RawValue:   v,
			Count:      n,
			Prevalence: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].RawValue] < firstSeen[out[j].RawValue]
	})
	return out
}
