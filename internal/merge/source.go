package merge

// SourceType categorizes an analyzed URL for authority weighting.
type SourceType string

const (
	SourceDesignSystem  SourceType = "design-system"
	SourceDocumentation SourceType = "documentation"
	SourceApplication   SourceType = "application"
	SourceMarketing     SourceType = "marketing"
	SourceUnknown       SourceType = "unknown"
)

// SourceMetadata is created once per analyzed URL; the weight is a function
// of type and CSS volume and is fixed after creation.
type SourceMetadata struct {
	URL             string     `json:"url"`
	SourceType      SourceType `json:"sourceType"`
	AuthorityWeight float64    `json:"authorityWeight"`
	CSSLength       int        `json:"cssLength"`
}

// Base authority per source type. A design system is the ground truth for
// tokens; a marketing page is the noisiest witness.
var baseAuthority = map[SourceType]float64{
	SourceDesignSystem:  100,
	SourceDocumentation: 80,
	SourceApplication:   60,
	SourceMarketing:     40,
	SourceUnknown:       30,
}

// CSS volume boosts: a large stylesheet usually means the page carries the
// real product styling rather than a thin landing page.
const (
	largeCSSBytes  = 100_000
	mediumCSSBytes = 50_000
	largeCSSBoost  = 10
	mediumCSSBoost = 5
	maxAuthority   = 100
)

// NewSourceMetadata computes the fixed authority weight for a source.
func NewSourceMetadata(url string, st SourceType, cssLength int) SourceMetadata {
	w, ok := baseAuthority[st]
	if !ok {
		st = SourceUnknown
		w = baseAuthority[SourceUnknown]
	}
	switch {
	case cssLength >= largeCSSBytes:
		w += largeCSSBoost
	case cssLength >= mediumCSSBytes:
		w += mediumCSSBoost
	}
	if w > maxAuthority {
		w = maxAuthority
	}
	return SourceMetadata{URL: url, SourceType: st, AuthorityWeight: w, CSSLength: cssLength}
}

// confidenceBoost scales a per-source confidence by source type.
func confidenceBoost(st SourceType) float64 {
	switch st {
	case SourceDesignSystem:
		return 2.0
	case SourceDocumentation:
		return 1.5
	case SourceApplication:
		return 1.2
	default:
		return 1.0
	}
}

// Boost applied when a color recurs across two or more sources.
const recurrenceBoost = 1.3
