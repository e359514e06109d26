package semantic

// Context names the structural role of the DOM location a color was found in.
type Context string

const (
	ContextButton     Context = "button"
	ContextNavigation Context = "navigation"
	ContextCTA        Context = "cta"
	ContextHeader     Context = "header"
	ContextHero       Context = "hero"
	ContextBrand      Context = "brand"
	ContextForm       Context = "form"
	ContextStatus     Context = "status"
	ContextLink       Context = "link"
	ContextAccent     Context = "accent"
)

// Signal is one piece of evidence that a color appears in a structurally
// important context. Signals for the same color accumulate, never overwrite.
type Signal struct {
	Color            string  `json:"color"` // normalized hex
	Context          Context `json:"context"`
	Weight           int     `json:"weight"` // 0..100
	DOMDepth         int     `json:"domDepth"`
	FirstSeenIndex   int     `json:"firstSeenIndex"`
	DocumentPosition float64 `json:"documentPosition"` // 0..1
	ElementCount     int     `json:"elementCount"`
}

// Analysis is the weighter output consumed by the classifier.
type Analysis struct {
	Signals []Signal            `json:"signals"`
	ByColor map[string][]Signal `json:"-"`
}

func (a *Analysis) add(s Signal) {
	a.Signals = append(a.Signals, s)
	if a.ByColor == nil {
		a.ByColor = make(map[string][]Signal)
	}
	a.ByColor[s.Color] = append(a.ByColor[s.Color], s)
}
