package classify

import (
	"math"
	"sort"
	"strconv"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
)

// Variant is one raw spelling of a candidate color.
type Variant struct {
	RawValue   string `json:"rawValue"`
	Count      int    `json:"occurrenceCount"`
	HasOpacity bool   `json:"hasOpacity"`
}

// Candidate groups every raw spelling of a color under its normalized,
// alpha-stripped hex. Immutable after grouping.
type Candidate struct {
	NormalizedHex string    `json:"normalizedHex"`
	Variants      []Variant `json:"variants"`
	Sources       []string  `json:"sources"`
	Frequency     int       `json:"frequency"`
}

// Representative returns the raw value that stands for the group: the
// non-transparent variant with the highest count.
func (c Candidate) Representative() string {
	best := ""
	bestCount := -1
	for _, v := range c.Variants {
		if v.HasOpacity {
			continue
		}
		if v.Count > bestCount {
			best, bestCount = v.RawValue, v.Count
		}
	}
	if best == "" && len(c.Variants) > 0 {
		best = c.Variants[0].RawValue
	}
	return best
}

// BuildCandidates folds raw frequency counts into deduplicated candidates
// keyed by normalized hex.
func BuildCandidates(frequencies map[string]int, variableColors map[string]bool) []Candidate {
	byHex := make(map[string]*Candidate)
	for raw, count := range frequencies {
		hex := colorx.NormalizeHex(raw)
		c, ok := byHex[hex]
		if !ok {
			c = &Candidate{NormalizedHex: hex, Sources: []string{"css"}}
			byHex[hex] = c
		}
		c.Variants = append(c.Variants, Variant{
			RawValue:   raw,
			Count:      count,
			HasOpacity: colorx.HasOpacity(raw),
		})
		c.Frequency += count
	}
	out := make([]Candidate, 0, len(byHex))
	for hex, c := range byHex {
		if variableColors[hex] {
			c.Sources = append(c.Sources, "variable")
		}
		sort.Slice(c.Variants, func(i, j int) bool { return c.Variants[i].Count > c.Variants[j].Count })
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].NormalizedHex < out[j].NormalizedHex
	})
	return out
}

// groupSimilar bins candidates by hue window and saturation tier (or by
// lightness band for near-grayscale colors) and collapses each bin to its
// highest-frequency member with combined counts. Many near-identical shades
// would otherwise dilute a single brand color's score.
func groupSimilar(cands []Candidate) []Candidate {
	bins := make(map[string]*Candidate)
	var order []string
	for _, c := range cands {
		h := colorx.ToHSL(colorx.Parse(c.NormalizedHex))
		key := binKey(h)
		existing, ok := bins[key]
		if !ok {
			clone := c
			bins[key] = &clone
			order = append(order, key)
			continue
		}
		// Keep the higher-frequency member as the face of the bin.
		if c.Frequency > existing.Frequency {
			merged := c
			merged.Frequency += existing.Frequency
			merged.Variants = append(merged.Variants, existing.Variants...)
			merged.Sources = mergeSources(merged.Sources, existing.Sources)
			bins[key] = &merged
		} else {
			existing.Frequency += c.Frequency
			existing.Variants = append(existing.Variants, c.Variants...)
			existing.Sources = mergeSources(existing.Sources, c.Sources)
		}
	}
	out := make([]Candidate, 0, len(bins))
	for _, key := range order {
		out = append(out, *bins[key])
	}
	return out
}

func binKey(h colorx.HSL) string {
	if h.S < 10 {
		// Near-grayscale: hue is noise, bin on lightness bands.
		return "gray-" + strconv.Itoa(int(math.Floor(h.L/20)))
	}
	hueWindow := int(math.Floor(h.H / 30))
	satTier := 0
	switch {
	case h.S > 66:
		satTier = 2
	case h.S > 33:
		satTier = 1
	}
	return "hue-" + strconv.Itoa(hueWindow) + "-" + strconv.Itoa(satTier)
}

func mergeSources(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := append([]string(nil), a...)
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
