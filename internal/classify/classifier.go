package classify

import (
	"sort"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	semanticx "github.com/switmer/Get-Site-Styles-API/internal/semantic"
)

/*
Package classify scores every normalized color for brand-likelihood and
assigns exactly one role per color. The scoring and assignment constants in
constants.go are load-bearing; see DESIGN.md before touching them.
*/

// Analyze scores and role-assigns every color in the frequency table.
// Semantic signals and page text are optional: omitting them degrades to
// frequency/heuristic-only scoring, never an error.
func Analyze(
	frequencies map[string]int,
	variableColors map[string]bool,
	sem *semanticx.Analysis,
	htmlText, cssText string,
) []ColorAnalysis {
	cands := groupSimilar(BuildCandidates(frequencies, variableColors))
	if len(cands) == 0 {
		return nil
	}

	havePage := htmlText != "" || cssText != ""
	detected := DetectFrameworks(htmlText, cssText)

	total := 0
	for _, c := range cands {
		total += c.Frequency
	}

	analyses := make([]ColorAnalysis, 0, len(cands))
	for _, c := range cands {
		rgba := colorx.Parse(c.NormalizedHex)
		hsl := colorx.ToHSL(rgba)

		var signals []semanticx.Signal
		if sem != nil {
			signals = sem.ByColor[c.NormalizedHex]
		}
		sources := c.Sources
		if len(signals) > 0 {
			sources = mergeSources(sources, []string{"semantic"})
		}

		relFreq := 0.0
		if total > 0 {
			relFreq = float64(c.Frequency) / float64(total) * 100
		}

		in := scoreInput{
			hex:          c.NormalizedHex,
			relFreq:      relFreq,
			contrastW:    colorx.ContrastVsWhite(rgba),
			contrastB:    colorx.ContrastVsBlack(rgba),
			fromVariable: variableColors[c.NormalizedHex],
			signals:      signals,
			detected:     detected,
			havePage:     havePage,
		}
		in.hsl.H, in.hsl.S, in.hsl.L = hsl.H, hsl.S, hsl.L

		score := compositeScore(in)
		analyses = append(analyses, ColorAnalysis{
			Hex:             c.NormalizedHex,
			Role:            RoleNeutral,
			Lightness:       hsl.L,
			Saturation:      hsl.S,
			Hue:             hsl.H,
			ContrastVsWhite: in.contrastW,
			ContrastVsBlack: in.contrastB,
			Frequency:       c.Frequency,
			Sources:         sources,
			Confidence:      confidenceFromScore(score),
			score:           score,
		})
	}

	assignRoles(analyses, total)
	redistributePrimaries(analyses)
	return analyses
}

// assignRoles walks colors in descending score order applying the fixed
// priority rules. The destructive/primary/secondary/accent slots are
// mutually exclusive: first qualifying color wins the slot.
func assignRoles(analyses []ColorAnalysis, total int) {
	sort.SliceStable(analyses, func(i, j int) bool { return analyses[i].score > analyses[j].score })

	taken := map[Role]bool{}
	for i := range analyses {
		a := &analyses[i]
		relFreq := 0.0
		if total > 0 {
			relFreq = float64(a.Frequency) / float64(total) * 100
		}
		a.Role = pickRole(a, relFreq, taken)
		if a.Role == RolePrimary || a.Role == RoleSecondary || a.Role == RoleAccent || a.Role == RoleDestructive {
			taken[a.Role] = true
		}
	}
}

func pickRole(a *ColorAnalysis, relFreq float64, taken map[Role]bool) Role {
	isRedHue := a.Hue >= destructiveHueLow || a.Hue <= destructiveHueHigh
	extremeLight := a.Lightness > 95 || a.Lightness < 5

	switch {
	case !taken[RoleDestructive] && isRedHue && a.Saturation > destructiveMinSat &&
		a.Lightness >= 25 && a.Lightness <= 75:
		return RoleDestructive

	case extremeLight && relFreq > backgroundMinRelFreq:
		return RoleBackground

	case a.Saturation < 15 && extremeLight && relFreq > foregroundMinRelFreq:
		return RoleForeground

	case !taken[RolePrimary] && a.Saturation > primaryMinSaturation &&
		a.score >= primaryThreshold(a.Saturation):
		return RolePrimary

	case !taken[RoleSecondary] && a.Saturation > 20 && a.score >= secondaryThreshold:
		return RoleSecondary

	case !taken[RoleAccent] && a.Saturation > accentMinSaturation &&
		relFreq < accentMaxRelFreq && a.Lightness >= 20 && a.Lightness <= 80:
		return RoleAccent

	case a.Saturation < borderMaxSaturation && a.Lightness >= 70 && a.Lightness <= 95:
		return RoleBorder

	case a.Saturation < mutedMaxSaturation:
		return RoleMuted
	}
	return RoleNeutral
}

// primaryThreshold is vibrancy-adjusted: highly saturated colors clear a
// lower bar, because vibrant brands often have modest frequency counts.
func primaryThreshold(saturation float64) float64 {
	if saturation > 60 {
		return primaryBaseThreshold - primaryVibrancyDiscount
	}
	return primaryBaseThreshold
}

// redistributePrimaries enforces the exclusivity invariant: at most one
// primary survives. Extras are demoted by saturation/frequency band into
// secondary, accent or muted. Analyze itself assigns at most one primary;
// this pass also covers merged multi-source analyses where several
// per-source primaries collide.
func redistributePrimaries(analyses []ColorAnalysis) {
	Redistribute(analyses)
}

// Redistribute demotes surplus primaries, keeping the highest-scoring one.
// Exported for the merger, which unifies per-source analyses that can each
// legitimately carry a primary.
func Redistribute(analyses []ColorAnalysis) {
	best := -1
	for i := range analyses {
		if analyses[i].Role != RolePrimary {
			continue
		}
		if best == -1 || analyses[i].score > analyses[best].score {
			best = i
		}
	}
	if best == -1 {
		return
	}
	haveSecondary := false
	haveAccent := false
	for i := range analyses {
		switch analyses[i].Role {
		case RoleSecondary:
			haveSecondary = true
		case RoleAccent:
			haveAccent = true
		}
	}
	for i := range analyses {
		if i == best || analyses[i].Role != RolePrimary {
			continue
		}
		a := &analyses[i]
		switch {
		case !haveSecondary && a.Saturation > 20:
			a.Role = RoleSecondary
			haveSecondary = true
		case !haveAccent && a.Saturation > accentMinSaturation:
			a.Role = RoleAccent
			haveAccent = true
		default:
			a.Role = RoleMuted
		}
	}
}
