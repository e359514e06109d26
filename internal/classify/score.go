package classify

import (
	semanticx "github.com/switmer/Get-Site-Styles-API/internal/semantic"
)

// scoreInput carries everything the composite score needs for one color.
type scoreInput struct {
	hex          string
	hsl          struct{ H, S, L float64 }
	relFreq      float64 // percent of all color occurrences
	contrastW    float64
	contrastB    float64
	fromVariable bool
	signals      []semanticx.Signal
	detected     []string
	havePage     bool
}

// compositeScore is the single brand-likelihood score. Higher is more
// brand-likely. Every term is an explicit, inspectable heuristic.
func compositeScore(in scoreInput) float64 {
	score := 0.0

	switch {
	case in.hsl.S > 80:
		score += scoreSaturationVivid
	case in.hsl.S > 60:
		score += scoreSaturationHigh
	case in.hsl.S > 40:
		score += scoreSaturationMid
	}
	if in.hsl.S < 10 {
		score += scoreGrayscalePenalty
	}

	switch {
	case in.hsl.L >= 25 && in.hsl.L <= 75:
		score += scoreLightnessSweet
	case in.hsl.L >= 15 && in.hsl.L <= 85:
		score += scoreLightnessOK
	}
	if in.hsl.L > 95 || in.hsl.L < 5 {
		score += scoreLightnessExtreme
	}

	if commonWebColors[in.hex] {
		score += scoreCommonColorPenalty
	}
	score += frameworkPenalty(in.hex, in.detected, in.havePage)
	if browserDefaultColors[in.hex] {
		score += scoreBrowserDefaultPenalty
	}

	if in.contrastW > contrastBonusMinimum || in.contrastB > contrastBonusMinimum {
		score += scoreContrastBonus
	}

	if in.relFreq >= 1 && in.relFreq <= 30 {
		score += scoreUsageSweetSpot
	} else if in.relFreq > 50 {
		score += scoreUsageDominant
	}

	if len(in.signals) > 0 {
		score += scoreSemanticBase
		score += semanticBonus(in.signals)
	} else {
		score += scoreNoSemanticSignal
	}

	if in.fromVariable {
		score += scoreCustomPropertyBonus
	}

	return score
}

// semanticBonus layers the positional and weight-tier bonuses on top of the
// base semantic bonus, using the strongest signal per dimension.
func semanticBonus(signals []semanticx.Signal) float64 {
	bonus := 0.0

	bestEarliness := 0.0
	bestDepth := 0.0
	aboveFold := false
	bestTier := 0.0
	headerStrong := false

	for _, s := range signals {
		if e := float64(scoreEarlinessMax - 2*s.FirstSeenIndex); e > bestEarliness {
			bestEarliness = e
		}
		if d := float64(scoreShallowDepthMax - s.DOMDepth); d > bestDepth {
			bestDepth = d
		}
		if s.DocumentPosition <= aboveFoldPosition {
			aboveFold = true
		}
		tier := 0.0
		switch {
		case s.Weight >= 90:
			tier = scoreWeightTier90
		case s.Weight >= 80:
			tier = scoreWeightTier80
		case s.Weight >= 70:
			tier = scoreWeightTier70
		}
		if tier > bestTier {
			bestTier = tier
		}
		if s.Context == semanticx.ContextHeader && s.Weight >= 90 {
			headerStrong = true
		}
	}

	bonus += bestEarliness + bestDepth + bestTier
	if aboveFold {
		bonus += scoreAboveFold
	}
	if headerStrong {
		bonus += scoreHeaderStrongBonus
	}
	return bonus
}

// confidenceFromScore maps the open-ended composite score into (0,1].
func confidenceFromScore(score float64) float64 {
	c := 0.5 + score/400
	if c < 0.05 {
		c = 0.05
	}
	if c > 0.98 {
		c = 0.98
	}
	return c
}
