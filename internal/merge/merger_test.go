package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
)

func tokenSetWith(kind cssx.TokenKind, raw string, count int) *cssx.TokenSet {
	return &cssx.TokenSet{
		Tokens: map[cssx.TokenKind][]cssx.Token{
			kind: {{Kind: kind, RawValue: raw, Count: count, Prevalence: 100}},
		},
	}
}

func TestAuthorityWeightedFrequency(t *testing.T) {
	ds := PerSource{
		Meta:   NewSourceMetadata("https://design.example.com", SourceDesignSystem, 1000),
		Tokens: tokenSetWith(cssx.KindColor, "#ff0000", 10),
	}
	mk := PerSource{
		Meta:   NewSourceMetadata("https://www.example.com", SourceMarketing, 1000),
		Tokens: tokenSetWith(cssx.KindColor, "#ff0000", 10),
	}
	require.Equal(t, 100.0, ds.Meta.AuthorityWeight)
	require.Equal(t, 40.0, mk.Meta.AuthorityWeight)

	res := Merge([]PerSource{ds, mk})
	toks := res.Tokens[cssx.KindColor]
	require.Len(t, toks, 1)
	// 10*1.0 + 10*0.4 = 14, not 20.
	assert.InDelta(t, 14.0, toks[0].Frequency, 0.001)
	assert.Equal(t, 2, toks[0].SourceCount)
}

func TestCSSVolumeBoost(t *testing.T) {
	small := NewSourceMetadata("a", SourceMarketing, 100)
	medium := NewSourceMetadata("b", SourceMarketing, 60_000)
	large := NewSourceMetadata("c", SourceMarketing, 200_000)
	assert.Equal(t, 40.0, small.AuthorityWeight)
	assert.Equal(t, 45.0, medium.AuthorityWeight)
	assert.Equal(t, 50.0, large.AuthorityWeight)

	capped := NewSourceMetadata("d", SourceDesignSystem, 200_000)
	assert.Equal(t, 100.0, capped.AuthorityWeight)
}

func TestColorUnificationKeepsHighestConfidenceRole(t *testing.T) {
	ds := PerSource{
		Meta: NewSourceMetadata("https://design.example.com", SourceDesignSystem, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#1a73e8", Role: classify.RolePrimary, Frequency: 5, Confidence: 0.4},
		},
	}
	app := PerSource{
		Meta: NewSourceMetadata("https://app.example.com", SourceApplication, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#1a73e8", Role: classify.RoleAccent, Frequency: 3, Confidence: 0.4},
		},
	}
	res := Merge([]PerSource{ds, app})
	require.Len(t, res.Colors, 1)
	c := res.Colors[0]
	// design-system boost (x2) beats application (x1.2).
	assert.Equal(t, classify.RolePrimary, c.Role)
	assert.Equal(t, 8, c.Frequency)
	// 0.4*2*1.3 (recurrence) = 1.04, capped.
	assert.InDelta(t, 0.98, c.Confidence, 0.001)
}

func TestConflictSurfaced(t *testing.T) {
	a := PerSource{
		Meta: NewSourceMetadata("u1", SourceDesignSystem, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#00aa88", Role: classify.RoleAccent, Frequency: 2, Confidence: 0.5},
		},
	}
	b := PerSource{
		Meta: NewSourceMetadata("u2", SourceMarketing, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#00aa88", Role: classify.RoleSecondary, Frequency: 2, Confidence: 0.5},
		},
	}
	res := Merge([]PerSource{a, b})
	require.Len(t, res.Conflicts, 1)
	conflict := res.Conflicts[0]
	assert.Equal(t, "#00aa88", conflict.Hex)
	assert.Equal(t, classify.RoleAccent, conflict.Resolved)
	assert.Len(t, conflict.Roles, 2)
}

func TestMergedPrimariesRedistributed(t *testing.T) {
	a := PerSource{
		Meta: NewSourceMetadata("u1", SourceDesignSystem, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#e91e63", Role: classify.RolePrimary, Saturation: 82, Frequency: 5, Confidence: 0.6},
		},
	}
	b := PerSource{
		Meta: NewSourceMetadata("u2", SourceApplication, 0),
		Analyses: []classify.ColorAnalysis{
			{Hex: "#3f51b5", Role: classify.RolePrimary, Saturation: 54, Frequency: 5, Confidence: 0.6},
		},
	}
	res := Merge([]PerSource{a, b})
	primaries := 0
	for _, c := range res.Colors {
		if c.Role == classify.RolePrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestUnknownSourceTypeFallsBack(t *testing.T) {
	m := NewSourceMetadata("x", SourceType("bogus"), 0)
	assert.Equal(t, SourceUnknown, m.SourceType)
	assert.Equal(t, 30.0, m.AuthorityWeight)
}
