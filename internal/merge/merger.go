package merge

import (
	"sort"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
)

/*
Package merge aggregates per-source token sets and color analyses into one
result, scaling each source's contribution by its authority weight. The
merger only starts once every per-source analysis exists; it performs no
fetching and no partial merges.
*/

// MergedToken is a token with its authority-weighted frequency.
type MergedToken struct {
	Kind        cssx.TokenKind `json:"kind"`
	RawValue    string         `json:"rawValue"`
	Frequency   float64        `json:"frequency"`  // weighted sum of counts
	Prevalence  float64        `json:"prevalence"` // weighted average
	SourceCount int            `json:"sourceCount"`
}

// Conflict records a color whose role differs between sources.
type Conflict struct {
	Hex      string                   `json:"hex"`
	Roles    map[string]classify.Role `json:"roles"` // source URL -> role
	Resolved classify.Role            `json:"resolved"`
}

// Result is the merged output.
type Result struct {
	Tokens    map[cssx.TokenKind][]MergedToken `json:"tokens"`
	Colors    []classify.ColorAnalysis         `json:"colors"`
	Conflicts []Conflict                       `json:"conflicts"`
	Sources   []SourceMetadata                 `json:"sources"`
}

// PerSource pairs one source's extraction and classification output.
type PerSource struct {
	Meta     SourceMetadata
	Tokens   *cssx.TokenSet
	Analyses []classify.ColorAnalysis
}

// Merge unifies N per-source results. Token contribution is
// rawCount*(weight/100); color analyses unify by hex keeping the
// highest-confidence role, with cross-source recurrence boosting confidence.
func Merge(sources []PerSource) *Result {
	res := &Result{
		Tokens: make(map[cssx.TokenKind][]MergedToken),
	}
	for _, s := range sources {
		res.Sources = append(res.Sources, s.Meta)
	}

	mergeTokens(res, sources)
	mergeColors(res, sources)
	return res
}

func mergeTokens(res *Result, sources []PerSource) {
	type acc struct {
		frequency   float64
		prevalence  float64 // weight-scaled sum, divided by weight total at the end
		weightTotal float64
		sourceCount int
	}
	byKind := make(map[cssx.TokenKind]map[string]*acc)

	for _, s := range sources {
		if s.Tokens == nil {
			continue
		}
		factor := s.Meta.AuthorityWeight / 100
		for kind, toks := range s.Tokens.Tokens {
			m := byKind[kind]
			if m == nil {
				m = make(map[string]*acc)
				byKind[kind] = m
			}
			for _, tok := range toks {
				a := m[tok.RawValue]
				if a == nil {
					a = &acc{}
					m[tok.RawValue] = a
				}
				a.frequency += float64(tok.Count) * factor
				a.prevalence += tok.Prevalence * s.Meta.AuthorityWeight
				a.weightTotal += s.Meta.AuthorityWeight
				a.sourceCount++
			}
		}
	}

	for kind, m := range byKind {
		out := make([]MergedToken, 0, len(m))
		for raw, a := range m {
			prev := 0.0
			if a.weightTotal > 0 {
				prev = a.prevalence / a.weightTotal
			}
			out = append(out, MergedToken{
				Kind:        kind,
				RawValue:    raw,
				Frequency:   a.frequency,
				Prevalence:  prev,
				SourceCount: a.sourceCount,
			})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Frequency != out[j].Frequency {
				return out[i].Frequency > out[j].Frequency
			}
			return out[i].RawValue < out[j].RawValue
		})
		res.Tokens[kind] = out
	}
}

func mergeColors(res *Result, sources []PerSource) {
	type colorAcc struct {
		best        classify.ColorAnalysis
		bestConf    float64
		frequency   int
		sourceCount int
		roles       map[string]classify.Role
	}
	byHex := make(map[string]*colorAcc)
	var order []string

	for _, s := range sources {
		boost := confidenceBoost(s.Meta.SourceType)
		for _, a := range s.Analyses {
			conf := a.Confidence * boost
			acc := byHex[a.Hex]
			if acc == nil {
				acc = &colorAcc{roles: make(map[string]classify.Role)}
				byHex[a.Hex] = acc
				order = append(order, a.Hex)
			}
			acc.frequency += a.Frequency
			acc.sourceCount++
			acc.roles[s.Meta.URL] = a.Role
			if conf > acc.bestConf {
				acc.bestConf = conf
				acc.best = a
			}
		}
	}

	for _, hex := range order {
		acc := byHex[hex]
		a := acc.best
		a.Frequency = acc.frequency
		conf := acc.bestConf
		if acc.sourceCount >= 2 {
			conf *= recurrenceBoost
		}
		if conf > 0.98 {
			conf = 0.98
		}
		a.Confidence = conf

		if len(distinctRoles(acc.roles)) > 1 {
			res.Conflicts = append(res.Conflicts, Conflict{
				Hex:      hex,
				Roles:    acc.roles,
				Resolved: a.Role,
			})
		}
		res.Colors = append(res.Colors, a)
	}

	// Per-source primaries can collide after unification.
	classify.Redistribute(res.Colors)

	sort.SliceStable(res.Colors, func(i, j int) bool {
		return res.Colors[i].Confidence > res.Colors[j].Confidence
	})
}

func distinctRoles(roles map[string]classify.Role) map[classify.Role]bool {
	out := make(map[classify.Role]bool)
	for _, r := range roles {
		out[r] = true
	}
	return out
}
