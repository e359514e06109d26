package semantic

import "strings"

// selectorRule matches elements by tag, class fragment or id fragment.
// Rules are evaluated in order; an element may match several rules and
// contributes one signal per match.
type selectorRule struct {
	Tag           string
	ClassContains string
	IDContains    string
	Context       Context
	Weight        int
}

// The ranked structural table. Weights span 50-100 with buttons and brand
// marks at the top; tuned alongside the classifier bonuses.
var selectorTable = []selectorRule{
	{ClassContains: "cta", Context: ContextCTA, Weight: 100},
	{ClassContains: "brand", Context: ContextBrand, Weight: 100},
	{ClassContains: "logo", Context: ContextBrand, Weight: 98},
	{Tag: "button", Context: ContextButton, Weight: 95},
	{ClassContains: "btn", Context: ContextButton, Weight: 95},
	{ClassContains: "button", Context: ContextButton, Weight: 95},
	{Tag: "header", Context: ContextHeader, Weight: 90},
	{ClassContains: "hero", Context: ContextHero, Weight: 90},
	{ClassContains: "primary", Context: ContextAccent, Weight: 88},
	{Tag: "nav", Context: ContextNavigation, Weight: 85},
	{ClassContains: "header", Context: ContextHeader, Weight: 85},
	{ClassContains: "nav", Context: ContextNavigation, Weight: 80},
	{ClassContains: "banner", Context: ContextHero, Weight: 78},
	{ClassContains: "alert", Context: ContextStatus, Weight: 75},
	{ClassContains: "error", Context: ContextStatus, Weight: 75},
	{ClassContains: "danger", Context: ContextStatus, Weight: 75},
	{Tag: "form", Context: ContextForm, Weight: 70},
	{Tag: "input", Context: ContextForm, Weight: 70},
	{Tag: "select", Context: ContextForm, Weight: 68},
	{Tag: "textarea", Context: ContextForm, Weight: 68},
	{ClassContains: "success", Context: ContextStatus, Weight: 70},
	{ClassContains: "warning", Context: ContextStatus, Weight: 70},
	{ClassContains: "badge", Context: ContextAccent, Weight: 65},
	{ClassContains: "tag", Context: ContextAccent, Weight: 62},
	{Tag: "footer", Context: ContextNavigation, Weight: 60},
	{Tag: "a", Context: ContextLink, Weight: 55},
	{ClassContains: "link", Context: ContextLink, Weight: 52},
}

type match struct {
	rule selectorRule
	// fragment is the concrete selector piece that matched (tag name, class
	// name or id), used to hunt for rules targeting it in the raw CSS.
	fragment string
}

func matchRules(tag, id string, classes []string) []match {
	var out []match
	for _, r := range selectorTable {
		switch {
		case r.Tag != "" && r.Tag == tag:
			out = append(out, match{rule: r, fragment: tag})
		case r.ClassContains != "":
			for _, c := range classes {
				if strings.Contains(strings.ToLower(c), r.ClassContains) {
					out = append(out, match{rule: r, fragment: "." + c})
					break
				}
			}
		case r.IDContains != "" && id != "" && strings.Contains(strings.ToLower(id), r.IDContains):
			out = append(out, match{rule: r, fragment: "#" + id})
		}
	}
	return out
}
