package classify

import "strings"

// DetectFrameworks scores each framework's class, variable-prefix and
// selector signatures against the page and returns the names whose score
// clears that framework's threshold.
func DetectFrameworks(htmlText, cssText string) []string {
	if htmlText == "" && cssText == "" {
		return nil
	}
	htmlLower := strings.ToLower(htmlText)
	cssLower := strings.ToLower(cssText)

	var detected []string
	for name, sig := range frameworkSignatures {
		score := 0
		for _, frag := range sig.classFragments {
			if strings.Contains(htmlLower, frag) {
				score++
			}
		}
		for _, prefix := range sig.varPrefixes {
			if strings.Contains(cssLower, prefix) {
				score += 2 // a variable prefix is a much stronger tell than a class
			}
		}
		for _, hint := range sig.selectorHints {
			if strings.Contains(cssLower, hint) {
				score++
			}
		}
		if score >= sig.threshold {
			detected = append(detected, name)
		}
	}
	return detected
}

// frameworkPenalty returns the penalty for a color that matches a framework
// stock palette: the dynamic penalty when that framework was detected on the
// page, the lighter static penalty when no page text was available to detect
// against.
func frameworkPenalty(hex string, detected []string, havePage bool) float64 {
	if havePage {
		for _, name := range detected {
			if colorInFramework(hex, name) {
				return scoreFrameworkDynamic
			}
		}
		return 0
	}
	for name := range frameworkColors {
		if colorInFramework(hex, name) {
			return scoreFrameworkStatic
		}
	}
	return 0
}

func colorInFramework(hex, framework string) bool {
	for _, c := range frameworkColors[framework] {
		if c == hex {
			return true
		}
	}
	return false
}
