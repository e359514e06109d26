package css

import "strings"

// collectCustomProperties gathers --name declarations and counts var()
// references across all declaration values.
func collectCustomProperties(decls []declaration) map[string]*CustomProperty {
	props := make(map[string]*CustomProperty)
	for _, d := range decls {
		name := strings.TrimSpace(d.property)
		if !strings.HasPrefix(name, "--") {
			continue
		}
		p, ok := props[name]
		if !ok {
			p = &CustomProperty{Name: name}
			props[name] = p
		}
		// Last writer wins, matching cascade order within one blob.
		p.ResolvedValue = strings.TrimSpace(d.value)
	}
	for _, d := range decls {
		for _, m := range reVarRef.FindAllStringSubmatch(d.value, -1) {
			if p, ok := props[m[1]]; ok {
				p.ReferenceCount++
			}
		}
	}
	return props
}

// resolveAll replaces var() chains inside custom-property values with
// literals. Cycles are broken by the per-resolution seen set; a cyclic
// property keeps its partially-resolved value.
func resolveAll(props map[string]*CustomProperty) {
	for name, p := range props {
		seen := map[string]bool{name: true}
		resolved, alias := resolveValue(p.ResolvedValue, props, seen)
		p.ResolvedValue = resolved
		if alias != "" && alias != name {
			p.AliasOf = alias
		}
	}
}

func resolveValue(value string, props map[string]*CustomProperty, seen map[string]bool) (string, string) {
	alias := ""
	if m := reVarRef.FindStringSubmatch(strings.TrimSpace(value)); m != nil && strings.TrimSpace(value) == m[0] {
		alias = m[1]
	}
	for i := 0; i < len(props); i++ {
		m := reVarRef.FindStringSubmatch(value)
		if m == nil {
			return value, alias
		}
		ref, fallback := m[1], m[2]
		if seen[ref] {
			// Cycle: leave the reference in place.
			return value, alias
		}
		seen[ref] = true
		replacement := fallback
		if p, ok := props[ref]; ok && strings.TrimSpace(p.ResolvedValue) != "" {
			replacement = p.ResolvedValue
		}
		if strings.TrimSpace(replacement) == "" {
			return value, alias
		}
		value = strings.Replace(value, m[0], strings.TrimSpace(replacement), 1)
	}
	return value, alias
}

// substituteVars resolves var() references in an arbitrary declaration value.
// Property values are already fully resolved by resolveAll, so a single
// substitution pass suffices; cyclic properties keep their var() text.
func substituteVars(value string, props map[string]*CustomProperty) string {
	if !strings.Contains(value, "var(") {
		return value
	}
	return reVarRef.ReplaceAllStringFunc(value, func(ref string) string {
		m := reVarRef.FindStringSubmatch(ref)
		if p, ok := props[m[1]]; ok && strings.TrimSpace(p.ResolvedValue) != "" {
			return p.ResolvedValue
		}
		if strings.TrimSpace(m[2]) != "" {
			return strings.TrimSpace(m[2])
		}
		return ref
	})
}
