package theme

import (
	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
)

// Neutral defaults for roles the classifier found nothing for. Rendered in
// whatever encoding the caller asked for, so the theme stays uniform.
var roleDefaults = map[classify.Role]string{
	classify.RolePrimary:     "#171717",
	classify.RoleSecondary:   "#f5f5f5",
	classify.RoleAccent:      "#f5f5f5",
	classify.RoleDestructive: "#ef4444",
	classify.RoleBackground:  "#ffffff",
	classify.RoleForeground:  "#0a0a0a",
	classify.RoleBorder:      "#e5e5e5",
	classify.RoleMuted:       "#f5f5f5",
}

func defaultRoleColor(role classify.Role) colorx.RGBA {
	hex, ok := roleDefaults[role]
	if !ok {
		hex = "#737373"
	}
	return colorx.Parse(hex)
}
