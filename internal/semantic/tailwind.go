package semantic

import (
	"regexp"
	"strings"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
)

// Utility-class colors carry a fixed medium weight: strong enough to matter,
// below explicit structural contexts.
const utilityClassWeight = 60

var reUtilityClass = regexp.MustCompile(`^(?:bg|text|border|ring|fill|stroke)-(.+)$`)

// utilityClassColor resolves Tailwind-style utility classes (bg-*/text-*/
// border-*, including bracketed arbitrary values) to a normalized hex.
func utilityClassColor(class string) (string, bool) {
	m := reUtilityClass.FindStringSubmatch(class)
	if m == nil {
		return "", false
	}
	rest := m[1]
	// Strip an opacity modifier: bg-blue-500/50.
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	// Arbitrary value: bg-[#ff0000] or text-[rgb(1,2,3)].
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		inner := strings.ReplaceAll(rest[1:len(rest)-1], "_", " ")
		if !colorx.IsColorLiteral(inner) {
			return "", false
		}
		return colorx.NormalizeHex(inner), true
	}
	hex, ok := tailwindPalette[rest]
	if !ok {
		return "", false
	}
	return hex, true
}

// tailwindPalette is the static class-suffix -> hex lookup for the default
// Tailwind palette (the shades that show up in the wild).
var tailwindPalette = map[string]string{
	"white": "#ffffff",
	"black": "#000000",

	"slate-50": "#f8fafc", "slate-100": "#f1f5f9", "slate-200": "#e2e8f0",
	"slate-300": "#cbd5e1", "slate-400": "#94a3b8", "slate-500": "#64748b",
	"slate-600": "#475569", "slate-700": "#334155", "slate-800": "#1e293b",
	"slate-900": "#0f172a",

	"gray-50": "#f9fafb", "gray-100": "#f3f4f6", "gray-200": "#e5e7eb",
	"gray-300": "#d1d5db", "gray-400": "#9ca3af", "gray-500": "#6b7280",
	"gray-600": "#4b5563", "gray-700": "#374151", "gray-800": "#1f2937",
	"gray-900": "#111827",

	"red-50": "#fef2f2", "red-100": "#fee2e2", "red-200": "#fecaca",
	"red-300": "#fca5a5", "red-400": "#f87171", "red-500": "#ef4444",
	"red-600": "#dc2626", "red-700": "#b91c1c", "red-800": "#991b1b",
	"red-900": "#7f1d1d",

	"orange-400": "#fb923c", "orange-500": "#f97316", "orange-600": "#ea580c",
	"orange-700": "#c2410c",

	"amber-400": "#fbbf24", "amber-500": "#f59e0b", "amber-600": "#d97706",

	"yellow-300": "#fde047", "yellow-400": "#facc15", "yellow-500": "#eab308",
	"yellow-600": "#ca8a04",

	"lime-500": "#84cc16", "lime-600": "#65a30d",

	"green-50": "#f0fdf4", "green-100": "#dcfce7", "green-200": "#bbf7d0",
	"green-300": "#86efac", "green-400": "#4ade80", "green-500": "#22c55e",
	"green-600": "#16a34a", "green-700": "#15803d", "green-800": "#166534",
	"green-900": "#14532d",

	"emerald-400": "#34d399", "emerald-500": "#10b981", "emerald-600": "#059669",

	"teal-400": "#2dd4bf", "teal-500": "#14b8a6", "teal-600": "#0d9488",

	"cyan-400": "#22d3ee", "cyan-500": "#06b6d4", "cyan-600": "#0891b2",

	"sky-400": "#38bdf8", "sky-500": "#0ea5e9", "sky-600": "#0284c7",

	"blue-50": "#eff6ff", "blue-100": "#dbeafe", "blue-200": "#bfdbfe",
	"blue-300": "#93c5fd", "blue-400": "#60a5fa", "blue-500": "#3b82f6",
	"blue-600": "#2563eb", "blue-700": "#1d4ed8", "blue-800": "#1e40af",
	"blue-900": "#1e3a8a",

	"indigo-50": "#eef2ff", "indigo-100": "#e0e7ff", "indigo-200": "#c7d2fe",
	"indigo-300": "#a5b4fc", "indigo-400": "#818cf8", "indigo-500": "#6366f1",
	"indigo-600": "#4f46e5", "indigo-700": "#4338ca", "indigo-800": "#3730a3",
	"indigo-900": "#312e81",

	"violet-500": "#8b5cf6", "violet-600": "#7c3aed",

	"purple-400": "#c084fc", "purple-500": "#a855f7", "purple-600": "#9333ea",
	"purple-700": "#7e22ce",

	"fuchsia-500": "#d946ef", "fuchsia-600": "#c026d3",

	"pink-400": "#f472b6", "pink-500": "#ec4899", "pink-600": "#db2777",

	"rose-500": "#f43f5e", "rose-600": "#e11d48",
}

// TailwindPalette exposes the lookup for the correlation report formatter.
func TailwindPalette() map[string]string {
	out := make(map[string]string, len(tailwindPalette))
	for k, v := range tailwindPalette {
		out[k] = v
	}
	return out
}
