// Package theme defines the color palettes of the practice screen.
package theme

import "github.com/charmbracelet/lipgloss"

// DefaultKey is the theme used when none is configured.
const DefaultKey = "default"

// Theme is a named color palette.
type Theme struct {
	Key       string
	Name      string
	Text      lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Surface   lipgloss.Color
	Correct   lipgloss.Color
	Incorrect lipgloss.Color
	Muted     lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Key:       "default",
		Name:      "Light",
		Text:      "#111827",
		Primary:   "#4F46E5",
		Secondary: "#6B7280",
		Accent:    "#4F46E5",
		Surface:   "#E0E7FF",
		Correct:   "#16A34A",
		Incorrect: "#DC2626",
		Muted:     "#9CA3AF",
	},
	"dark": {
		Key:       "dark",
		Name:      "Dark",
		Text:      "#F3F4F6",
		Primary:   "#9333EA",
		Secondary: "#9CA3AF",
		Accent:    "#C084FC",
		Surface:   "#374151",
		Correct:   "#22C55E",
		Incorrect: "#FF4D4F",
		Muted:     "#6E6E6E",
	},
	"sepia": {
		Key:       "sepia",
		Name:      "Sepia",
		Text:      "#78350F",
		Primary:   "#92400E",
		Secondary: "#B45309",
		Accent:    "#92400E",
		Surface:   "#FEF3C7",
		Correct:   "#15803D",
		Incorrect: "#B91C1C",
		Muted:     "#D6A76C",
	},
	"forest": {
		Key:       "forest",
		Name:      "Forest",
		Text:      "#064E3B",
		Primary:   "#047857",
		Secondary: "#059669",
		Accent:    "#047857",
		Surface:   "#D1FAE5",
		Correct:   "#16A34A",
		Incorrect: "#DC2626",
		Muted:     "#6EE7B7",
	},
	"ocean": {
		Key:       "ocean",
		Name:      "Ocean",
		Text:      "#1E3A8A",
		Primary:   "#2563EB",
		Secondary: "#0891B2",
		Accent:    "#2563EB",
		Surface:   "#DBEAFE",
		Correct:   "#16A34A",
		Incorrect: "#DC2626",
		Muted:     "#93C5FD",
	},
}

// order is the display and cycling order of the built-in themes.
var order = []string{"default", "dark", "sepia", "forest", "ocean"}

// Get returns the theme registered under key.
func Get(key string) (Theme, bool) {
	t, ok := themes[key]
	return t, ok
}

// Default returns the default theme.
func Default() Theme {
	return themes[DefaultKey]
}

// Keys returns all theme keys in display order.
func Keys() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Next returns the theme after key, wrapping around.
func Next(key string) Theme {
	for i, k := range order {
		if k == key {
			return themes[order[(i+1)%len(order)]]
		}
	}
	return Default()
}
