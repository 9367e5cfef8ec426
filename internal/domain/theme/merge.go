package theme

import "strings"

const (
	// DefaultIcon is used when a fragment carries no icon.
	DefaultIcon = "✨"

	fallbackNamePrefix = "Skin: "
	fallbackNameRunes  = 15
)

// Fragment is the partial, unvalidated theme-shaped result of a generation.
// Any field may be absent; Colors may hold any subset of the slots.
type Fragment struct {
	Name   string
	Icon   string
	Colors map[Slot]string
}

// Merge builds a new complete theme from base with fragment overlaid on top.
// Every slot present in fragment.Colors replaces the base value; all other
// slots keep the base value. Merge is the only way generated themes are made.
func Merge(base Theme, fragment Fragment, prompt, id string) Theme {
	colors := base.Colors
	for slot, value := range fragment.Colors {
		colors.Set(slot, value)
	}

	name := fragment.Name
	if name == "" {
		name = FallbackName(prompt)
	}
	icon := fragment.Icon
	if icon == "" {
		icon = DefaultIcon
	}

	return Theme{
		ID:     id,
		Name:   name,
		Icon:   icon,
		Colors: colors,
	}
}

// FallbackName derives a theme name from the first 15 runes of prompt.
// The ellipsis is appended even when the prompt is shorter.
func FallbackName(prompt string) string {
	runes := []rune(strings.TrimSpace(prompt))
	if len(runes) > fallbackNameRunes {
		runes = runes[:fallbackNameRunes]
	}
	return fallbackNamePrefix + string(runes) + "..."
}
