package catalog

import (
	"strings"

	"bananastudio/internal/domain"
)

// StylePreset names one of the closed set of visual styles.
type StylePreset string

const (
	StyleLuxury     StylePreset = "Luxury"
	StyleMinimalist StylePreset = "Minimalist"
	StyleNatural    StylePreset = "Natural"
	StyleTech       StylePreset = "High-Tech"
	StyleVibrant    StylePreset = "Vibrant"
	StyleCustom     StylePreset = "Custom"
)

var styleDescriptions = map[StylePreset]string{
	StyleLuxury:     "Elegant, high-end, gold and black accents, studio lighting, premium materials, silk textures.",
	StyleMinimalist: "Clean, plenty of whitespace, soft shadows, neutral colors, simple composition, modern font.",
	StyleNatural:    "Organic elements, wood textures, green leaves, sunlight, earthy tones, fresh atmosphere.",
	StyleTech:       "Neon lights, futuristic glow, metallic surfaces, cyber aesthetics, sharp contrast, gradient background.",
	StyleVibrant:    "Bold colors, energetic patterns, high saturation, dynamic composition, playful mood.",
	StyleCustom:     "Custom aesthetic based on brand description.",
}

var styleOrder = []StylePreset{
	StyleLuxury,
	StyleMinimalist,
	StyleNatural,
	StyleTech,
	StyleVibrant,
	StyleCustom,
}

// StyleEntry pairs a preset name with its prompt fragment for listing.
type StyleEntry struct {
	Name        StylePreset `json:"name"`
	Description string      `json:"description"`
}

// Styles lists all presets in display order.
func Styles() []StyleEntry {
	out := make([]StyleEntry, 0, len(styleOrder))
	for _, s := range styleOrder {
		out = append(out, StyleEntry{Name: s, Description: styleDescriptions[s]})
	}
	return out
}

// ResolveStyle returns the prompt fragment for a preset. The Custom preset
// defers to the caller-supplied free text; when that text is empty the
// generic custom sentence is used so prompts never carry an empty style
// section. Unknown presets yield ErrUnknownStyle.
func ResolveStyle(preset StylePreset, custom string) (string, error) {
	desc, ok := styleDescriptions[preset]
	if !ok {
		return "", domain.ErrUnknownStyle
	}
	if preset == StyleCustom {
		if trimmed := strings.TrimSpace(custom); trimmed != "" {
			return trimmed, nil
		}
	}
	return desc, nil
}
