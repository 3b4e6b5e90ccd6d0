package domain

// DefaultTone is the tone a fresh session starts with.
const DefaultTone = "Luxury & Sophisticated"

// BrandConfig holds the brand identity embedded into generation prompts.
// Every field is optional free text; the configuration form replaces the
// whole value at once, so there is no per-field mutation API.
type BrandConfig struct {
	Name        string `json:"name"`
	Tone        string `json:"tone"`
	Tagline     string `json:"tagline"`
	Palette     string `json:"palette"`
	ProductName string `json:"product_name"`
}
