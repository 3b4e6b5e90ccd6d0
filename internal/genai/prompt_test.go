package genai

import (
	"strings"
	"testing"

	"bananastudio/internal/domain"
)

var promptBrand = domain.BrandConfig{
	Name:        "Aurora Naturals",
	Tone:        "Natural & Organic",
	Tagline:     "Glow from within",
	Palette:     "sage green, cream, gold",
	ProductName: "Radiance Serum",
}

func TestBuildImagePrompt(t *testing.T) {
	typ := domain.AssetType{ID: "web-banner", AspectRatio: "16:9"}
	prompt := BuildImagePrompt(promptBrand, typ, "Clean, plenty of whitespace.")

	for _, want := range []string{
		`marketing image for a product named "Radiance Serum"`,
		"Brand Identity:",
		"- Brand Name: Aurora Naturals",
		"- Tone: Natural & Organic",
		"- Tagline: Glow from within",
		"- Color Palette: sage green, cream, gold",
		"Visual Style:\nClean, plenty of whitespace.",
		"The aspect ratio is strictly 16:9.",
		`IMPORTANT: Try to include the text "Aurora Naturals" elegantly`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildVideoPrompt(t *testing.T) {
	prompt := BuildVideoPrompt(promptBrand, "Organic elements, sunlight.")
	for _, want := range []string{
		`advertisement video for "Radiance Serum" by Aurora Naturals`,
		"Style: Organic elements, sunlight.",
		"Tone: Natural & Organic",
		"TikTok/Reels",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildEditPrompt(t *testing.T) {
	prompt := BuildEditPrompt("  make the background darker  ")
	want := "Edit this image. Instruction: make the background darker. Maintain the product identity but change the environment or elements as requested."
	if prompt != want {
		t.Fatalf("prompt = %q, want %q", prompt, want)
	}
}

func TestBuildCaptionPrompt(t *testing.T) {
	prompt := BuildCaptionPrompt(promptBrand)
	for _, want := range []string{"Instagram caption", "Aurora Naturals", "Radiance Serum", "3 relevant hashtags"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
