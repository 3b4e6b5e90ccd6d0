package genai

import (
	"fmt"
	"strings"

	"bananastudio/internal/domain"
)

// BuildImagePrompt assembles the natural-language prompt for one marketing
// image. The product photo travels alongside as an inline part; the prompt
// pins it as the focal subject and states the aspect ratio as a hard
// requirement.
func BuildImagePrompt(brand domain.BrandConfig, assetType domain.AssetType, styleDesc string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional high-quality marketing image for a product named %q.\n\n", brand.ProductName)
	b.WriteString("Brand Identity:\n")
	fmt.Fprintf(&b, "- Brand Name: %s\n", brand.Name)
	fmt.Fprintf(&b, "- Tone: %s\n", brand.Tone)
	fmt.Fprintf(&b, "- Tagline: %s\n", brand.Tagline)
	fmt.Fprintf(&b, "- Color Palette: %s\n\n", brand.Palette)
	fmt.Fprintf(&b, "Visual Style:\n%s\n\n", styleDesc)
	b.WriteString("Requirements:\n")
	b.WriteString("- The product (provided in the image) must be the central focal point.\n")
	b.WriteString("- Place the product in a scene fitting the description above.\n")
	b.WriteString("- Ensure the lighting is professional studio quality.\n")
	fmt.Fprintf(&b, "- The aspect ratio is strictly %s.\n", assetType.AspectRatio)
	fmt.Fprintf(&b, "- IMPORTANT: Try to include the text %q elegantly in the image if it fits the composition naturally.", brand.Name)
	return b.String()
}

// BuildVideoPrompt assembles the cinematic-ad prompt for a Veo job.
func BuildVideoPrompt(brand domain.BrandConfig, styleDesc string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a high-quality, cinematic product advertisement video for %q by %s.\n", brand.ProductName, brand.Name)
	fmt.Fprintf(&b, "Style: %s\n", styleDesc)
	fmt.Fprintf(&b, "Tone: %s\n", brand.Tone)
	b.WriteString("The video should be engaging, professional, and suitable for social media (TikTok/Reels). ")
	b.WriteString("Focus on the product details and aesthetic appeal. Motion should be dynamic but smooth.")
	return b.String()
}

// BuildEditPrompt wraps a free-text instruction with the directive that keeps
// the product recognizable while the scene changes.
func BuildEditPrompt(instruction string) string {
	return fmt.Sprintf("Edit this image. Instruction: %s. Maintain the product identity but change the environment or elements as requested.", strings.TrimSpace(instruction))
}

// BuildCaptionPrompt asks for a short social caption with hashtags.
func BuildCaptionPrompt(brand domain.BrandConfig) string {
	return fmt.Sprintf("Write a catchy Instagram caption for this product image. Brand: %s. Product: %s. Tone: %s. Include 3 relevant hashtags.", brand.Name, brand.ProductName, brand.Tone)
}
