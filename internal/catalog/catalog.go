// Package catalog holds the static descriptors the studio works from: output
// formats, visual style presets, sample product photos, and suggested brand
// tones. All data is immutable for the process lifetime; accessors return
// copies so callers cannot mutate the catalog.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bananastudio/internal/domain"
)

var assetTypes = []domain.AssetType{
	{
		ID:          "insta-post",
		Label:       "Instagram Post",
		AspectRatio: "1:1",
		Width:       1080,
		Height:      1080,
		Description: "Perfect for square feed posts.",
		MediaType:   domain.MediaTypeImage,
	},
	{
		ID:          "insta-story",
		Label:       "Instagram Story",
		AspectRatio: "9:16",
		Width:       1080,
		Height:      1920,
		Description: "Full vertical screen engagement.",
		MediaType:   domain.MediaTypeImage,
	},
	{
		ID:          "web-banner",
		Label:       "Website Banner",
		AspectRatio: "16:9",
		Width:       1920,
		Height:      1080,
		Description: "Hero headers and desktop displays.",
		MediaType:   domain.MediaTypeImage,
	},
	{
		ID:          "ad-creative",
		Label:       "Ad Creative",
		AspectRatio: "1:1",
		Width:       1200,
		Height:      1200,
		Description: "Optimized for performance marketing.",
		MediaType:   domain.MediaTypeImage,
	},
	{
		ID:          "tiktok-ad",
		Label:       "TikTok / Reels Ad",
		AspectRatio: "9:16",
		Width:       1080,
		Height:      1920,
		Description: "Short viral video format (Veo).",
		MediaType:   domain.MediaTypeVideo,
	},
}

// AssetTypes returns all output format descriptors, catalog order.
func AssetTypes() []domain.AssetType {
	out := make([]domain.AssetType, len(assetTypes))
	copy(out, assetTypes)
	return out
}

// AssetTypeByID resolves a descriptor by its unique id.
func AssetTypeByID(id string) (domain.AssetType, bool) {
	for _, t := range assetTypes {
		if t.ID == id {
			return t, true
		}
	}
	return domain.AssetType{}, false
}

var titleCaser = cases.Title(language.English)

// DisplayName returns a human-readable name for an asset type id. Known ids
// use their catalog label; unknown ids fall back to a title-cased form so
// chat greetings stay readable even for assets created before a catalog
// change.
func DisplayName(typeID string) string {
	if t, ok := AssetTypeByID(typeID); ok {
		return t.Label
	}
	return titleCaser.String(strings.ReplaceAll(typeID, "-", " "))
}
