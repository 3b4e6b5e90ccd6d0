package catalog

import "bananastudio/internal/domain"

var sampleImages = []domain.SampleImage{
	{
		ID:          "sample-serum",
		Name:        "Premium Serum",
		Description: "A luxury anti-aging serum bottle.",
		URL:         "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=600&h=600",
	},
	{
		ID:          "sample-cream",
		Name:        "Face Cream",
		Description: "Hydrating face cream in a jar.",
		URL:         "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?auto=format&fit=crop&q=80&w=600&h=600",
	},
	{
		ID:          "sample-oil",
		Name:        "Beauty Oil",
		Description: "Organic essential oil dropper.",
		URL:         "https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?auto=format&fit=crop&q=80&w=600&h=600",
	},
}

// Samples lists the pre-set product photos.
func Samples() []domain.SampleImage {
	out := make([]domain.SampleImage, len(sampleImages))
	copy(out, sampleImages)
	return out
}

// SampleByID resolves a sample image by id.
func SampleByID(id string) (domain.SampleImage, bool) {
	for _, s := range sampleImages {
		if s.ID == id {
			return s, true
		}
	}
	return domain.SampleImage{}, false
}

// Tones are suggested brand voice options for the configuration form. Free
// text outside this list is accepted everywhere.
func Tones() []string {
	return []string{
		"Professional & Trustworthy",
		"Playful & Fun",
		domain.DefaultTone,
		"Natural & Organic",
		"Innovative & Tech-forward",
	}
}

// EditSuggestions are starter instructions surfaced next to the chat log.
func EditSuggestions() []string {
	return []string{
		"Make the background darker",
		"Add a soft morning light",
		"Place it on a marble table",
		"Add tropical leaves in background",
	}
}
