package domain

import (
	"fmt"
	"time"
)

// MediaType enumerates the kinds of generated media.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// AssetType describes one output format the studio can produce. Descriptors
// are defined by the catalog and immutable for the process lifetime; the
// aspect ratio and pixel dimensions are advisory hints forwarded to the
// provider, never enforced on the returned media.
type AssetType struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	AspectRatio string    `json:"aspect_ratio"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Description string    `json:"description"`
	MediaType   MediaType `json:"media_type"`
}

// GeneratedAsset is one gallery entry. It starts life as a loading
// placeholder (empty URL, IsLoading set) when a generation request is
// dispatched, is updated in place on success, and is removed entirely on
// failure.
type GeneratedAsset struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	TypeID    string    `json:"type_id"`
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
	IsLoading bool      `json:"is_loading"`
	MediaType MediaType `json:"media_type"`
}

// DownloadFilename derives the filename offered when the asset is downloaded.
func (a GeneratedAsset) DownloadFilename() string {
	ext := "png"
	if a.MediaType == MediaTypeVideo {
		ext = "mp4"
	}
	return fmt.Sprintf("banana-asset-%s.%s", a.ID, ext)
}

// SampleImage is a pre-set product photo users can load instead of uploading.
type SampleImage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
