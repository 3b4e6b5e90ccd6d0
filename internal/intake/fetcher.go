package intake

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Fetcher downloads remote sample images and converts them to data URIs so
// they flow through the same path as uploads.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher builds a Fetcher. A nil client gets a default with a timeout.
func NewFetcher(client *http.Client, maxBytes int64) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// FetchDataURI downloads url and returns it as an inline data URI. The same
// size cap as uploads applies; sample images are expected to be small.
func (f *Fetcher) FetchDataURI(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("intake: create fetch request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("intake: fetch sample: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("intake: fetch sample: status %d", resp.StatusCode)
	}
	return ReadImage(resp.Body, resp.Header.Get("Content-Type"), f.maxBytes)
}
