// Package genai is the boundary between the studio and the Gemini API. It
// translates brand, style, and format data into natural-language prompts and
// speaks the generateContent and Veo long-running job protocols over plain
// HTTP.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bananastudio/internal/domain"
	"bananastudio/internal/infra"
	"bananastudio/internal/intake"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey       string
	BaseURL      string
	ImageModel   string
	TextModel    string
	VideoModel   string
	PollInterval time.Duration
	HTTPClient   *http.Client
	Logger       *infra.Logger
}

// Client calls the external generative endpoints. All methods fail eagerly
// with domain.ErrMissingCredential when no API key is configured.
type Client struct {
	apiKey       string
	baseURL      string
	imageModel   string
	textModel    string
	videoModel   string
	pollInterval time.Duration
	httpClient   *http.Client
	logger       *infra.Logger
}

// ImageRequest carries everything needed to render one marketing image.
type ImageRequest struct {
	ImageDataURI string
	Brand        domain.BrandConfig
	AssetType    domain.AssetType
	StyleDesc    string
}

// VideoRequest carries everything needed to render one ad video.
type VideoRequest struct {
	ImageDataURI string
	Brand        domain.BrandConfig
	StyleDesc    string
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with sensible timeouts will be created.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	videoModel := opts.VideoModel
	if videoModel == "" {
		videoModel = "veo-3.1-fast-generate-preview"
	}

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:       strings.TrimSpace(opts.APIKey),
		baseURL:      baseURL,
		imageModel:   imageModel,
		textModel:    textModel,
		videoModel:   videoModel,
		pollInterval: pollInterval,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateImage produces one marketing image and returns it as a data URI.
// The first inline image part of the response is taken; an answer without one
// is domain.ErrNoMedia.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	mime, data := intake.SplitDataURI(req.ImageDataURI)
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: BuildImagePrompt(req.Brand, req.AssetType, req.StyleDesc)},
				{InlineData: &geminiInlineData{MimeType: mime, Data: data}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &geminiImageConfig{AspectRatio: req.AssetType.AspectRatio},
		},
	}

	var resp geminiGenerateContentResponse
	if err := c.invoke(ctx, fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.imageModel)), payload, &resp); err != nil {
		return "", err
	}

	uri, ok := firstInlineImage(resp)
	if !ok {
		return "", fmt.Errorf("generate image for %s: %w", req.AssetType.ID, domain.ErrNoMedia)
	}

	c.logger.Debug().
		Str("model", c.imageModel).
		Str("asset_type", req.AssetType.ID).
		Msg("genai: generated image asset")
	return uri, nil
}

// EditImage applies a single free-text instruction to a previously generated
// image. The directive keeps the product itself intact while the environment
// changes. No aspect ratio is sent; edits keep the original framing.
func (c *Client) EditImage(ctx context.Context, imageDataURI, instruction string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	mime, data := intake.SplitDataURI(imageDataURI)
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: BuildEditPrompt(instruction)},
				{InlineData: &geminiInlineData{MimeType: mime, Data: data}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	var resp geminiGenerateContentResponse
	if err := c.invoke(ctx, fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.imageModel)), payload, &resp); err != nil {
		return "", err
	}

	uri, ok := firstInlineImage(resp)
	if !ok {
		return "", fmt.Errorf("edit image: %w", domain.ErrNoMedia)
	}

	c.logger.Debug().Str("model", c.imageModel).Msg("genai: edited image asset")
	return uri, nil
}

// GenerateCaption asks the text model for a social caption for the image.
func (c *Client) GenerateCaption(ctx context.Context, imageDataURI string, brand domain.BrandConfig) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	mime, data := intake.SplitDataURI(imageDataURI)
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: BuildCaptionPrompt(brand)},
				{InlineData: &geminiInlineData{MimeType: mime, Data: data}},
			},
		}},
	}

	var resp geminiGenerateContentResponse
	if err := c.invoke(ctx, fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.textModel)), payload, &resp); err != nil {
		return "", err
	}

	text := collectText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generate caption: %w", domain.ErrNoMedia)
	}
	return text, nil
}

// GenerateVideo submits a Veo job and polls it at a fixed interval until it
// reports done, then returns the first generated video URI with the API key
// appended so the asset can be fetched directly. The loop has no backoff and
// no retry budget; cancellation comes solely from ctx, so callers are
// expected to bound it with a deadline.
func (c *Client) GenerateVideo(ctx context.Context, req VideoRequest) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	mime, data := intake.SplitDataURI(req.ImageDataURI)
	payload := veoSubmitRequest{
		Instances: []veoInstance{{
			Prompt: BuildVideoPrompt(req.Brand, req.StyleDesc),
			Image:  &veoImage{BytesBase64Encoded: data, MimeType: mime},
		}},
		Parameters: veoParameters{
			AspectRatio: "9:16",
			Resolution:  "720p",
			SampleCount: 1,
		},
	}

	var op veoOperation
	if err := c.invoke(ctx, fmt.Sprintf("/models/%s:predictLongRunning", url.PathEscape(c.videoModel)), payload, &op); err != nil {
		return "", err
	}

	polls := 0
	for !op.Done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
		polls++
		if err := c.get(ctx, "/"+strings.TrimLeft(op.Name, "/"), &op); err != nil {
			return "", err
		}
	}

	if op.Error != nil {
		return "", fmt.Errorf("video job failed: %s", op.Error.Message)
	}
	if op.Response == nil || len(op.Response.GenerateVideoResponse.GeneratedSamples) == 0 {
		return "", fmt.Errorf("generate video: %w", domain.ErrNoMedia)
	}
	uri := op.Response.GenerateVideoResponse.GeneratedSamples[0].Video.URI
	if uri == "" {
		return "", fmt.Errorf("generate video: %w", domain.ErrNoMedia)
	}

	c.logger.Debug().
		Str("model", c.videoModel).
		Int("polls", polls).
		Msg("genai: generated video asset")
	return appendKey(uri, c.apiKey), nil
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func firstInlineImage(resp geminiGenerateContentResponse) (string, bool) {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data), true
			}
		}
	}
	return "", false
}

func collectText(resp geminiGenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		break
	}
	return b.String()
}

func appendKey(uri, key string) string {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + "key=" + url.QueryEscape(key)
}
