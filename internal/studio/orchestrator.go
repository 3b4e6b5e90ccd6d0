// Package studio orchestrates asset generation and editing on top of the
// generation client. It owns the placeholder lifecycle: insert at dispatch,
// resolve in place on success, remove without trace on failure.
package studio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"bananastudio/internal/catalog"
	"bananastudio/internal/domain"
	"bananastudio/internal/genai"
	"bananastudio/internal/infra"
	"bananastudio/internal/session"
)

// Generator is the slice of the generation client the orchestrator consumes.
type Generator interface {
	GenerateImage(ctx context.Context, req genai.ImageRequest) (string, error)
	GenerateVideo(ctx context.Context, req genai.VideoRequest) (string, error)
	EditImage(ctx context.Context, imageDataURI, instruction string) (string, error)
	GenerateCaption(ctx context.Context, imageDataURI string, brand domain.BrandConfig) (string, error)
}

// Options configures an Orchestrator.
type Options struct {
	Generator        Generator
	Keys             KeySelector
	Logger           *infra.Logger
	DispatchInterval time.Duration
	ImageTimeout     time.Duration
	VideoTimeout     time.Duration
}

// GenerateRequest selects what to produce in one batch.
type GenerateRequest struct {
	TypeIDs     []string
	Style       catalog.StylePreset
	CustomStyle string
}

// Orchestrator fans generation requests out to the client and reconciles the
// outcomes into session gallery state.
type Orchestrator struct {
	gen          Generator
	keys         KeySelector
	logger       *infra.Logger
	limiter      *rate.Limiter
	imageTimeout time.Duration
	videoTimeout time.Duration
}

// New builds an Orchestrator.
func New(opts Options) *Orchestrator {
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	var limiter *rate.Limiter
	if opts.DispatchInterval > 0 {
		// Burst 2 lets the first pair of requests start together.
		limiter = rate.NewLimiter(rate.Every(opts.DispatchInterval), 2)
	}

	imageTimeout := opts.ImageTimeout
	if imageTimeout <= 0 {
		imageTimeout = 2 * time.Minute
	}
	videoTimeout := opts.VideoTimeout
	if videoTimeout <= 0 {
		videoTimeout = 10 * time.Minute
	}

	return &Orchestrator{
		gen:          opts.Generator,
		keys:         opts.Keys,
		logger:       logger,
		limiter:      limiter,
		imageTimeout: imageTimeout,
		videoTimeout: videoTimeout,
	}
}

type dispatchItem struct {
	assetType   domain.AssetType
	placeholder domain.GeneratedAsset
}

// Dispatch validates the request, inserts one loading placeholder per
// selected type (dispatch order, newest in front), and starts the generation
// fan-out in the background. It returns the placeholders immediately; callers
// observe completion through the session gallery.
func (o *Orchestrator) Dispatch(ctx context.Context, sess *session.Session, req GenerateRequest) ([]domain.GeneratedAsset, error) {
	items, styleDesc, err := o.prepare(ctx, sess, req)
	if err != nil {
		return nil, err
	}

	// Generation outlives the triggering request; only values flow from ctx.
	runCtx := context.WithoutCancel(ctx)
	go o.run(runCtx, sess, items, styleDesc)

	return placeholders(items), nil
}

// Generate is the synchronous form of Dispatch: it blocks until every
// per-type outcome has resolved. The batch itself never fails; individual
// failures are swallowed after removing their placeholder.
func (o *Orchestrator) Generate(ctx context.Context, sess *session.Session, req GenerateRequest) ([]domain.GeneratedAsset, error) {
	items, styleDesc, err := o.prepare(ctx, sess, req)
	if err != nil {
		return nil, err
	}
	o.run(ctx, sess, items, styleDesc)
	return placeholders(items), nil
}

func (o *Orchestrator) prepare(ctx context.Context, sess *session.Session, req GenerateRequest) ([]dispatchItem, string, error) {
	if sess.ProductImage() == "" {
		return nil, "", domain.ErrNoProductImage
	}
	if len(req.TypeIDs) == 0 {
		return nil, "", fmt.Errorf("no asset types selected")
	}

	styleDesc, err := catalog.ResolveStyle(req.Style, req.CustomStyle)
	if err != nil {
		return nil, "", err
	}

	types := make([]domain.AssetType, 0, len(req.TypeIDs))
	hasVideo := false
	for _, id := range req.TypeIDs {
		t, ok := catalog.AssetTypeByID(id)
		if !ok {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrUnknownAssetType, id)
		}
		if t.MediaType == domain.MediaTypeVideo {
			hasVideo = true
		}
		types = append(types, t)
	}

	// Video needs a paid-tier key. Trigger the selection flow when none is
	// chosen yet, but do not wait for it: generation proceeds immediately
	// and may race the selection.
	if hasVideo && o.keys != nil && !o.keys.HasSelectedKey(ctx) {
		o.logger.Warn().Msg("studio: no paid-tier key selected before video generation")
		o.keys.OpenSelectKey(ctx)
	}

	promptLabel := string(req.Style)
	if req.Style == catalog.StyleCustom && strings.TrimSpace(req.CustomStyle) != "" {
		promptLabel = strings.TrimSpace(req.CustomStyle)
	}

	items := make([]dispatchItem, 0, len(types))
	for _, t := range types {
		ph := domain.GeneratedAsset{
			ID:        uuid.NewString(),
			TypeID:    t.ID,
			Timestamp: time.Now(),
			Prompt:    promptLabel,
			IsLoading: true,
			MediaType: t.MediaType,
		}
		sess.InsertAsset(ph)
		items = append(items, dispatchItem{assetType: t, placeholder: ph})
	}
	return items, styleDesc, nil
}

// run executes the fan-out and joins all outcomes. Goroutines never return
// errors into the group: a failed type removes its own placeholder and the
// rest continue untouched.
func (o *Orchestrator) run(ctx context.Context, sess *session.Session, items []dispatchItem, styleDesc string) {
	image := sess.ProductImage()
	brand := sess.Brand()

	eg, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		item := item
		eg.Go(func() error {
			if o.limiter != nil {
				if err := o.limiter.Wait(gctx); err != nil {
					sess.RemoveAsset(item.placeholder.ID)
					return nil
				}
			}

			url, err := o.generateOne(gctx, image, brand, item.assetType, styleDesc)
			if err != nil {
				o.logger.Warn().
					Err(err).
					Str("asset_type", item.assetType.ID).
					Str("asset_id", item.placeholder.ID).
					Msg("studio: asset generation failed")
				sess.RemoveAsset(item.placeholder.ID)
				return nil
			}

			sess.CompleteAsset(item.placeholder.ID, url)
			return nil
		})
	}
	_ = eg.Wait()
}

func (o *Orchestrator) generateOne(ctx context.Context, image string, brand domain.BrandConfig, t domain.AssetType, styleDesc string) (string, error) {
	if t.MediaType == domain.MediaTypeVideo {
		ctx, cancel := context.WithTimeout(ctx, o.videoTimeout)
		defer cancel()
		return o.gen.GenerateVideo(ctx, genai.VideoRequest{
			ImageDataURI: image,
			Brand:        brand,
			StyleDesc:    styleDesc,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, o.imageTimeout)
	defer cancel()
	return o.gen.GenerateImage(ctx, genai.ImageRequest{
		ImageDataURI: image,
		Brand:        brand,
		AssetType:    t,
		StyleDesc:    styleDesc,
	})
}

// Edit applies a free-text instruction to a previously generated image asset.
// Video assets are rejected before the client is contacted. On success a
// brand-new asset lands at the gallery front and becomes the selection; on
// failure the error propagates and the gallery stays untouched.
func (o *Orchestrator) Edit(ctx context.Context, sess *session.Session, assetID, instruction string) (domain.GeneratedAsset, error) {
	asset, ok := sess.AssetByID(assetID)
	if !ok {
		return domain.GeneratedAsset{}, domain.ErrAssetNotFound
	}
	if asset.MediaType == domain.MediaTypeVideo {
		return domain.GeneratedAsset{}, domain.ErrVideoEditUnsupported
	}
	if asset.IsLoading {
		return domain.GeneratedAsset{}, domain.ErrAssetNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, o.imageTimeout)
	defer cancel()
	url, err := o.gen.EditImage(ctx, asset.URL, instruction)
	if err != nil {
		return domain.GeneratedAsset{}, err
	}

	edited := domain.GeneratedAsset{
		ID:        uuid.NewString(),
		URL:       url,
		TypeID:    asset.TypeID,
		Timestamp: time.Now(),
		Prompt:    "Edited: " + instruction,
		MediaType: domain.MediaTypeImage,
	}
	sess.InsertAsset(edited)
	if _, err := sess.Select(edited.ID); err != nil {
		return domain.GeneratedAsset{}, err
	}
	return edited, nil
}

// Caption produces a social caption for an image asset.
func (o *Orchestrator) Caption(ctx context.Context, sess *session.Session, assetID string) (string, error) {
	asset, ok := sess.AssetByID(assetID)
	if !ok {
		return "", domain.ErrAssetNotFound
	}
	if asset.MediaType == domain.MediaTypeVideo {
		return "", domain.ErrVideoEditUnsupported
	}
	if asset.IsLoading {
		return "", domain.ErrAssetNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, o.imageTimeout)
	defer cancel()
	return o.gen.GenerateCaption(ctx, asset.URL, sess.Brand())
}

func placeholders(items []dispatchItem) []domain.GeneratedAsset {
	out := make([]domain.GeneratedAsset, 0, len(items))
	for _, item := range items {
		out = append(out, item.placeholder)
	}
	return out
}
