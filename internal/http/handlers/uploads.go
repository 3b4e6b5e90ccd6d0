package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bananastudio/internal/catalog"
	"bananastudio/internal/domain"
	"bananastudio/internal/intake"
)

type imageResponse struct {
	HasProductImage bool `json:"has_product_image"`
}

// UploadImage accepts a multipart product photo, normalizes it into a data
// URI, and stores it on the session. Oversized files are rejected before any
// state changes.
func (a *App) UploadImage(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	// +1 MiB of headroom for multipart framing; the exact cap on the image
	// itself is enforced by intake.ReadImage below.
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes+(1<<20))
	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "File size too large (Max 5MB)")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "image file required")
		return
	}
	defer file.Close()

	declared := ""
	if header != nil {
		declared = header.Header.Get("Content-Type")
	}
	dataURI, err := intake.ReadImage(file, declared, a.Config.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, domain.ErrImageTooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "File size too large (Max 5MB)")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	sess.SetProductImage(dataURI)
	a.json(w, http.StatusOK, imageResponse{HasProductImage: true})
}

// UseSample loads one of the pre-set product photos, fetched remotely and
// converted to the same inline form as uploads.
func (a *App) UseSample(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	var req struct {
		SampleID string `json:"sample_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sample, ok := catalog.SampleByID(req.SampleID)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown sample")
		return
	}

	dataURI, err := a.Fetcher.FetchDataURI(r.Context(), sample.URL)
	if err != nil {
		a.Logger.Warn().Err(err).Str("sample_id", sample.ID).Msg("sample fetch failed")
		a.error(w, http.StatusBadGateway, "fetch_failed", "could not load sample image")
		return
	}

	sess.SetProductImage(dataURI)
	a.json(w, http.StatusOK, imageResponse{HasProductImage: true})
}

// ClearImage removes the loaded product photo.
func (a *App) ClearImage(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	sess.SetProductImage("")
	a.json(w, http.StatusOK, imageResponse{HasProductImage: false})
}
