package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bananastudio/internal/domain"
	"bananastudio/internal/intake"
	"bananastudio/pkg/zip"
)

func (a *App) ListAssets(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":             sess.Assets(),
		"selected_asset_id": sess.SelectedID(),
	})
}

func (a *App) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	id := chi.URLParam(r, "asset_id")
	if !sess.RemoveAsset(id) {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": id})
}

func (a *App) ClearAssets(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	sess.ClearAssets()
	a.json(w, http.StatusOK, map[string]any{"items": sess.Assets()})
}

// SelectAsset marks the editing target; the chat log resets to a single
// contextual greeting as a side effect.
func (a *App) SelectAsset(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	id := chi.URLParam(r, "asset_id")
	asset, err := sess.Select(id)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"selected": asset,
		"chat":     sess.Chat(),
	})
}

// DownloadAsset serves one asset under its derived filename. Image data URIs
// are decoded and streamed; video assets redirect to their remote URI (which
// already carries the access credential).
func (a *App) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	asset, ok := sess.AssetByID(chi.URLParam(r, "asset_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	if asset.IsLoading {
		a.error(w, http.StatusConflict, "not_ready", "asset is still generating")
		return
	}

	if asset.MediaType == domain.MediaTypeVideo {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", asset.DownloadFilename()))
		http.Redirect(w, r, asset.URL, http.StatusFound)
		return
	}

	mime, payload := intake.SplitDataURI(asset.URL)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "corrupt asset payload")
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", asset.DownloadFilename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ArchiveAssets zips all completed image assets for bulk download. Videos
// live behind remote URIs and are skipped.
func (a *App) ArchiveAssets(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	var entries []zip.Asset
	for _, asset := range sess.Assets() {
		if asset.IsLoading || asset.MediaType != domain.MediaTypeImage {
			continue
		}
		mime, payload := intake.SplitDataURI(asset.URL)
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			continue
		}
		entries = append(entries, zip.Asset{
			Filename: asset.DownloadFilename(),
			MIME:     mime,
			Data:     data,
		})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no downloadable assets")
		return
	}

	archive := zip.ArchiveAssets(entries)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=banana-assets-%s.zip", sess.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// Caption generates a social caption for an image asset.
func (a *App) Caption(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	caption, err := a.Studio.Caption(r.Context(), sess, chi.URLParam(r, "asset_id"))
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"caption": caption})
}
