package handlers

import (
	"encoding/json"
	"net/http"

	"bananastudio/internal/domain"
	"bananastudio/internal/session"
)

type sessionResponse struct {
	ID              string             `json:"id"`
	Brand           domain.BrandConfig `json:"brand"`
	HasProductImage bool               `json:"has_product_image"`
	AssetCount      int                `json:"asset_count"`
	SelectedAssetID string             `json:"selected_asset_id,omitempty"`
}

func sessionSnapshot(sess *session.Session) sessionResponse {
	return sessionResponse{
		ID:              sess.ID,
		Brand:           sess.Brand(),
		HasProductImage: sess.ProductImage() != "",
		AssetCount:      len(sess.Assets()),
		SelectedAssetID: sess.SelectedID(),
	}
}

func (a *App) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := a.Sessions.Create()
	a.Logger.Debug().Str("session_id", sess.ID).Msg("session created")
	a.json(w, http.StatusCreated, sessionSnapshot(sess))
}

func (a *App) GetSession(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	a.json(w, http.StatusOK, sessionSnapshot(sess))
}

func (a *App) GetBrand(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	a.json(w, http.StatusOK, sess.Brand())
}

// PutBrand replaces the brand configuration wholesale, mirroring how the
// configuration form submits it.
func (a *App) PutBrand(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	var cfg domain.BrandConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sess.SetBrand(cfg)
	a.json(w, http.StatusOK, cfg)
}
