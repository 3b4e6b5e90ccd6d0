package handlers

import (
	"encoding/json"
	"net/http"

	"bananastudio/internal/catalog"
	"bananastudio/internal/studio"
)

type generateRequest struct {
	TypeIDs     []string `json:"type_ids"`
	Style       string   `json:"style"`
	CustomStyle string   `json:"custom_style"`
}

// Generate inserts placeholders and fires the fan-out, replying 202 with the
// placeholders so the client can render loading cards immediately. Outcomes
// land in the gallery asynchronously.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	assets, err := a.Studio.Dispatch(r.Context(), sess, studio.GenerateRequest{
		TypeIDs:     req.TypeIDs,
		Style:       catalog.StylePreset(req.Style),
		CustomStyle: req.CustomStyle,
	})
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.json(w, http.StatusAccepted, map[string]any{"assets": assets})
}
