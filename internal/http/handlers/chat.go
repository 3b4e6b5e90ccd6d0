package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bananastudio/internal/catalog"
	"bananastudio/internal/domain"
	"bananastudio/internal/session"
)

func (a *App) GetChat(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"messages":    sess.Chat(),
		"suggestions": catalog.EditSuggestions(),
	})
}

type chatRequest struct {
	Text string `json:"text"`
}

// PostChat runs one conversational edit turn: the user text is appended, the
// edit orchestrator runs with it as the sole instruction, and exactly one
// model message follows, either the acknowledgement or the apology. Video
// targets
// are rejected up front without touching the log or the gallery.
func (a *App) PostChat(w http.ResponseWriter, r *http.Request) {
	sess := a.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text required")
		return
	}

	selectedID := sess.SelectedID()
	if selectedID == "" {
		a.error(w, http.StatusConflict, "no_selection", "select an asset before editing")
		return
	}
	if asset, ok := sess.AssetByID(selectedID); ok && asset.MediaType == domain.MediaTypeVideo {
		a.error(w, http.StatusUnprocessableEntity, "unsupported", session.VideoEditMessage)
		return
	}

	sess.AppendChat(domain.ChatRoleUser, text)

	edited, err := a.Studio.Edit(r.Context(), sess, selectedID, text)
	if err != nil {
		if errors.Is(err, domain.ErrVideoEditUnsupported) {
			// Selection raced a video asset in; reject like the up-front check.
			a.error(w, http.StatusUnprocessableEntity, "unsupported", session.VideoEditMessage)
			return
		}
		a.Logger.Warn().Err(err).Str("session_id", sess.ID).Msg("chat edit failed")
		sess.AppendChat(domain.ChatRoleModel, session.EditFailureMessage)
		a.json(w, http.StatusOK, map[string]any{
			"messages": sess.Chat(),
			"edited":   nil,
		})
		return
	}

	sess.AppendChat(domain.ChatRoleModel, session.EditSuccessMessage)
	a.json(w, http.StatusOK, map[string]any{
		"messages": sess.Chat(),
		"edited":   edited,
	})
}
