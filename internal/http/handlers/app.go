package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bananastudio/internal/domain"
	"bananastudio/internal/infra"
	"bananastudio/internal/intake"
	"bananastudio/internal/session"
	"bananastudio/internal/studio"
)

// App is the handler container: everything the HTTP surface needs, injected
// once at startup.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Sessions *session.Store
	Studio   *studio.Orchestrator
	Fetcher  *intake.Fetcher
	Keys     *studio.PaidKeyStore
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, sessions *session.Store, orch *studio.Orchestrator, fetcher *intake.Fetcher, keys *studio.PaidKeyStore) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Studio:   orch,
		Fetcher:  fetcher,
		Keys:     keys,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error":   code,
		"message": message,
	})
}

// sessionFromRequest resolves the {session_id} route parameter. A nil return
// means the 404 response was already written.
func (a *App) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "session_id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "session_id required")
		return nil
	}
	sess, err := a.Sessions.Get(id)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "session not found")
		return nil
	}
	return sess
}

// writeDomainError maps domain sentinels onto HTTP codes; anything unknown is
// an internal error.
func (a *App) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrAssetNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrImageTooLarge):
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", err.Error())
	case errors.Is(err, domain.ErrVideoEditUnsupported):
		a.error(w, http.StatusUnprocessableEntity, "unsupported", session.VideoEditMessage)
	case errors.Is(err, domain.ErrMissingCredential):
		a.error(w, http.StatusFailedDependency, "missing_credential", err.Error())
	case errors.Is(err, domain.ErrNoProductImage),
		errors.Is(err, domain.ErrUnknownAssetType),
		errors.Is(err, domain.ErrUnknownStyle),
		errors.Is(err, domain.ErrAssetNotReady):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}
