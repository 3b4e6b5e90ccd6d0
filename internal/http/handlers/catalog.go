package handlers

import (
	"net/http"

	"bananastudio/internal/catalog"
)

func (a *App) AssetTypes(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.AssetTypes()})
}

func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.Styles()})
}

func (a *App) Samples(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.Samples()})
}

func (a *App) Tones(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.Tones()})
}
