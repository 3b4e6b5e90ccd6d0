package handlers

import "net/http"

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ConfigStatus surfaces the warning-banner bits: whether the Gemini key is
// configured and whether the paid-tier key selection flow has completed.
func (a *App) ConfigStatus(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"gemini_key_configured": a.Config.GeminiConfigured(),
		"paid_key_selected":     a.Keys.HasSelectedKey(r.Context()),
		"paid_key_prompt":       a.Keys.SelectionPending(),
	})
}

// SelectPaidKey records completion of the paid-tier key selection flow.
func (a *App) SelectPaidKey(w http.ResponseWriter, r *http.Request) {
	a.Keys.SelectKey()
	a.json(w, http.StatusOK, map[string]any{"paid_key_selected": true})
}
