package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bananastudio/internal/http/handlers"
	"bananastudio/internal/middleware"
)

// NewRouter assembles the full API surface.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/config", func(r chi.Router) {
		r.Get("/status", app.ConfigStatus)
		r.Post("/paid-key", app.SelectPaidKey)
	})

	r.Route("/v1/catalog", func(r chi.Router) {
		r.Get("/asset-types", app.AssetTypes)
		r.Get("/styles", app.Styles)
		r.Get("/samples", app.Samples)
		r.Get("/tones", app.Tones)
	})

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", app.CreateSession)

		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", app.GetSession)

			r.Get("/brand", app.GetBrand)
			r.Put("/brand", app.PutBrand)

			r.Post("/image", app.UploadImage)
			r.Post("/image/sample", app.UseSample)
			r.Delete("/image", app.ClearImage)

			r.Post("/generate", app.Generate)

			r.Get("/assets", app.ListAssets)
			r.Delete("/assets", app.ClearAssets)
			r.Get("/assets/archive", app.ArchiveAssets)
			r.Route("/assets/{asset_id}", func(r chi.Router) {
				r.Delete("/", app.DeleteAsset)
				r.Post("/select", app.SelectAsset)
				r.Get("/download", app.DownloadAsset)
				r.Post("/caption", app.Caption)
			})

			r.Get("/chat", app.GetChat)
			r.Post("/chat", app.PostChat)
		})
	})

	return r
}
