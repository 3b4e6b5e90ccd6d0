package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bananastudio/internal/genai"
	"bananastudio/internal/http/handlers"
	httpapi "bananastudio/internal/http/httpapi"
	"bananastudio/internal/infra"
	"bananastudio/internal/intake"
	"bananastudio/internal/session"
	"bananastudio/internal/studio"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if !cfg.GeminiConfigured() {
		logger.Warn().Msg("GEMINI_API_KEY not set, generation endpoints will return 424")
	}

	sessions := session.NewStore(cfg.SessionTTL)

	client := genai.NewClient(genai.Options{
		APIKey:       cfg.GeminiAPIKey,
		BaseURL:      cfg.GeminiBaseURL,
		ImageModel:   cfg.GeminiImageModel,
		TextModel:    cfg.GeminiTextModel,
		VideoModel:   cfg.GeminiVideoModel,
		PollInterval: cfg.VideoPollInterval,
		HTTPClient:   &http.Client{Timeout: cfg.ImageTimeout},
		Logger:       &logger,
	})

	keys := studio.NewPaidKeyStore()

	orch := studio.New(studio.Options{
		Generator:        client,
		Keys:             keys,
		Logger:           &logger,
		DispatchInterval: cfg.DispatchInterval,
		ImageTimeout:     cfg.ImageTimeout,
		VideoTimeout:     cfg.VideoTimeout,
	})

	fetcher := intake.NewFetcher(nil, cfg.MaxUploadBytes)

	app := handlers.NewApp(cfg, logger, sessions, orch, fetcher, keys)

	router := httpapi.NewRouter(app)

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
