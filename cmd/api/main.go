package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"pawsitive/internal/adapters/petapi"
	"pawsitive/internal/config"
	"pawsitive/internal/platform/logger"
	"pawsitive/internal/router"
)

func main() {
	// .env es opcional (dev); en prod todo viene por env vars
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewFromEnv()

	api := petapi.NewClient(petapi.Config{
		BaseURL:      cfg.APIBaseURL,
		APIKey:       cfg.APIKey,
		APIKeyHeader: cfg.APIKeyHeader,
		BearerToken:  cfg.APIBearerToken,
		Timeout:      cfg.APITimeout,
	})

	r := router.NewRouter(router.Options{
		Config: cfg,
		Logger: log,
		API:    api,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
	}
}
