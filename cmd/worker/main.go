package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/config"
	"github.com/TheSupremeTaco/RenderSpace/internal/gcs"
	"github.com/TheSupremeTaco/RenderSpace/internal/logging"
	"github.com/TheSupremeTaco/RenderSpace/internal/middleware"
	"github.com/TheSupremeTaco/RenderSpace/internal/worker"
)

func main() {
	cfg, err := config.LoadWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(cfg.LogLevel, cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Without credentials the worker answers with stubbed demo paths
	// instead of uploading anything.
	var store worker.Uploader
	if cfg.CredentialsFile != "" {
		storageClient, err := gcs.NewClient(context.Background(), cfg.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize storage client")
		}
		defer storageClient.Close()
		store = storageClient
	} else {
		log.Warn().Msg("GCS_CREDENTIALS_FILE not set, reconstruct answers stubbed paths")
	}

	handler := worker.NewHandler(store, cfg.OutputBucket, cfg.SampleModelPath, cfg.DefaultExt)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	router.GET("/healthz", handler.Health)
	router.POST("/reconstruct", handler.Reconstruct)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("worker starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
}
