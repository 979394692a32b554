package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/config"
	"github.com/TheSupremeTaco/RenderSpace/internal/gcs"
	"github.com/TheSupremeTaco/RenderSpace/internal/handlers"
	"github.com/TheSupremeTaco/RenderSpace/internal/logging"
	"github.com/TheSupremeTaco/RenderSpace/internal/middleware"
	"github.com/TheSupremeTaco/RenderSpace/internal/stylesource"
	"github.com/TheSupremeTaco/RenderSpace/internal/workerclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(cfg.LogLevel, cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Storage signer. Optional: without credentials the signed-URL
	// routes answer with a configuration error and the local upload
	// path still works.
	var signer handlers.URLSigner
	if cfg.CredentialsFile != "" {
		storageClient, err := gcs.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize storage client")
		}
		defer storageClient.Close()
		signer = storageClient
	} else {
		log.Warn().Msg("GCS_CREDENTIALS_FILE not set, signed-url routes disabled")
	}

	// Worker dispatcher. Optional for the same reason.
	var dispatcher handlers.Dispatcher
	if cfg.WorkerURL != "" {
		dispatcher = workerclient.NewClient(cfg.WorkerURL)
	} else {
		log.Warn().Msg("WORKER_URL not set, /api/start-job disabled")
	}

	// Style sourcing. The sourcer applies the configured failure policy;
	// under the stub policy it answers even without a Gemini key.
	var styleClient *stylesource.Client
	if cfg.GeminiAPIKey != "" {
		styleClient, err = stylesource.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize style source client")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, style sourcing runs on the configured failure policy")
	}
	sourcer := stylesource.NewSourcer(styleClient, cfg.StyleSourcePolicy)

	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)
	initUploadHandler := handlers.NewInitUploadHandler(signer, cfg.InputBucket)
	jobsHandler := handlers.NewJobsHandler(dispatcher)
	roomHandler := handlers.NewRoomHandler(sourcer)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	router.Static("/static", cfg.StaticDir)
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/healthz", handlers.HealthHandler)

	api := router.Group("/api")
	api.POST("/upload", uploadHandler.Upload)
	api.POST("/init-upload", initUploadHandler.InitUpload)
	api.POST("/start-job", jobsHandler.StartJob)
	api.POST("/room-setup", roomHandler.RoomSetup)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("gateway starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped")
	}
}
